package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesExplicit(t *testing.T) {
	lang := MustNew("ru", "Russian", 4, "", CategoryOne, CategoryFew, CategoryMany, CategoryOther)
	assert.Equal(t, []Category{CategoryOne, CategoryFew, CategoryMany, CategoryOther}, Categories(lang))
}

func TestCategoriesAlwaysIncludeOther(t *testing.T) {
	lang := MustNew("xx", "", 2, "", CategoryOne)
	got := Categories(lang)
	assert.Contains(t, got, CategoryOther)
	assert.Equal(t, []Category{CategoryOne, CategoryOther}, got)
}

func TestCategoriesFromEquation(t *testing.T) {
	tests := []struct {
		name     string
		equation string
		nplurals int
		want     []Category
	}{
		{
			name:     "germanic two-form",
			equation: "n != 1",
			nplurals: 2,
			want:     []Category{CategoryOne, CategoryOther},
		},
		{
			name:     "one-form",
			equation: "0",
			nplurals: 1,
			want:     []Category{CategoryOther},
		},
		{
			name:     "slavic three-form with derived count",
			equation: "n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2",
			nplurals: 0, // derived by sampling the equation
			want:     []Category{CategoryOne, CategoryFew, CategoryOther},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, err := New("xx", "", tt.nplurals, tt.equation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Categories(lang))
		})
	}
}

func TestCategoriesMalformedEquationFailsOpen(t *testing.T) {
	lang, err := New("xx", "", 0, "n ?% !! bogus")
	require.NoError(t, err)
	assert.Equal(t, []Category{CategoryOther}, Categories(lang))
}

func TestCategoriesEmptyConfigurationFailsOpen(t *testing.T) {
	lang, err := New("xx", "", 0, "")
	require.NoError(t, err)
	assert.Equal(t, []Category{CategoryOther}, Categories(lang))
}

func TestDefaultCategories(t *testing.T) {
	assert.Equal(t, []Category{CategoryOther}, DefaultCategories(0))
	assert.Equal(t, []Category{CategoryOther}, DefaultCategories(1))
	assert.Equal(t, []Category{CategoryOne, CategoryOther}, DefaultCategories(2))
	assert.Len(t, DefaultCategories(6), 6)
	assert.Len(t, DefaultCategories(42), 6)
}

func TestRequiredCategories(t *testing.T) {
	ar, ok := Lookup("ar")
	require.True(t, ok)

	t.Run("plain entity only needs other", func(t *testing.T) {
		assert.Equal(t, []Category{CategoryOther}, RequiredCategories(ar, false))
	})

	t.Run("pluralized entity needs the full set", func(t *testing.T) {
		assert.Len(t, RequiredCategories(ar, true), 6)
	})
}
