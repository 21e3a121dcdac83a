package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transtats/internal/domain/language"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"single", "hello", 1},
		{"plain sentence", "one file was removed", 4},
		{"collapsed whitespace", "  spaced \t out\nwords  ", 3},
		{"non-breaking space", "café au lait", 3},
		{"ideographic space", "日本　語", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.in))
		})
	}
}

func TestNewTranslation(t *testing.T) {
	t.Run("non-empty string is hashed and counted", func(t *testing.T) {
		tr, err := NewTranslation(1, "de", language.CategoryOther, "zwei kleine Dateien", 7, false)
		require.NoError(t, err)
		assert.True(t, tr.IsTranslated())
		assert.Equal(t, 3, tr.WordCount())
		assert.Len(t, tr.StringHash(), 32)
	})

	t.Run("empty string means untranslated, not an error", func(t *testing.T) {
		tr, err := NewTranslation(1, "de", language.CategoryOther, "", 7, false)
		require.NoError(t, err)
		assert.False(t, tr.IsTranslated())
		assert.Zero(t, tr.WordCount())
		assert.Empty(t, tr.StringHash())
	})

	t.Run("invalid rule is rejected", func(t *testing.T) {
		_, err := NewTranslation(1, "de", language.Category("dual"), "x", 7, false)
		assert.Error(t, err)
	})

	t.Run("missing entity is rejected", func(t *testing.T) {
		_, err := NewTranslation(0, "de", language.CategoryOther, "x", 7, false)
		assert.Error(t, err)
	})
}

func TestTranslationUpdate(t *testing.T) {
	tr, err := NewTranslation(1, "de", language.CategoryOther, "alte Fassung", 7, true)
	require.NoError(t, err)
	oldHash := tr.StringHash()

	tr.Update("eine ganz neue Fassung", 9, false)

	assert.Equal(t, "eine ganz neue Fassung", tr.String())
	assert.Equal(t, 4, tr.WordCount())
	assert.NotEqual(t, oldHash, tr.StringHash())
	assert.Equal(t, uint(9), tr.AuthorID())
	assert.False(t, tr.Reviewed())
}

func TestRuleAllowed(t *testing.T) {
	ru := language.MustNew("ru", "Russian", 4, "",
		language.CategoryOne, language.CategoryFew, language.CategoryMany, language.CategoryOther)

	t.Run("pluralized entity accepts required categories", func(t *testing.T) {
		assert.True(t, RuleAllowed(ru, true, language.CategoryFew))
		assert.True(t, RuleAllowed(ru, true, language.CategoryOther))
	})

	t.Run("pluralized entity rejects unrequired categories", func(t *testing.T) {
		assert.False(t, RuleAllowed(ru, true, language.CategoryZero))
		assert.False(t, RuleAllowed(ru, true, language.CategoryTwo))
	})

	t.Run("plain entity only accepts other", func(t *testing.T) {
		assert.True(t, RuleAllowed(ru, false, language.CategoryOther))
		assert.False(t, RuleAllowed(ru, false, language.CategoryOne))
	})
}
