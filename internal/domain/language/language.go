// Package language provides the language value object and plural rule
// resolution for translation counting.
package language

import (
	"fmt"
	"sort"
	"strings"
)

// Category is a CLDR grammatical number class. A pluralized source string
// must supply one translation per category required by the target language.
type Category string

const (
	CategoryZero  Category = "zero"
	CategoryOne   Category = "one"
	CategoryTwo   Category = "two"
	CategoryFew   Category = "few"
	CategoryMany  Category = "many"
	CategoryOther Category = "other"
)

// categoryOrder fixes the canonical CLDR ordering of categories.
var categoryOrder = map[Category]int{
	CategoryZero:  0,
	CategoryOne:   1,
	CategoryTwo:   2,
	CategoryFew:   3,
	CategoryMany:  4,
	CategoryOther: 5,
}

// IsValid checks if the category is a known CLDR class.
func (c Category) IsValid() bool {
	_, ok := categoryOrder[c]
	return ok
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// SortCategories orders categories in canonical CLDR order in place.
func SortCategories(categories []Category) {
	sort.Slice(categories, func(i, j int) bool {
		return categoryOrder[categories[i]] < categoryOrder[categories[j]]
	})
}

// Language is an immutable value object describing a target language: its
// code, display name, and plural configuration. Plural configuration is
// either an explicit category enumeration, a gettext plural equation, or
// nothing at all (in which case resolution falls back to "other" only).
type Language struct {
	code           string
	name           string
	nplurals       int
	pluralEquation string
	categories     []Category
}

// New creates a language value object. The code is required; everything else
// is optional plural configuration. Explicit categories are deduplicated and
// canonically ordered, and "other" is always included.
func New(code, name string, nplurals int, pluralEquation string, categories ...Category) (Language, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Language{}, fmt.Errorf("language code is required")
	}

	seen := make(map[Category]bool, len(categories))
	cleaned := make([]Category, 0, len(categories)+1)
	for _, c := range categories {
		if !c.IsValid() {
			return Language{}, fmt.Errorf("invalid plural category: %q", c)
		}
		if !seen[c] {
			seen[c] = true
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) > 0 && !seen[CategoryOther] {
		cleaned = append(cleaned, CategoryOther)
	}
	SortCategories(cleaned)

	return Language{
		code:           code,
		name:           name,
		nplurals:       nplurals,
		pluralEquation: pluralEquation,
		categories:     cleaned,
	}, nil
}

// MustNew is New for static catalog entries; it panics on invalid input.
func MustNew(code, name string, nplurals int, pluralEquation string, categories ...Category) Language {
	l, err := New(code, name, nplurals, pluralEquation, categories...)
	if err != nil {
		panic(err)
	}
	return l
}

// Code returns the language code, e.g. "pt_BR".
func (l Language) Code() string {
	return l.code
}

// Name returns the display name.
func (l Language) Name() string {
	return l.name
}

// Nplurals returns the declared number of plural forms, or 0 if undeclared.
func (l Language) Nplurals() int {
	return l.nplurals
}

// PluralEquation returns the gettext plural equation, e.g. "n != 1".
func (l Language) PluralEquation() string {
	return l.pluralEquation
}

// ExplicitCategories returns the explicitly configured categories, if any.
func (l Language) ExplicitCategories() []Category {
	out := make([]Category, len(l.categories))
	copy(out, l.categories)
	return out
}

// IsZero reports whether the value object is empty.
func (l Language) IsZero() bool {
	return l.code == ""
}
