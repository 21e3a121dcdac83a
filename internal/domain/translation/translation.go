// Package translation provides the translation aggregate: the string value
// of one source entity in one language, optionally sharded by plural
// category.
package translation

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"slices"
	"time"

	"transtats/internal/domain/language"
)

// Translation represents the rendering of a source entity in a target
// language for one plural category. (entity, language, rule) is unique.
// An empty string means "not translated for this category"; it is stored so
// the author and timestamp survive, but it never counts as translated.
type Translation struct {
	id           uint
	entityID     uint
	languageCode string
	rule         language.Category
	str          string
	stringHash   string
	wordCount    int
	reviewed     bool
	authorID     uint
	createdAt    time.Time
	updatedAt    time.Time
}

// NewTranslation creates a translation row for one plural category of an
// entity.
func NewTranslation(entityID uint, languageCode string, rule language.Category, str string, authorID uint, reviewed bool) (*Translation, error) {
	if entityID == 0 {
		return nil, fmt.Errorf("entity ID is required")
	}
	if languageCode == "" {
		return nil, fmt.Errorf("language code is required")
	}
	if !rule.IsValid() {
		return nil, fmt.Errorf("invalid plural category: %q", rule)
	}

	now := time.Now()
	t := &Translation{
		entityID:     entityID,
		languageCode: languageCode,
		rule:         rule,
		reviewed:     reviewed,
		authorID:     authorID,
		createdAt:    now,
		updatedAt:    now,
	}
	t.setString(str)
	return t, nil
}

// ReconstructTranslation reconstructs a translation from persistence.
func ReconstructTranslation(
	id uint,
	entityID uint,
	languageCode string,
	rule string,
	str string,
	stringHash string,
	wordCount int,
	reviewed bool,
	authorID uint,
	createdAt, updatedAt time.Time,
) (*Translation, error) {
	if id == 0 {
		return nil, fmt.Errorf("translation ID cannot be zero")
	}
	if entityID == 0 {
		return nil, fmt.Errorf("entity ID is required")
	}
	if languageCode == "" {
		return nil, fmt.Errorf("language code is required")
	}

	category := language.Category(rule)
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid plural category: %q", rule)
	}
	if wordCount < 0 {
		return nil, fmt.Errorf("word count cannot be negative")
	}

	return &Translation{
		id:           id,
		entityID:     entityID,
		languageCode: languageCode,
		rule:         category,
		str:          str,
		stringHash:   stringHash,
		wordCount:    wordCount,
		reviewed:     reviewed,
		authorID:     authorID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the translation ID
func (t *Translation) ID() uint {
	return t.id
}

// EntityID returns the translated entity's ID
func (t *Translation) EntityID() uint {
	return t.entityID
}

// LanguageCode returns the target language code
func (t *Translation) LanguageCode() string {
	return t.languageCode
}

// Rule returns the plural category this row covers
func (t *Translation) Rule() language.Category {
	return t.rule
}

// String returns the translated text
func (t *Translation) String() string {
	return t.str
}

// StringHash returns the md5 hash of the text, or "" for an empty string
func (t *Translation) StringHash() string {
	return t.stringHash
}

// WordCount returns the text's word count
func (t *Translation) WordCount() int {
	return t.wordCount
}

// Reviewed reports whether a reviewer approved this row
func (t *Translation) Reviewed() bool {
	return t.reviewed
}

// AuthorID returns the last author's user ID
func (t *Translation) AuthorID() uint {
	return t.authorID
}

// CreatedAt returns when the translation was first submitted
func (t *Translation) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns when the translation was last changed
func (t *Translation) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID sets the translation ID (only for persistence layer use)
func (t *Translation) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("translation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("translation ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsTranslated reports whether the row carries a non-empty string.
func (t *Translation) IsTranslated() bool {
	return t.str != ""
}

// Update replaces the text, author and reviewed flag in one step, as a
// translator submission does.
func (t *Translation) Update(str string, authorID uint, reviewed bool) {
	t.setString(str)
	t.authorID = authorID
	t.reviewed = reviewed
	t.updatedAt = time.Now()
}

// SetReviewed toggles the reviewed flag without touching the text.
func (t *Translation) SetReviewed(reviewed bool) {
	if t.reviewed == reviewed {
		return
	}
	t.reviewed = reviewed
	t.updatedAt = time.Now()
}

func (t *Translation) setString(str string) {
	t.str = str
	if str == "" {
		t.stringHash = ""
		t.wordCount = 0
		return
	}
	sum := md5.Sum([]byte(str))
	t.stringHash = hex.EncodeToString(sum[:])
	t.wordCount = CountWords(str)
}

// RuleAllowed reports whether a plural category may be submitted for an
// entity in the given language: pluralized entities accept exactly the
// categories the language requires, plain entities only "other".
func RuleAllowed(lang language.Language, pluralized bool, rule language.Category) bool {
	return slices.Contains(language.RequiredCategories(lang, pluralized), rule)
}
