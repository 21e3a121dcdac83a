package translation

import (
	"context"

	"transtats/internal/domain/language"
)

// Repository defines the interface for translation persistence operations.
// It is the source-of-truth store over the (entity, language, rule)
// keyspace; it never touches statistics.
type Repository interface {
	// Upsert creates or replaces the row for (entity, language, rule).
	Upsert(ctx context.Context, t *Translation) error

	// GetByEntityAndLanguage retrieves the existing rows of one entity in
	// one language keyed by plural category. Missing categories are simply
	// absent, never zero-length placeholders.
	GetByEntityAndLanguage(ctx context.Context, entityID uint, languageCode string) (map[language.Category]*Translation, error)

	// ListByResourceAndLanguage retrieves every row for every entity of the
	// resource in the language.
	ListByResourceAndLanguage(ctx context.Context, resourceID uint, languageCode string) ([]*Translation, error)

	// DeleteByResourceAndLanguage removes every row for every entity of the
	// resource in the language. All rows disappear together or not at all.
	DeleteByResourceAndLanguage(ctx context.Context, resourceID uint, languageCode string) error

	// DeleteByEntity removes every row of an entity across all languages.
	DeleteByEntity(ctx context.Context, entityID uint) error

	// ListLanguagesByResource retrieves the distinct language codes that
	// have at least one translation row for the resource.
	ListLanguagesByResource(ctx context.Context, resourceID uint) ([]string, error)
}
