package stats

import "context"

// Repository defines the interface for stats row persistence. Rows are a
// derived cache keyed by (resource, language); the maintenance layer may
// overwrite them at any time without coordination.
type Repository interface {
	// Upsert creates or replaces the row for its (resource, language) pair.
	Upsert(ctx context.Context, row *StatsRow) error

	// GetByResourceAndLanguage retrieves one pair's row, or nil if absent.
	GetByResourceAndLanguage(ctx context.Context, resourceID uint, languageCode string) (*StatsRow, error)

	// ListByResource retrieves every row of a resource ordered by language
	// code.
	ListByResource(ctx context.Context, resourceID uint) ([]*StatsRow, error)

	// ListByLanguage retrieves every row for a language across all
	// resources, ordered by resource ID.
	ListByLanguage(ctx context.Context, languageCode string) ([]*StatsRow, error)

	// ListLanguages retrieves the language codes that have a row for the
	// resource.
	ListLanguages(ctx context.Context, resourceID uint) ([]string, error)

	// DeleteByResourceAndLanguage removes one pair's row if present.
	DeleteByResourceAndLanguage(ctx context.Context, resourceID uint, languageCode string) error

	// DeleteByResource removes every row of a resource. Used on resource
	// deletion.
	DeleteByResource(ctx context.Context, resourceID uint) error
}
