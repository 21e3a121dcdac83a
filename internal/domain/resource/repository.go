package resource

import "context"

// Repository defines the interface for resource persistence operations
type Repository interface {
	// Create creates a new resource
	Create(ctx context.Context, resource *Resource) error

	// Update updates an existing resource
	Update(ctx context.Context, resource *Resource) error

	// Delete deletes a resource by ID, cascading to entities, translations
	// and stats rows
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a resource by ID
	GetByID(ctx context.Context, id uint) (*Resource, error)

	// GetByProjectAndSlug retrieves a resource by its project and slug
	GetByProjectAndSlug(ctx context.Context, projectID uint, slug string) (*Resource, error)

	// ListByProject retrieves all resources of a project
	ListByProject(ctx context.Context, projectID uint) ([]*Resource, error)

	// ListIDs retrieves all resource IDs in ascending order, paged by
	// (afterID, limit). Used by the recalculation job to walk the table
	// without holding it in memory.
	ListIDs(ctx context.Context, afterID uint, limit int) ([]uint, error)
}

// SourceEntityRepository defines the interface for source entity
// persistence operations
type SourceEntityRepository interface {
	// Create creates a new source entity
	Create(ctx context.Context, entity *SourceEntity) error

	// Update updates an existing source entity
	Update(ctx context.Context, entity *SourceEntity) error

	// Delete deletes a source entity, cascading to its translations
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a source entity by ID
	GetByID(ctx context.Context, id uint) (*SourceEntity, error)

	// ListByResource retrieves all entities of a resource ordered by
	// position
	ListByResource(ctx context.Context, resourceID uint) ([]*SourceEntity, error)

	// CountByResource returns the entity count and summed source word count
	// for a resource
	CountByResource(ctx context.Context, resourceID uint) (total int, words int, err error)
}
