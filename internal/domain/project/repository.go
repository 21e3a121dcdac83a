package project

import "context"

// Repository defines the interface for project persistence operations
type Repository interface {
	// Create creates a new project
	Create(ctx context.Context, project *Project) error

	// Update updates an existing project
	Update(ctx context.Context, project *Project) error

	// Delete deletes a project by ID, cascading to its resources
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a project by ID
	GetByID(ctx context.Context, id uint) (*Project, error)

	// GetBySlug retrieves a project by slug
	GetBySlug(ctx context.Context, slug string) (*Project, error)

	// ListOutsourcing retrieves the projects that delegate their teams to
	// the given hub project
	ListOutsourcing(ctx context.Context, hubID uint) ([]*Project, error)
}

// TeamRepository defines the interface for team persistence operations
type TeamRepository interface {
	// Create creates a new team
	Create(ctx context.Context, team *Team) error

	// Delete deletes a team by ID
	Delete(ctx context.Context, id uint) error

	// GetByProjectAndLanguage retrieves the team for a (project, language)
	// pair, or nil if none exists
	GetByProjectAndLanguage(ctx context.Context, projectID uint, languageCode string) (*Team, error)

	// ListLanguages retrieves the language codes that have a team on the
	// given project
	ListLanguages(ctx context.Context, projectID uint) ([]string, error)
}
