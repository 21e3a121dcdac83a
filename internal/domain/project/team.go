package project

import (
	"fmt"
	"time"
)

// Team represents the group responsible for translating one project into one
// language. Only its existence matters to the statistics engine: a team for
// language L makes L an active language for every resource of the project
// (and of every project outsourcing to it).
type Team struct {
	id           uint
	projectID    uint
	languageCode string
	createdAt    time.Time
}

// NewTeam creates a new team for a project and language.
func NewTeam(projectID uint, languageCode string) (*Team, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if languageCode == "" {
		return nil, fmt.Errorf("language code is required")
	}

	return &Team{
		projectID:    projectID,
		languageCode: languageCode,
		createdAt:    time.Now(),
	}, nil
}

// ReconstructTeam reconstructs a team from persistence.
func ReconstructTeam(id, projectID uint, languageCode string, createdAt time.Time) (*Team, error) {
	if id == 0 {
		return nil, fmt.Errorf("team ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if languageCode == "" {
		return nil, fmt.Errorf("language code is required")
	}

	return &Team{
		id:           id,
		projectID:    projectID,
		languageCode: languageCode,
		createdAt:    createdAt,
	}, nil
}

// ID returns the team ID
func (t *Team) ID() uint {
	return t.id
}

// ProjectID returns the owning project ID
func (t *Team) ProjectID() uint {
	return t.projectID
}

// LanguageCode returns the team's target language code
func (t *Team) LanguageCode() string {
	return t.languageCode
}

// CreatedAt returns when the team was created
func (t *Team) CreatedAt() time.Time {
	return t.createdAt
}

// SetID sets the team ID (only for persistence layer use)
func (t *Team) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("team ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("team ID cannot be zero")
	}
	t.id = id
	return nil
}
