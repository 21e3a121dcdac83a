// Package project provides domain models for projects and their language
// teams.
package project

import (
	"fmt"
	"regexp"
	"time"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// Project represents the project aggregate root. A project owns resources
// and may delegate its team set to another project (its hub) through the
// outsource relationship.
type Project struct {
	id          uint
	slug        string
	name        string
	description string
	outsourceID *uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProject creates a new project.
func NewProject(slug, name, description string) (*Project, error) {
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid project slug: %q", slug)
	}
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	now := time.Now()
	return &Project{
		slug:        slug,
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProject reconstructs a project from persistence.
func ReconstructProject(
	id uint,
	slug string,
	name string,
	description string,
	outsourceID *uint,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("project slug is required")
	}
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	return &Project{
		id:          id,
		slug:        slug,
		name:        name,
		description: description,
		outsourceID: outsourceID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ID returns the project ID
func (p *Project) ID() uint {
	return p.id
}

// Slug returns the project slug
func (p *Project) Slug() string {
	return p.slug
}

// Name returns the project name
func (p *Project) Name() string {
	return p.name
}

// Description returns the project description
func (p *Project) Description() string {
	return p.description
}

// OutsourceID returns the hub project ID this project delegates its teams
// to, or nil if the project manages its own teams.
func (p *Project) OutsourceID() *uint {
	return p.outsourceID
}

// IsOutsourced reports whether the project delegates access to a hub.
func (p *Project) IsOutsourced() bool {
	return p.outsourceID != nil
}

// CreatedAt returns when the project was created
func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the project was last updated
func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

// SetID sets the project ID (only for persistence layer use)
func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

// OutsourceTo delegates the project's team set to the given hub project.
func (p *Project) OutsourceTo(hubID uint) error {
	if hubID == 0 {
		return fmt.Errorf("hub project ID cannot be zero")
	}
	if hubID == p.id {
		return fmt.Errorf("project cannot outsource to itself")
	}
	p.outsourceID = &hubID
	p.updatedAt = time.Now()
	return nil
}

// ClearOutsource makes the project manage its own teams again.
func (p *Project) ClearOutsource() {
	if p.outsourceID == nil {
		return
	}
	p.outsourceID = nil
	p.updatedAt = time.Now()
}

// TeamHolderID returns the project whose teams govern this project: the hub
// when outsourced, the project itself otherwise.
func (p *Project) TeamHolderID() uint {
	if p.outsourceID != nil {
		return *p.outsourceID
	}
	return p.id
}
