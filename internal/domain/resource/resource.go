// Package resource provides domain models for translatable resources and
// their source entities.
package resource

import (
	"fmt"
	"regexp"
	"time"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_.][a-z0-9]+)*$`)

// Resource represents one translatable file of a project. It carries
// denormalized source facts (entity count and source word count) that the
// aggregator and the recalculation job keep up to date.
type Resource struct {
	id                 uint
	projectID          uint
	slug               string
	name               string
	sourceLanguageCode string
	totalEntities      int
	wordCount          int
	createdAt          time.Time
	updatedAt          time.Time
}

// NewResource creates a new resource.
func NewResource(projectID uint, slug, name, sourceLanguageCode string) (*Resource, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid resource slug: %q", slug)
	}
	if name == "" {
		return nil, fmt.Errorf("resource name is required")
	}
	if sourceLanguageCode == "" {
		return nil, fmt.Errorf("source language code is required")
	}

	now := time.Now()
	return &Resource{
		projectID:          projectID,
		slug:               slug,
		name:               name,
		sourceLanguageCode: sourceLanguageCode,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructResource reconstructs a resource from persistence.
func ReconstructResource(
	id uint,
	projectID uint,
	slug string,
	name string,
	sourceLanguageCode string,
	totalEntities int,
	wordCount int,
	createdAt, updatedAt time.Time,
) (*Resource, error) {
	if id == 0 {
		return nil, fmt.Errorf("resource ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("resource slug is required")
	}
	if sourceLanguageCode == "" {
		return nil, fmt.Errorf("source language code is required")
	}
	if totalEntities < 0 || wordCount < 0 {
		return nil, fmt.Errorf("source facts cannot be negative")
	}

	return &Resource{
		id:                 id,
		projectID:          projectID,
		slug:               slug,
		name:               name,
		sourceLanguageCode: sourceLanguageCode,
		totalEntities:      totalEntities,
		wordCount:          wordCount,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

// ID returns the resource ID
func (r *Resource) ID() uint {
	return r.id
}

// ProjectID returns the owning project ID
func (r *Resource) ProjectID() uint {
	return r.projectID
}

// Slug returns the resource slug
func (r *Resource) Slug() string {
	return r.slug
}

// Name returns the resource name
func (r *Resource) Name() string {
	return r.name
}

// SourceLanguageCode returns the language the source entities are written in
func (r *Resource) SourceLanguageCode() string {
	return r.sourceLanguageCode
}

// TotalEntities returns the denormalized source entity count
func (r *Resource) TotalEntities() int {
	return r.totalEntities
}

// WordCount returns the denormalized source word count
func (r *Resource) WordCount() int {
	return r.wordCount
}

// CreatedAt returns when the resource was created
func (r *Resource) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the resource was last updated
func (r *Resource) UpdatedAt() time.Time {
	return r.updatedAt
}

// SetID sets the resource ID (only for persistence layer use)
func (r *Resource) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("resource ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("resource ID cannot be zero")
	}
	r.id = id
	return nil
}

// RefreshSourceFacts updates the denormalized entity and word counts.
func (r *Resource) RefreshSourceFacts(totalEntities, wordCount int) error {
	if totalEntities < 0 || wordCount < 0 {
		return fmt.Errorf("source facts cannot be negative")
	}
	if r.totalEntities == totalEntities && r.wordCount == wordCount {
		return nil
	}
	r.totalEntities = totalEntities
	r.wordCount = wordCount
	r.updatedAt = time.Now()
	return nil
}
