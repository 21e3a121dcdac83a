package models

import (
	"time"

	"transtats/internal/shared/constants"
)

// ProjectModel represents the database persistence model for projects.
type ProjectModel struct {
	ID          uint   `gorm:"primarykey"`
	Slug        string `gorm:"not null;size:64;uniqueIndex:idx_project_slug"`
	Name        string `gorm:"not null;size:255"`
	Description string `gorm:"size:1000"`
	OutsourceID *uint  `gorm:"index:idx_project_outsource"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM.
func (ProjectModel) TableName() string {
	return constants.TableProjects
}
