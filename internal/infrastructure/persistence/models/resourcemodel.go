package models

import (
	"time"

	"transtats/internal/shared/constants"
)

// ResourceModel represents the database persistence model for resources.
type ResourceModel struct {
	ID                 uint   `gorm:"primarykey"`
	ProjectID          uint   `gorm:"not null;uniqueIndex:idx_resource_project_slug"`
	Slug               string `gorm:"not null;size:64;uniqueIndex:idx_resource_project_slug"`
	Name               string `gorm:"not null;size:255"`
	SourceLanguageCode string `gorm:"not null;size:16"`
	TotalEntities      int    `gorm:"not null;default:0"`
	WordCount          int    `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM.
func (ResourceModel) TableName() string {
	return constants.TableResources
}
