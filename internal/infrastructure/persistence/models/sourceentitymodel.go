package models

import (
	"time"

	"transtats/internal/shared/constants"
)

// SourceEntityModel represents the database persistence model for source
// entities. The string hash already folds in the context, so (resource,
// hash) identifies one entity.
type SourceEntityModel struct {
	ID           uint   `gorm:"primarykey"`
	ResourceID   uint   `gorm:"not null;uniqueIndex:idx_entity_resource_hash"`
	StringHash   string `gorm:"not null;size:32;uniqueIndex:idx_entity_resource_hash"`
	SourceString string `gorm:"not null;type:text"`
	Context      string `gorm:"size:255"`
	Pluralized   bool   `gorm:"not null;default:false"`
	Position     int    `gorm:"not null;default:0"`
	Comment      string `gorm:"type:text"`
	Occurrences  string `gorm:"type:text"`
	WordCount    int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM.
func (SourceEntityModel) TableName() string {
	return constants.TableSourceEntities
}
