package models

import (
	"time"

	"transtats/internal/shared/constants"
)

// ResourceStatsModel represents the database persistence model for the
// denormalized per-(resource, language) statistics rows.
type ResourceStatsModel struct {
	ID                uint   `gorm:"primarykey"`
	ResourceID        uint   `gorm:"not null;uniqueIndex:idx_stats_resource_language"`
	LanguageCode      string `gorm:"not null;size:16;uniqueIndex:idx_stats_resource_language"`
	Total             int    `gorm:"not null;default:0"`
	Translated        int    `gorm:"not null;default:0"`
	Untranslated      int    `gorm:"not null;default:0"`
	Reviewed          int    `gorm:"not null;default:0"`
	TotalWords        int    `gorm:"not null;default:0"`
	TranslatedWords   int    `gorm:"not null;default:0"`
	UntranslatedWords int    `gorm:"not null;default:0"`
	LastUpdate        *time.Time
	LastCommitterID   *uint
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM.
func (ResourceStatsModel) TableName() string {
	return constants.TableResourceStats
}
