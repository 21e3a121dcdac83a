package models

import (
	"time"

	"transtats/internal/shared/constants"
)

// TranslationModel represents the database persistence model for
// translations. One row per (entity, language, plural rule).
type TranslationModel struct {
	ID           uint   `gorm:"primarykey"`
	EntityID     uint   `gorm:"not null;uniqueIndex:idx_translation_entity_language_rule"`
	LanguageCode string `gorm:"not null;size:16;uniqueIndex:idx_translation_entity_language_rule;index:idx_translation_language"`
	Rule         string `gorm:"not null;size:8;uniqueIndex:idx_translation_entity_language_rule"`
	String       string `gorm:"type:text"`
	StringHash   string `gorm:"size:32"`
	WordCount    int    `gorm:"not null;default:0"`
	Reviewed     bool   `gorm:"not null;default:false"`
	AuthorID     uint   `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM.
func (TranslationModel) TableName() string {
	return constants.TableTranslations
}
