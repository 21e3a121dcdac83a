package models

import (
	"time"

	"transtats/internal/shared/constants"
)

// TeamModel represents the database persistence model for language teams.
type TeamModel struct {
	ID           uint   `gorm:"primarykey"`
	ProjectID    uint   `gorm:"not null;uniqueIndex:idx_team_project_language"`
	LanguageCode string `gorm:"not null;size:16;uniqueIndex:idx_team_project_language"`
	CreatedAt    time.Time
}

// TableName specifies the table name for GORM.
func (TeamModel) TableName() string {
	return constants.TableTeams
}
