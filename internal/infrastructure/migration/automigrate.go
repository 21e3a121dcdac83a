package migration

import (
	"transtats/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ProjectModel{},
		&models.TeamModel{},
		&models.ResourceModel{},
		&models.SourceEntityModel{},
		&models.TranslationModel{},
		&models.ResourceStatsModel{},
	}
}
