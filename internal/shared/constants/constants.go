package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Database table names
	TableProjects       = "projects"
	TableTeams          = "teams"
	TableResources      = "resources"
	TableSourceEntities = "source_entities"
	TableTranslations   = "translations"
	TableResourceStats  = "resource_stats"
)
