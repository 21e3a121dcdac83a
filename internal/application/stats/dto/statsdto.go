package dto

import "time"

// TranslationInput carries one plural-category string of one entity in a
// submission batch.
type TranslationInput struct {
	EntityID uint   `json:"entity_id" validate:"required"`
	Rule     string `json:"rule" validate:"required,oneof=zero one two few many other"`
	String   string `json:"string"`
	Reviewed bool   `json:"reviewed"`
}

// SubmitTranslationsRequest represents one batch submission for a single
// (resource, language) pair.
type SubmitTranslationsRequest struct {
	ResourceID   uint               `json:"resource_id" validate:"required"`
	LanguageCode string             `json:"language_code" validate:"required"`
	AuthorID     uint               `json:"author_id"`
	Translations []TranslationInput `json:"translations" validate:"required,min=1,dive"`
}

// DeleteTranslationsRequest removes every translation of a resource in one
// language.
type DeleteTranslationsRequest struct {
	ResourceID   uint   `json:"resource_id" validate:"required"`
	LanguageCode string `json:"language_code" validate:"required"`
}

// CreateTeamRequest creates the team for a (project, language) pair.
type CreateTeamRequest struct {
	ProjectID    uint   `json:"project_id" validate:"required"`
	LanguageCode string `json:"language_code" validate:"required"`
}

// DeleteTeamRequest removes the team for a (project, language) pair.
type DeleteTeamRequest struct {
	ProjectID    uint   `json:"project_id" validate:"required"`
	LanguageCode string `json:"language_code" validate:"required"`
}

// TeamResponse represents a created team.
type TeamResponse struct {
	ID           uint      `json:"id"`
	ProjectID    uint      `json:"project_id"`
	LanguageCode string    `json:"language_code"`
	CreatedAt    time.Time `json:"created_at"`
}

// RecalculateRequest scopes a recalculation run. A nil ResourceID means the
// whole database.
type RecalculateRequest struct {
	ResourceID *uint `json:"resource_id,omitempty"`
}

// RecalculateResponse summarizes a recalculation run.
type RecalculateResponse struct {
	ResourcesProcessed int `json:"resources_processed"`
	RowsUpserted       int `json:"rows_upserted"`
	RowsDropped        int `json:"rows_dropped"`
}

// CreateResourceRequest creates a resource under a project.
type CreateResourceRequest struct {
	ProjectID          uint   `json:"project_id" validate:"required"`
	Slug               string `json:"slug" validate:"required"`
	Name               string `json:"name" validate:"required"`
	SourceLanguageCode string `json:"source_language_code" validate:"required"`
}

// ResourceResponse represents a resource.
type ResourceResponse struct {
	ID                 uint      `json:"id"`
	ProjectID          uint      `json:"project_id"`
	Slug               string    `json:"slug"`
	Name               string    `json:"name"`
	SourceLanguageCode string    `json:"source_language_code"`
	TotalEntities      int       `json:"total_entities"`
	WordCount          int       `json:"word_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SourceEntityInput carries one source string of an import batch.
type SourceEntityInput struct {
	SourceString string `json:"source_string" validate:"required"`
	Context      string `json:"context"`
	Pluralized   bool   `json:"pluralized"`
	Position     int    `json:"position"`
	Comment      string `json:"comment"`
	Occurrences  string `json:"occurrences"`
}

// ImportSourceRequest replaces a resource's source entity set with the
// given batch. Entities absent from the batch are removed along with their
// translations.
type ImportSourceRequest struct {
	ResourceID uint                `json:"resource_id" validate:"required"`
	Entities   []SourceEntityInput `json:"entities" validate:"dive"`
}

// ImportSourceResponse summarizes an import.
type ImportSourceResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

// StatsRowResponse represents one (resource, language) statistics row.
type StatsRowResponse struct {
	ResourceID         uint       `json:"resource_id"`
	LanguageCode       string     `json:"language_code"`
	Total              int        `json:"total"`
	Translated         int        `json:"translated"`
	Untranslated       int        `json:"untranslated"`
	Reviewed           int        `json:"reviewed"`
	TotalWords         int        `json:"total_words"`
	TranslatedWords    int        `json:"translated_words"`
	UntranslatedWords  int        `json:"untranslated_words"`
	Percentage         int        `json:"percentage"`
	ReviewedPercentage int        `json:"reviewed_percentage"`
	LastUpdate         *time.Time `json:"last_update,omitempty"`
	LastCommitterID    *uint      `json:"last_committer_id,omitempty"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
