package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transtats/internal/domain/language"
	"transtats/internal/domain/translation"
	"transtats/internal/infrastructure/persistence/mappers"
	"transtats/internal/infrastructure/persistence/models"
	"transtats/internal/shared/db"
	"transtats/internal/shared/logger"
)

// TranslationRepositoryImpl implements the translation.Repository interface.
type TranslationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TranslationMapper
	logger logger.Interface
}

// NewTranslationRepository creates a new translation repository instance.
func NewTranslationRepository(gormDB *gorm.DB, logger logger.Interface) translation.Repository {
	return &TranslationRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewTranslationMapper(),
		logger: logger,
	}
}

// Upsert creates or replaces the row for (entity, language, rule).
func (r *TranslationRepositoryImpl) Upsert(ctx context.Context, t *translation.Translation) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		r.logger.Errorw("failed to map translation entity to model", "error", err)
		return fmt.Errorf("failed to map translation entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "entity_id"},
			{Name: "language_code"},
			{Name: "rule"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"string",
			"string_hash",
			"word_count",
			"reviewed",
			"author_id",
			"updated_at",
		}),
	}).Create(model)

	if result.Error != nil {
		r.logger.Errorw("failed to upsert translation", "entity_id", t.EntityID(), "language", t.LanguageCode(), "rule", t.Rule(), "error", result.Error)
		return fmt.Errorf("failed to upsert translation: %w", result.Error)
	}

	if t.ID() == 0 && model.ID != 0 {
		if err := t.SetID(model.ID); err != nil {
			r.logger.Errorw("failed to set translation ID", "error", err)
			return fmt.Errorf("failed to set translation ID: %w", err)
		}
	}

	return nil
}

// GetByEntityAndLanguage retrieves the rows of one entity in one language
// keyed by plural category.
func (r *TranslationRepositoryImpl) GetByEntityAndLanguage(ctx context.Context, entityID uint, languageCode string) (map[language.Category]*translation.Translation, error) {
	var modelList []*models.TranslationModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("entity_id = ? AND language_code = ?", entityID, languageCode).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get translations by entity", "entity_id", entityID, "language", languageCode, "error", err)
		return nil, fmt.Errorf("failed to get translations: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map translation models", "entity_id", entityID, "error", err)
		return nil, fmt.Errorf("failed to map translations: %w", err)
	}

	byRule := make(map[language.Category]*translation.Translation, len(entities))
	for _, t := range entities {
		byRule[t.Rule()] = t
	}
	return byRule, nil
}

// ListByResourceAndLanguage retrieves every row for every entity of the
// resource in the language.
func (r *TranslationRepositoryImpl) ListByResourceAndLanguage(ctx context.Context, resourceID uint, languageCode string) ([]*translation.Translation, error) {
	var modelList []*models.TranslationModel

	if err := db.GetTxFromContext(ctx, r.db).
		Joins("JOIN source_entities ON source_entities.id = translations.entity_id").
		Where("source_entities.resource_id = ? AND translations.language_code = ?", resourceID, languageCode).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list translations by resource", "resource_id", resourceID, "language", languageCode, "error", err)
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map translation models", "resource_id", resourceID, "error", err)
		return nil, fmt.Errorf("failed to map translations: %w", err)
	}

	return entities, nil
}

// DeleteByResourceAndLanguage removes every row for every entity of the
// resource in the language.
func (r *TranslationRepositoryImpl) DeleteByResourceAndLanguage(ctx context.Context, resourceID uint, languageCode string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	entityIDs := tx.Model(&models.SourceEntityModel{}).Select("id").Where("resource_id = ?", resourceID)

	if err := tx.
		Where("entity_id IN (?) AND language_code = ?", entityIDs, languageCode).
		Delete(&models.TranslationModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete translations", "resource_id", resourceID, "language", languageCode, "error", err)
		return fmt.Errorf("failed to delete translations: %w", err)
	}

	r.logger.Infow("translations deleted", "resource_id", resourceID, "language", languageCode)
	return nil
}

// DeleteByEntity removes every row of an entity across all languages.
func (r *TranslationRepositoryImpl) DeleteByEntity(ctx context.Context, entityID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("entity_id = ?", entityID).
		Delete(&models.TranslationModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete translations by entity", "entity_id", entityID, "error", err)
		return fmt.Errorf("failed to delete translations: %w", err)
	}

	return nil
}

// ListLanguagesByResource retrieves the distinct language codes with at
// least one translation row for the resource.
func (r *TranslationRepositoryImpl) ListLanguagesByResource(ctx context.Context, resourceID uint) ([]string, error) {
	var codes []string

	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TranslationModel{}).
		Distinct("translations.language_code").
		Joins("JOIN source_entities ON source_entities.id = translations.entity_id").
		Where("source_entities.resource_id = ?", resourceID).
		Order("translations.language_code ASC").
		Pluck("translations.language_code", &codes).Error; err != nil {
		r.logger.Errorw("failed to list translation languages", "resource_id", resourceID, "error", err)
		return nil, fmt.Errorf("failed to list translation languages: %w", err)
	}

	return codes, nil
}
