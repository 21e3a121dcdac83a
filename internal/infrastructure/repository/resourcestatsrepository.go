package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transtats/internal/domain/stats"
	"transtats/internal/infrastructure/persistence/mappers"
	"transtats/internal/infrastructure/persistence/models"
	"transtats/internal/shared/db"
	"transtats/internal/shared/logger"
)

// ResourceStatsRepositoryImpl implements the stats.Repository interface.
type ResourceStatsRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ResourceStatsMapper
	logger logger.Interface
}

// NewResourceStatsRepository creates a new resource stats repository
// instance.
func NewResourceStatsRepository(gormDB *gorm.DB, logger logger.Interface) stats.Repository {
	return &ResourceStatsRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewResourceStatsMapper(),
		logger: logger,
	}
}

// Upsert creates or replaces the row for its (resource, language) pair.
func (r *ResourceStatsRepositoryImpl) Upsert(ctx context.Context, row *stats.StatsRow) error {
	model, err := r.mapper.ToModel(row)
	if err != nil {
		r.logger.Errorw("failed to map stats row entity to model", "error", err)
		return fmt.Errorf("failed to map stats row entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "resource_id"},
			{Name: "language_code"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"total",
			"translated",
			"untranslated",
			"reviewed",
			"total_words",
			"translated_words",
			"untranslated_words",
			"last_update",
			"last_committer_id",
			"updated_at",
		}),
	}).Create(model)

	if result.Error != nil {
		r.logger.Errorw("failed to upsert stats row", "resource_id", row.ResourceID(), "language", row.LanguageCode(), "error", result.Error)
		return fmt.Errorf("failed to upsert stats row: %w", result.Error)
	}

	if row.ID() == 0 && model.ID != 0 {
		if err := row.SetID(model.ID); err != nil {
			r.logger.Errorw("failed to set stats row ID", "error", err)
			return fmt.Errorf("failed to set stats row ID: %w", err)
		}
	}

	return nil
}

// GetByResourceAndLanguage retrieves one pair's row, or nil if absent.
func (r *ResourceStatsRepositoryImpl) GetByResourceAndLanguage(ctx context.Context, resourceID uint, languageCode string) (*stats.StatsRow, error) {
	var model models.ResourceStatsModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("resource_id = ? AND language_code = ?", resourceID, languageCode).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get stats row", "resource_id", resourceID, "language", languageCode, "error", err)
		return nil, fmt.Errorf("failed to get stats row: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map stats row model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map stats row: %w", err)
	}

	return entity, nil
}

// ListByResource retrieves every row of a resource ordered by language code.
func (r *ResourceStatsRepositoryImpl) ListByResource(ctx context.Context, resourceID uint) ([]*stats.StatsRow, error) {
	var modelList []*models.ResourceStatsModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("resource_id = ?", resourceID).
		Order("language_code ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list stats rows", "resource_id", resourceID, "error", err)
		return nil, fmt.Errorf("failed to list stats rows: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map stats row models to entities", "resource_id", resourceID, "error", err)
		return nil, fmt.Errorf("failed to map stats rows: %w", err)
	}

	return entities, nil
}

// ListByLanguage retrieves every row for a language across all resources.
func (r *ResourceStatsRepositoryImpl) ListByLanguage(ctx context.Context, languageCode string) ([]*stats.StatsRow, error) {
	var modelList []*models.ResourceStatsModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("language_code = ?", languageCode).
		Order("resource_id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list stats rows by language", "language", languageCode, "error", err)
		return nil, fmt.Errorf("failed to list stats rows: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map stats row models to entities", "language", languageCode, "error", err)
		return nil, fmt.Errorf("failed to map stats rows: %w", err)
	}

	return entities, nil
}

// ListLanguages retrieves the language codes that have a row for the
// resource.
func (r *ResourceStatsRepositoryImpl) ListLanguages(ctx context.Context, resourceID uint) ([]string, error) {
	var codes []string

	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ResourceStatsModel{}).
		Where("resource_id = ?", resourceID).
		Order("language_code ASC").
		Pluck("language_code", &codes).Error; err != nil {
		r.logger.Errorw("failed to list stats languages", "resource_id", resourceID, "error", err)
		return nil, fmt.Errorf("failed to list stats languages: %w", err)
	}

	return codes, nil
}

// DeleteByResourceAndLanguage removes one pair's row if present.
func (r *ResourceStatsRepositoryImpl) DeleteByResourceAndLanguage(ctx context.Context, resourceID uint, languageCode string) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("resource_id = ? AND language_code = ?", resourceID, languageCode).
		Delete(&models.ResourceStatsModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete stats row", "resource_id", resourceID, "language", languageCode, "error", err)
		return fmt.Errorf("failed to delete stats row: %w", err)
	}

	return nil
}

// DeleteByResource removes every row of a resource.
func (r *ResourceStatsRepositoryImpl) DeleteByResource(ctx context.Context, resourceID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("resource_id = ?", resourceID).
		Delete(&models.ResourceStatsModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete stats rows", "resource_id", resourceID, "error", err)
		return fmt.Errorf("failed to delete stats rows: %w", err)
	}

	return nil
}
