package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"transtats/internal/domain/resource"
	"transtats/internal/infrastructure/persistence/mappers"
	"transtats/internal/infrastructure/persistence/models"
	"transtats/internal/shared/db"
	"transtats/internal/shared/errors"
	"transtats/internal/shared/logger"
)

// SourceEntityRepositoryImpl implements the resource.SourceEntityRepository
// interface.
type SourceEntityRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SourceEntityMapper
	logger logger.Interface
}

// NewSourceEntityRepository creates a new source entity repository instance.
func NewSourceEntityRepository(gormDB *gorm.DB, logger logger.Interface) resource.SourceEntityRepository {
	return &SourceEntityRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewSourceEntityMapper(),
		logger: logger,
	}
}

// Create creates a new source entity in the database.
func (r *SourceEntityRepositoryImpl) Create(ctx context.Context, entity *resource.SourceEntity) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map source entity to model", "error", err)
		return fmt.Errorf("failed to map source entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("source entity already exists", entity.StringHash())
		}
		r.logger.Errorw("failed to create source entity in database", "resource_id", entity.ResourceID(), "error", err)
		return fmt.Errorf("failed to create source entity: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set source entity ID", "error", err)
		return fmt.Errorf("failed to set source entity ID: %w", err)
	}

	return nil
}

// Update updates an existing source entity.
func (r *SourceEntityRepositoryImpl) Update(ctx context.Context, entity *resource.SourceEntity) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map source entity to model", "error", err)
		return fmt.Errorf("failed to map source entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.SourceEntityModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"string_hash":   model.StringHash,
			"source_string": model.SourceString,
			"context":       model.Context,
			"pluralized":    model.Pluralized,
			"position":      model.Position,
			"comment":       model.Comment,
			"occurrences":   model.Occurrences,
			"word_count":    model.WordCount,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "Duplicate entry") || strings.Contains(result.Error.Error(), "duplicate key") || strings.Contains(result.Error.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("source entity already exists", entity.StringHash())
		}
		r.logger.Errorw("failed to update source entity", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update source entity: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("source entity", fmt.Sprintf("%d", model.ID))
	}

	return nil
}

// Delete deletes a source entity and all of its translations.
func (r *SourceEntityRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("entity_id = ?", id).Delete(&models.TranslationModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete entity translations", "entity_id", id, "error", err)
		return fmt.Errorf("failed to delete entity translations: %w", err)
	}

	result := tx.Delete(&models.SourceEntityModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete source entity", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete source entity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("source entity", fmt.Sprintf("%d", id))
	}

	return nil
}

// GetByID retrieves a source entity by its ID.
func (r *SourceEntityRepositoryImpl) GetByID(ctx context.Context, id uint) (*resource.SourceEntity, error) {
	var model models.SourceEntityModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get source entity by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get source entity: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map source entity model", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map source entity: %w", err)
	}

	return entity, nil
}

// ListByResource retrieves all entities of a resource ordered by position.
func (r *SourceEntityRepositoryImpl) ListByResource(ctx context.Context, resourceID uint) ([]*resource.SourceEntity, error) {
	var modelList []*models.SourceEntityModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("resource_id = ?", resourceID).
		Order("position ASC, id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list source entities", "resource_id", resourceID, "error", err)
		return nil, fmt.Errorf("failed to list source entities: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map source entity models", "resource_id", resourceID, "error", err)
		return nil, fmt.Errorf("failed to map source entities: %w", err)
	}

	return entities, nil
}

// CountByResource returns the entity count and summed source word count for
// a resource.
func (r *SourceEntityRepositoryImpl) CountByResource(ctx context.Context, resourceID uint) (int, int, error) {
	var row struct {
		Total int
		Words int
	}

	if err := db.GetTxFromContext(ctx, r.db).Model(&models.SourceEntityModel{}).
		Select("COUNT(*) AS total, COALESCE(SUM(word_count), 0) AS words").
		Where("resource_id = ?", resourceID).
		Scan(&row).Error; err != nil {
		r.logger.Errorw("failed to count source entities", "resource_id", resourceID, "error", err)
		return 0, 0, fmt.Errorf("failed to count source entities: %w", err)
	}

	return row.Total, row.Words, nil
}
