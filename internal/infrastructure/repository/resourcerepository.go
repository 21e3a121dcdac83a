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

// ResourceRepositoryImpl implements the resource.Repository interface.
type ResourceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ResourceMapper
	logger logger.Interface
}

// NewResourceRepository creates a new resource repository instance.
func NewResourceRepository(gormDB *gorm.DB, logger logger.Interface) resource.Repository {
	return &ResourceRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewResourceMapper(),
		logger: logger,
	}
}

// Create creates a new resource in the database.
func (r *ResourceRepositoryImpl) Create(ctx context.Context, res *resource.Resource) error {
	model, err := r.mapper.ToModel(res)
	if err != nil {
		r.logger.Errorw("failed to map resource entity to model", "error", err)
		return fmt.Errorf("failed to map resource entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("resource already exists", res.Slug())
		}
		r.logger.Errorw("failed to create resource in database", "project_id", res.ProjectID(), "slug", res.Slug(), "error", err)
		return fmt.Errorf("failed to create resource: %w", err)
	}

	if err := res.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set resource ID", "error", err)
		return fmt.Errorf("failed to set resource ID: %w", err)
	}

	r.logger.Infow("resource created successfully", "id", model.ID, "project_id", model.ProjectID, "slug", model.Slug)
	return nil
}

// Update updates an existing resource.
func (r *ResourceRepositoryImpl) Update(ctx context.Context, res *resource.Resource) error {
	model, err := r.mapper.ToModel(res)
	if err != nil {
		r.logger.Errorw("failed to map resource entity to model", "error", err)
		return fmt.Errorf("failed to map resource entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.ResourceModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"slug":                 model.Slug,
			"name":                 model.Name,
			"source_language_code": model.SourceLanguageCode,
			"total_entities":       model.TotalEntities,
			"word_count":           model.WordCount,
			"updated_at":           model.UpdatedAt,
		})

	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "Duplicate entry") || strings.Contains(result.Error.Error(), "duplicate key") || strings.Contains(result.Error.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("resource already exists", res.Slug())
		}
		r.logger.Errorw("failed to update resource", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update resource: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("resource", fmt.Sprintf("%d", model.ID))
	}

	return nil
}

// Delete deletes a resource with its source entities, their translations and
// all of its stats rows.
func (r *ResourceRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	entityIDs := tx.Model(&models.SourceEntityModel{}).Select("id").Where("resource_id = ?", id)

	if err := tx.Where("entity_id IN (?)", entityIDs).Delete(&models.TranslationModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete resource translations", "resource_id", id, "error", err)
		return fmt.Errorf("failed to delete resource translations: %w", err)
	}
	if err := tx.Where("resource_id = ?", id).Delete(&models.SourceEntityModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete resource source entities", "resource_id", id, "error", err)
		return fmt.Errorf("failed to delete resource source entities: %w", err)
	}
	if err := tx.Where("resource_id = ?", id).Delete(&models.ResourceStatsModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete resource stats rows", "resource_id", id, "error", err)
		return fmt.Errorf("failed to delete resource stats rows: %w", err)
	}

	result := tx.Delete(&models.ResourceModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete resource", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("resource", fmt.Sprintf("%d", id))
	}

	r.logger.Infow("resource deleted successfully", "id", id)
	return nil
}

// GetByID retrieves a resource by its ID.
func (r *ResourceRepositoryImpl) GetByID(ctx context.Context, id uint) (*resource.Resource, error) {
	var model models.ResourceModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get resource by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map resource model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map resource: %w", err)
	}

	return entity, nil
}

// GetByProjectAndSlug retrieves a resource by its project and slug.
func (r *ResourceRepositoryImpl) GetByProjectAndSlug(ctx context.Context, projectID uint, slug string) (*resource.Resource, error) {
	var model models.ResourceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("project_id = ? AND slug = ?", projectID, slug).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get resource by slug", "project_id", projectID, "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map resource model to entity", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to map resource: %w", err)
	}

	return entity, nil
}

// ListByProject retrieves all resources of a project.
func (r *ResourceRepositoryImpl) ListByProject(ctx context.Context, projectID uint) ([]*resource.Resource, error) {
	var modelList []*models.ResourceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("project_id = ?", projectID).
		Order("slug ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list resources by project", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map resource models to entities", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to map resources: %w", err)
	}

	return entities, nil
}

// ListIDs retrieves resource IDs in ascending order, paged by (afterID,
// limit).
func (r *ResourceRepositoryImpl) ListIDs(ctx context.Context, afterID uint, limit int) ([]uint, error) {
	var ids []uint

	query := db.GetTxFromContext(ctx, r.db).Model(&models.ResourceModel{}).
		Where("id > ?", afterID).
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Pluck("id", &ids).Error; err != nil {
		r.logger.Errorw("failed to list resource IDs", "after_id", afterID, "error", err)
		return nil, fmt.Errorf("failed to list resource IDs: %w", err)
	}

	return ids, nil
}
