package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"transtats/internal/domain/project"
	"transtats/internal/infrastructure/persistence/mappers"
	"transtats/internal/infrastructure/persistence/models"
	"transtats/internal/shared/db"
	"transtats/internal/shared/errors"
	"transtats/internal/shared/logger"
)

// ProjectRepositoryImpl implements the project.Repository interface.
type ProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
	logger logger.Interface
}

// NewProjectRepository creates a new project repository instance.
func NewProjectRepository(gormDB *gorm.DB, logger logger.Interface) project.Repository {
	return &ProjectRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewProjectMapper(),
		logger: logger,
	}
}

// Create creates a new project in the database.
func (r *ProjectRepositoryImpl) Create(ctx context.Context, p *project.Project) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map project entity to model", "error", err)
		return fmt.Errorf("failed to map project entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("project already exists", p.Slug())
		}
		r.logger.Errorw("failed to create project in database", "slug", p.Slug(), "error", err)
		return fmt.Errorf("failed to create project: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set project ID", "error", err)
		return fmt.Errorf("failed to set project ID: %w", err)
	}

	r.logger.Infow("project created successfully", "id", model.ID, "slug", model.Slug)
	return nil
}

// Update updates an existing project.
func (r *ProjectRepositoryImpl) Update(ctx context.Context, p *project.Project) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map project entity to model", "error", err)
		return fmt.Errorf("failed to map project entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"slug":         model.Slug,
			"name":         model.Name,
			"description":  model.Description,
			"outsource_id": model.OutsourceID,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "Duplicate entry") || strings.Contains(result.Error.Error(), "duplicate key") || strings.Contains(result.Error.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("project already exists", p.Slug())
		}
		r.logger.Errorw("failed to update project", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("project", fmt.Sprintf("%d", model.ID))
	}

	return nil
}

// Delete deletes a project and everything under it: teams, resources with
// their entities, translations and stats rows.
func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	resourceIDs := tx.Model(&models.ResourceModel{}).Select("id").Where("project_id = ?", id)
	entityIDs := tx.Model(&models.SourceEntityModel{}).Select("id").
		Where("resource_id IN (?)", resourceIDs)

	if err := tx.Where("entity_id IN (?)", entityIDs).Delete(&models.TranslationModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete project translations", "project_id", id, "error", err)
		return fmt.Errorf("failed to delete project translations: %w", err)
	}
	if err := tx.Where("resource_id IN (?)", resourceIDs).Delete(&models.SourceEntityModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete project source entities", "project_id", id, "error", err)
		return fmt.Errorf("failed to delete project source entities: %w", err)
	}
	if err := tx.Where("resource_id IN (?)", resourceIDs).Delete(&models.ResourceStatsModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete project stats rows", "project_id", id, "error", err)
		return fmt.Errorf("failed to delete project stats rows: %w", err)
	}
	if err := tx.Where("project_id = ?", id).Delete(&models.ResourceModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete project resources", "project_id", id, "error", err)
		return fmt.Errorf("failed to delete project resources: %w", err)
	}
	if err := tx.Where("project_id = ?", id).Delete(&models.TeamModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete project teams", "project_id", id, "error", err)
		return fmt.Errorf("failed to delete project teams: %w", err)
	}

	result := tx.Delete(&models.ProjectModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete project", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("project", fmt.Sprintf("%d", id))
	}

	r.logger.Infow("project deleted successfully", "id", id)
	return nil
}

// GetByID retrieves a project by its ID.
func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get project by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map project model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map project: %w", err)
	}

	return entity, nil
}

// GetBySlug retrieves a project by its slug.
func (r *ProjectRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	var model models.ProjectModel

	if err := db.GetTxFromContext(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get project by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map project model to entity", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to map project: %w", err)
	}

	return entity, nil
}

// ListOutsourcing retrieves the projects that delegate their teams to the
// given hub project.
func (r *ProjectRepositoryImpl) ListOutsourcing(ctx context.Context, hubID uint) ([]*project.Project, error) {
	var modelList []*models.ProjectModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("outsource_id = ?", hubID).
		Order("slug ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list outsourcing projects", "hub_id", hubID, "error", err)
		return nil, fmt.Errorf("failed to list outsourcing projects: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map project models to entities", "hub_id", hubID, "error", err)
		return nil, fmt.Errorf("failed to map projects: %w", err)
	}

	return entities, nil
}
