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

// TeamRepositoryImpl implements the project.TeamRepository interface.
type TeamRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TeamMapper
	logger logger.Interface
}

// NewTeamRepository creates a new team repository instance.
func NewTeamRepository(gormDB *gorm.DB, logger logger.Interface) project.TeamRepository {
	return &TeamRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewTeamMapper(),
		logger: logger,
	}
}

// Create creates a new team in the database.
func (r *TeamRepositoryImpl) Create(ctx context.Context, team *project.Team) error {
	model, err := r.mapper.ToModel(team)
	if err != nil {
		r.logger.Errorw("failed to map team entity to model", "error", err)
		return fmt.Errorf("failed to map team entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return errors.NewConflictError("team already exists", team.LanguageCode())
		}
		r.logger.Errorw("failed to create team in database", "project_id", team.ProjectID(), "language", team.LanguageCode(), "error", err)
		return fmt.Errorf("failed to create team: %w", err)
	}

	if err := team.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set team ID", "error", err)
		return fmt.Errorf("failed to set team ID: %w", err)
	}

	r.logger.Infow("team created successfully", "id", model.ID, "project_id", model.ProjectID, "language", model.LanguageCode)
	return nil
}

// Delete deletes a team by ID.
func (r *TeamRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.TeamModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete team", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete team: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("team", fmt.Sprintf("%d", id))
	}

	r.logger.Infow("team deleted successfully", "id", id)
	return nil
}

// GetByProjectAndLanguage retrieves the team for a (project, language) pair.
func (r *TeamRepositoryImpl) GetByProjectAndLanguage(ctx context.Context, projectID uint, languageCode string) (*project.Team, error) {
	var model models.TeamModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("project_id = ? AND language_code = ?", projectID, languageCode).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get team", "project_id", projectID, "language", languageCode, "error", err)
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map team model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map team: %w", err)
	}

	return entity, nil
}

// ListLanguages retrieves the language codes that have a team on the project.
func (r *TeamRepositoryImpl) ListLanguages(ctx context.Context, projectID uint) ([]string, error) {
	var codes []string

	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TeamModel{}).
		Where("project_id = ?", projectID).
		Order("language_code ASC").
		Pluck("language_code", &codes).Error; err != nil {
		r.logger.Errorw("failed to list team languages", "project_id", projectID, "error", err)
		return nil, fmt.Errorf("failed to list team languages: %w", err)
	}

	return codes, nil
}
