package mappers

import (
	"fmt"

	"transtats/internal/domain/project"
	"transtats/internal/infrastructure/persistence/models"
	"transtats/internal/shared/mapper"
)

// TeamMapper handles the conversion between domain entities and persistence models.
type TeamMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.TeamModel) (*project.Team, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *project.Team) (*models.TeamModel, error)

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.TeamModel) ([]*project.Team, error)
}

// TeamMapperImpl is the concrete implementation of TeamMapper.
type TeamMapperImpl struct{}

// NewTeamMapper creates a new team mapper.
func NewTeamMapper() TeamMapper {
	return &TeamMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *TeamMapperImpl) ToEntity(model *models.TeamModel) (*project.Team, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := project.ReconstructTeam(
		model.ID,
		model.ProjectID,
		model.LanguageCode,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct team entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *TeamMapperImpl) ToModel(entity *project.Team) (*models.TeamModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TeamModel{
		ID:           entity.ID(),
		ProjectID:    entity.ProjectID(),
		LanguageCode: entity.LanguageCode(),
		CreatedAt:    entity.CreatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *TeamMapperImpl) ToEntities(modelList []*models.TeamModel) ([]*project.Team, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.TeamModel) uint { return model.ID })
}
