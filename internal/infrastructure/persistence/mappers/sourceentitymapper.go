package mappers

import (
	"fmt"

	"transtats/internal/domain/resource"
	"transtats/internal/infrastructure/persistence/models"
	"transtats/internal/shared/mapper"
)

// SourceEntityMapper handles the conversion between domain entities and persistence models.
type SourceEntityMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.SourceEntityModel) (*resource.SourceEntity, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *resource.SourceEntity) (*models.SourceEntityModel, error)

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.SourceEntityModel) ([]*resource.SourceEntity, error)
}

// SourceEntityMapperImpl is the concrete implementation of SourceEntityMapper.
type SourceEntityMapperImpl struct{}

// NewSourceEntityMapper creates a new source entity mapper.
func NewSourceEntityMapper() SourceEntityMapper {
	return &SourceEntityMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *SourceEntityMapperImpl) ToEntity(model *models.SourceEntityModel) (*resource.SourceEntity, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := resource.ReconstructSourceEntity(
		model.ID,
		model.ResourceID,
		model.StringHash,
		model.SourceString,
		model.Context,
		model.Pluralized,
		model.Position,
		model.Comment,
		model.Occurrences,
		model.WordCount,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct source entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *SourceEntityMapperImpl) ToModel(entity *resource.SourceEntity) (*models.SourceEntityModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SourceEntityModel{
		ID:           entity.ID(),
		ResourceID:   entity.ResourceID(),
		StringHash:   entity.StringHash(),
		SourceString: entity.SourceString(),
		Context:      entity.Context(),
		Pluralized:   entity.Pluralized(),
		Position:     entity.Position(),
		Comment:      entity.Comment(),
		Occurrences:  entity.Occurrences(),
		WordCount:    entity.WordCount(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *SourceEntityMapperImpl) ToEntities(modelList []*models.SourceEntityModel) ([]*resource.SourceEntity, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SourceEntityModel) uint { return model.ID })
}
