package mappers

import (
	"fmt"

	"transtats/internal/domain/stats"
	"transtats/internal/infrastructure/persistence/models"
	"transtats/internal/shared/mapper"
)

// ResourceStatsMapper handles the conversion between domain entities and persistence models.
type ResourceStatsMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.ResourceStatsModel) (*stats.StatsRow, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *stats.StatsRow) (*models.ResourceStatsModel, error)

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.ResourceStatsModel) ([]*stats.StatsRow, error)
}

// ResourceStatsMapperImpl is the concrete implementation of ResourceStatsMapper.
type ResourceStatsMapperImpl struct{}

// NewResourceStatsMapper creates a new resource stats mapper.
func NewResourceStatsMapper() ResourceStatsMapper {
	return &ResourceStatsMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *ResourceStatsMapperImpl) ToEntity(model *models.ResourceStatsModel) (*stats.StatsRow, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := stats.ReconstructStatsRow(
		model.ID,
		model.ResourceID,
		model.LanguageCode,
		model.Total,
		model.Translated,
		model.Untranslated,
		model.Reviewed,
		model.TotalWords,
		model.TranslatedWords,
		model.UntranslatedWords,
		model.LastUpdate,
		model.LastCommitterID,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct stats row entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *ResourceStatsMapperImpl) ToModel(entity *stats.StatsRow) (*models.ResourceStatsModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ResourceStatsModel{
		ID:                entity.ID(),
		ResourceID:        entity.ResourceID(),
		LanguageCode:      entity.LanguageCode(),
		Total:             entity.Total(),
		Translated:        entity.Translated(),
		Untranslated:      entity.Untranslated(),
		Reviewed:          entity.Reviewed(),
		TotalWords:        entity.TotalWords(),
		TranslatedWords:   entity.TranslatedWords(),
		UntranslatedWords: entity.UntranslatedWords(),
		LastUpdate:        entity.LastUpdate(),
		LastCommitterID:   entity.LastCommitterID(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *ResourceStatsMapperImpl) ToEntities(modelList []*models.ResourceStatsModel) ([]*stats.StatsRow, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ResourceStatsModel) uint { return model.ID })
}
