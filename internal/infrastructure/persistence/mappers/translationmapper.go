package mappers

import (
	"fmt"

	"transtats/internal/domain/translation"
	"transtats/internal/infrastructure/persistence/models"
	"transtats/internal/shared/mapper"
)

// TranslationMapper handles the conversion between domain entities and persistence models.
type TranslationMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.TranslationModel) (*translation.Translation, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *translation.Translation) (*models.TranslationModel, error)

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.TranslationModel) ([]*translation.Translation, error)
}

// TranslationMapperImpl is the concrete implementation of TranslationMapper.
type TranslationMapperImpl struct{}

// NewTranslationMapper creates a new translation mapper.
func NewTranslationMapper() TranslationMapper {
	return &TranslationMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *TranslationMapperImpl) ToEntity(model *models.TranslationModel) (*translation.Translation, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := translation.ReconstructTranslation(
		model.ID,
		model.EntityID,
		model.LanguageCode,
		model.Rule,
		model.String,
		model.StringHash,
		model.WordCount,
		model.Reviewed,
		model.AuthorID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct translation entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *TranslationMapperImpl) ToModel(entity *translation.Translation) (*models.TranslationModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TranslationModel{
		ID:           entity.ID(),
		EntityID:     entity.EntityID(),
		LanguageCode: entity.LanguageCode(),
		Rule:         string(entity.Rule()),
		String:       entity.String(),
		StringHash:   entity.StringHash(),
		WordCount:    entity.WordCount(),
		Reviewed:     entity.Reviewed(),
		AuthorID:     entity.AuthorID(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *TranslationMapperImpl) ToEntities(modelList []*models.TranslationModel) ([]*translation.Translation, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.TranslationModel) uint { return model.ID })
}
