package usecases

import (
	"context"
	"fmt"

	"transtats/internal/application/stats/dto"
	"transtats/internal/domain/language"
	"transtats/internal/domain/resource"
	"transtats/internal/domain/translation"
	"transtats/internal/shared/db"
	"transtats/internal/shared/logger"
)

// SubmitTranslationsUseCase applies one batch of translation strings for a
// single (resource, language) pair: all rows are written in one
// transaction, then the pair's statistics are recomputed once.
type SubmitTranslationsUseCase struct {
	resourceRepo    resource.Repository
	entityRepo      resource.SourceEntityRepository
	translationRepo translation.Repository
	txManager       *db.TransactionManager
	refresher       *StatsRefresher
	logger          logger.Interface
}

// NewSubmitTranslationsUseCase creates a new SubmitTranslationsUseCase
func NewSubmitTranslationsUseCase(
	resourceRepo resource.Repository,
	entityRepo resource.SourceEntityRepository,
	translationRepo translation.Repository,
	txManager *db.TransactionManager,
	refresher *StatsRefresher,
	logger logger.Interface,
) *SubmitTranslationsUseCase {
	return &SubmitTranslationsUseCase{
		resourceRepo:    resourceRepo,
		entityRepo:      entityRepo,
		translationRepo: translationRepo,
		txManager:       txManager,
		refresher:       refresher,
		logger:          logger,
	}
}

// Execute validates and stores the batch, then returns the refreshed
// statistics row.
func (uc *SubmitTranslationsUseCase) Execute(ctx context.Context, req dto.SubmitTranslationsRequest) (*dto.StatsRowResponse, error) {
	res, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		uc.logger.Errorw("failed to get resource", "resource_id", req.ResourceID, "error", err)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	if res == nil {
		return nil, resource.ErrResourceNotFound
	}

	lang := language.LookupOrFallback(req.LanguageCode)

	// Validate the whole batch before writing anything.
	entities := make(map[uint]*resource.SourceEntity, len(req.Translations))
	for _, input := range req.Translations {
		entity, ok := entities[input.EntityID]
		if !ok {
			entity, err = uc.entityRepo.GetByID(ctx, input.EntityID)
			if err != nil {
				uc.logger.Errorw("failed to get source entity", "entity_id", input.EntityID, "error", err)
				return nil, fmt.Errorf("failed to get source entity: %w", err)
			}
			if entity == nil || entity.ResourceID() != res.ID() {
				return nil, resource.ErrEntityNotFound
			}
			entities[input.EntityID] = entity
		}

		rule := language.Category(input.Rule)
		if !translation.RuleAllowed(lang, entity.Pluralized(), rule) {
			uc.logger.Warnw("rejected plural category",
				"entity_id", entity.ID(),
				"language", lang.Code(),
				"rule", input.Rule,
				"pluralized", entity.Pluralized())
			return nil, translation.ErrRuleNotApplicable
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, input := range req.Translations {
			existing, err := uc.translationRepo.GetByEntityAndLanguage(txCtx, input.EntityID, lang.Code())
			if err != nil {
				return fmt.Errorf("failed to get existing translations: %w", err)
			}

			rule := language.Category(input.Rule)
			row := existing[rule]
			if row != nil {
				row.Update(input.String, req.AuthorID, input.Reviewed)
			} else {
				row, err = translation.NewTranslation(input.EntityID, lang.Code(), rule, input.String, req.AuthorID, input.Reviewed)
				if err != nil {
					return fmt.Errorf("failed to build translation: %w", err)
				}
			}

			if err := uc.translationRepo.Upsert(txCtx, row); err != nil {
				return fmt.Errorf("failed to upsert translation: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to apply translation batch",
			"resource_id", res.ID(),
			"language", lang.Code(),
			"count", len(req.Translations),
			"error", err)
		return nil, err
	}

	row, err := uc.refresher.RefreshPair(ctx, res, lang)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("translation batch applied",
		"resource_id", res.ID(),
		"language", lang.Code(),
		"count", len(req.Translations),
		"translated", row.Translated(),
		"total", row.Total())

	return toStatsRowResponse(row), nil
}
