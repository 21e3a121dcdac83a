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

// DeleteTranslationsUseCase removes every translation of a resource in one
// language. The statistics row is not dropped; it resets to zero progress.
type DeleteTranslationsUseCase struct {
	resourceRepo    resource.Repository
	translationRepo translation.Repository
	txManager       *db.TransactionManager
	refresher       *StatsRefresher
	logger          logger.Interface
}

// NewDeleteTranslationsUseCase creates a new DeleteTranslationsUseCase
func NewDeleteTranslationsUseCase(
	resourceRepo resource.Repository,
	translationRepo translation.Repository,
	txManager *db.TransactionManager,
	refresher *StatsRefresher,
	logger logger.Interface,
) *DeleteTranslationsUseCase {
	return &DeleteTranslationsUseCase{
		resourceRepo:    resourceRepo,
		translationRepo: translationRepo,
		txManager:       txManager,
		refresher:       refresher,
		logger:          logger,
	}
}

// Execute deletes the pair's translations atomically and returns the
// refreshed (zeroed) statistics row.
func (uc *DeleteTranslationsUseCase) Execute(ctx context.Context, req dto.DeleteTranslationsRequest) (*dto.StatsRowResponse, error) {
	res, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		uc.logger.Errorw("failed to get resource", "resource_id", req.ResourceID, "error", err)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	if res == nil {
		return nil, resource.ErrResourceNotFound
	}

	lang := language.LookupOrFallback(req.LanguageCode)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.translationRepo.DeleteByResourceAndLanguage(txCtx, res.ID(), lang.Code())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete translations", "resource_id", res.ID(), "language", lang.Code(), "error", err)
		return nil, fmt.Errorf("failed to delete translations: %w", err)
	}

	row, err := uc.refresher.RefreshPair(ctx, res, lang)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("translations deleted",
		"resource_id", res.ID(),
		"language", lang.Code(),
		"untranslated", row.Untranslated())

	return toStatsRowResponse(row), nil
}
