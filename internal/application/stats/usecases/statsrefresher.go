package usecases

import (
	"context"
	"fmt"

	"transtats/internal/application/stats/dto"
	"transtats/internal/domain/language"
	"transtats/internal/domain/resource"
	"transtats/internal/domain/stats"
	"transtats/internal/shared/logger"
)

// StatsRefresher recomputes and stores the statistics row for one
// (resource, language) pair. It is the single write path into the stats
// table shared by submissions, deletions, team lifecycle and the
// recalculation job.
type StatsRefresher struct {
	aggregator *stats.Aggregator
	statsRepo  stats.Repository
	logger     logger.Interface
}

// NewStatsRefresher creates a new StatsRefresher
func NewStatsRefresher(aggregator *stats.Aggregator, statsRepo stats.Repository, logger logger.Interface) *StatsRefresher {
	return &StatsRefresher{
		aggregator: aggregator,
		statsRepo:  statsRepo,
		logger:     logger,
	}
}

// RefreshPair recomputes one pair from the translation store and upserts
// the result. Calling it on a pair with no translations produces a valid
// zero-progress row rather than an absent one.
func (r *StatsRefresher) RefreshPair(ctx context.Context, res *resource.Resource, lang language.Language) (*stats.StatsRow, error) {
	row, err := r.aggregator.Compute(ctx, res, lang)
	if err != nil {
		r.logger.Errorw("failed to compute stats", "resource_id", res.ID(), "language", lang.Code(), "error", err)
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	if err := r.statsRepo.Upsert(ctx, row); err != nil {
		r.logger.Errorw("failed to store stats row", "resource_id", res.ID(), "language", lang.Code(), "error", err)
		return nil, fmt.Errorf("failed to store stats row: %w", err)
	}

	return row, nil
}

// DropRowIfIdle removes the pair's row unless it would lose information:
// the source-language row and rows with translated progress are always
// preserved. Reports whether a row was dropped.
func (r *StatsRefresher) DropRowIfIdle(ctx context.Context, res *resource.Resource, languageCode string) (bool, error) {
	if languageCode == res.SourceLanguageCode() {
		return false, nil
	}

	row, err := r.statsRepo.GetByResourceAndLanguage(ctx, res.ID(), languageCode)
	if err != nil {
		return false, fmt.Errorf("failed to get stats row: %w", err)
	}
	if row == nil {
		return false, nil
	}
	if row.Translated() > 0 {
		return false, nil
	}

	if err := r.statsRepo.DeleteByResourceAndLanguage(ctx, res.ID(), languageCode); err != nil {
		return false, fmt.Errorf("failed to drop stats row: %w", err)
	}

	r.logger.Infow("idle stats row dropped", "resource_id", res.ID(), "language", languageCode)
	return true, nil
}

// toStatsRowResponse converts a domain row into its response shape.
func toStatsRowResponse(row *stats.StatsRow) *dto.StatsRowResponse {
	if row == nil {
		return nil
	}
	return &dto.StatsRowResponse{
		ResourceID:         row.ResourceID(),
		LanguageCode:       row.LanguageCode(),
		Total:              row.Total(),
		Translated:         row.Translated(),
		Untranslated:       row.Untranslated(),
		Reviewed:           row.Reviewed(),
		TotalWords:         row.TotalWords(),
		TranslatedWords:    row.TranslatedWords(),
		UntranslatedWords:  row.UntranslatedWords(),
		Percentage:         row.Percentage(),
		ReviewedPercentage: row.ReviewedPercentage(),
		LastUpdate:         row.LastUpdate(),
		LastCommitterID:    row.LastCommitterID(),
		UpdatedAt:          row.UpdatedAt(),
	}
}
