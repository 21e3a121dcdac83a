package usecases

import (
	"context"
	"fmt"

	"transtats/internal/application/stats/dto"
	"transtats/internal/domain/stats"
	"transtats/internal/shared/logger"
)

// GetStatsUseCase reads statistics rows. It never computes anything; it
// serves whatever the maintenance layer last stored.
type GetStatsUseCase struct {
	statsRepo stats.Repository
	logger    logger.Interface
}

// NewGetStatsUseCase creates a new GetStatsUseCase
func NewGetStatsUseCase(statsRepo stats.Repository, logger logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// ByResource returns every language row of a resource.
func (uc *GetStatsUseCase) ByResource(ctx context.Context, resourceID uint) ([]*dto.StatsRowResponse, error) {
	rows, err := uc.statsRepo.ListByResource(ctx, resourceID)
	if err != nil {
		uc.logger.Errorw("failed to list stats by resource", "resource_id", resourceID, "error", err)
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}

	responses := make([]*dto.StatsRowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, toStatsRowResponse(row))
	}
	return responses, nil
}

// ByLanguage returns every resource row for a language.
func (uc *GetStatsUseCase) ByLanguage(ctx context.Context, languageCode string) ([]*dto.StatsRowResponse, error) {
	rows, err := uc.statsRepo.ListByLanguage(ctx, languageCode)
	if err != nil {
		uc.logger.Errorw("failed to list stats by language", "language", languageCode, "error", err)
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}

	responses := make([]*dto.StatsRowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, toStatsRowResponse(row))
	}
	return responses, nil
}

// GetPair returns the row for one (resource, language) pair.
func (uc *GetStatsUseCase) GetPair(ctx context.Context, resourceID uint, languageCode string) (*dto.StatsRowResponse, error) {
	row, err := uc.statsRepo.GetByResourceAndLanguage(ctx, resourceID, languageCode)
	if err != nil {
		uc.logger.Errorw("failed to get stats row", "resource_id", resourceID, "language", languageCode, "error", err)
		return nil, fmt.Errorf("failed to get stats row: %w", err)
	}
	if row == nil {
		return nil, stats.ErrStatsRowNotFound
	}

	return toStatsRowResponse(row), nil
}
