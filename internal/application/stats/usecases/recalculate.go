package usecases

import (
	"context"
	"fmt"
	"slices"

	"transtats/internal/application/stats/dto"
	"transtats/internal/domain/language"
	"transtats/internal/domain/project"
	"transtats/internal/domain/resource"
	"transtats/internal/domain/stats"
	"transtats/internal/domain/translation"
	"transtats/internal/shared/logger"
)

// RecalculationJob rebuilds statistics from the translation store: it
// refreshes each resource's denormalized source facts, recomputes every
// language that has a row, a team or is the source language, and
// garbage-collects rows whose language is none of those and has no
// translated progress. The job is the repair path; a correctly maintained
// row is never changed by it.
type RecalculationJob struct {
	resourceRepo    resource.Repository
	entityRepo      resource.SourceEntityRepository
	projectRepo     project.Repository
	teamRepo        project.TeamRepository
	translationRepo translation.Repository
	statsRepo       stats.Repository
	refresher       *StatsRefresher
	batchSize       int
	logger          logger.Interface
}

// NewRecalculationJob creates a new RecalculationJob. batchSize bounds how
// many resource IDs are loaded per page when walking the whole database.
func NewRecalculationJob(
	resourceRepo resource.Repository,
	entityRepo resource.SourceEntityRepository,
	projectRepo project.Repository,
	teamRepo project.TeamRepository,
	translationRepo translation.Repository,
	statsRepo stats.Repository,
	refresher *StatsRefresher,
	batchSize int,
	logger logger.Interface,
) *RecalculationJob {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &RecalculationJob{
		resourceRepo:    resourceRepo,
		entityRepo:      entityRepo,
		projectRepo:     projectRepo,
		teamRepo:        teamRepo,
		translationRepo: translationRepo,
		statsRepo:       statsRepo,
		refresher:       refresher,
		batchSize:       batchSize,
		logger:          logger,
	}
}

// Execute runs the job over one resource or the whole database. It checks
// the context between resources, so a canceled run stops at a resource
// boundary with everything processed so far already committed.
func (j *RecalculationJob) Execute(ctx context.Context, req dto.RecalculateRequest) (*dto.RecalculateResponse, error) {
	resp := &dto.RecalculateResponse{}

	if req.ResourceID != nil {
		if err := j.processResource(ctx, *req.ResourceID, resp); err != nil {
			return resp, err
		}
		j.logger.Infow("recalculation completed",
			"resources_processed", resp.ResourcesProcessed,
			"rows_upserted", resp.RowsUpserted,
			"rows_dropped", resp.RowsDropped)
		return resp, nil
	}

	afterID := uint(0)
	for {
		ids, err := j.resourceRepo.ListIDs(ctx, afterID, j.batchSize)
		if err != nil {
			return resp, fmt.Errorf("failed to page resource IDs: %w", err)
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				j.logger.Warnw("recalculation interrupted",
					"resources_processed", resp.ResourcesProcessed)
				return resp, err
			}
			if err := j.processResource(ctx, id, resp); err != nil {
				return resp, err
			}
		}
		afterID = ids[len(ids)-1]
	}

	j.logger.Infow("recalculation completed",
		"resources_processed", resp.ResourcesProcessed,
		"rows_upserted", resp.RowsUpserted,
		"rows_dropped", resp.RowsDropped)
	return resp, nil
}

func (j *RecalculationJob) processResource(ctx context.Context, resourceID uint, resp *dto.RecalculateResponse) error {
	res, err := j.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return fmt.Errorf("failed to get resource: %w", err)
	}
	if res == nil {
		// Deleted between paging and processing.
		return nil
	}

	if err := j.refreshSourceFacts(ctx, res); err != nil {
		return err
	}

	teamLangs, err := j.teamLanguages(ctx, res)
	if err != nil {
		return err
	}

	rowLangs, err := j.statsRepo.ListLanguages(ctx, res.ID())
	if err != nil {
		return fmt.Errorf("failed to list stats languages: %w", err)
	}

	transLangs, err := j.translationRepo.ListLanguagesByResource(ctx, res.ID())
	if err != nil {
		return fmt.Errorf("failed to list translation languages: %w", err)
	}

	codes := unionLanguageCodes(res.SourceLanguageCode(), teamLangs, rowLangs, transLangs)

	for _, code := range codes {
		lang := language.LookupOrFallback(code)
		if _, err := j.refresher.RefreshPair(ctx, res, lang); err != nil {
			return err
		}
		resp.RowsUpserted++
	}

	for _, code := range rowLangs {
		if slices.Contains(teamLangs, code) {
			continue
		}
		dropped, err := j.refresher.DropRowIfIdle(ctx, res, code)
		if err != nil {
			return err
		}
		if dropped {
			resp.RowsDropped++
		}
	}

	resp.ResourcesProcessed++
	return nil
}

// refreshSourceFacts recounts the resource's entities and source words and
// persists the result only when it differs from the stored facts.
func (j *RecalculationJob) refreshSourceFacts(ctx context.Context, res *resource.Resource) error {
	total, words, err := j.entityRepo.CountByResource(ctx, res.ID())
	if err != nil {
		return fmt.Errorf("failed to count source entities: %w", err)
	}

	if res.TotalEntities() == total && res.WordCount() == words {
		return nil
	}

	if err := res.RefreshSourceFacts(total, words); err != nil {
		return fmt.Errorf("failed to refresh source facts: %w", err)
	}
	if err := j.resourceRepo.Update(ctx, res); err != nil {
		return fmt.Errorf("failed to store source facts: %w", err)
	}

	j.logger.Infow("source facts refreshed",
		"resource_id", res.ID(),
		"total_entities", total,
		"word_count", words)
	return nil
}

// teamLanguages resolves the languages with an active team over the
// resource, following the owning project's hub delegation.
func (j *RecalculationJob) teamLanguages(ctx context.Context, res *resource.Resource) ([]string, error) {
	proj, err := j.projectRepo.GetByID(ctx, res.ProjectID())
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if proj == nil {
		return nil, project.ErrProjectNotFound
	}

	langs, err := j.teamRepo.ListLanguages(ctx, proj.TeamHolderID())
	if err != nil {
		return nil, fmt.Errorf("failed to list team languages: %w", err)
	}
	return langs, nil
}

// unionLanguageCodes merges the language code sets, sorted and deduplicated.
func unionLanguageCodes(source string, sets ...[]string) []string {
	seen := map[string]struct{}{source: {}}
	codes := []string{source}
	for _, set := range sets {
		for _, code := range set {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	return codes
}
