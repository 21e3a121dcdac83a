package usecases

import (
	"context"
	"fmt"

	"transtats/internal/application/stats/dto"
	"transtats/internal/domain/language"
	"transtats/internal/domain/project"
	"transtats/internal/domain/resource"
	"transtats/internal/domain/stats"
	"transtats/internal/shared/db"
	"transtats/internal/shared/logger"
)

// CreateResourceUseCase creates a resource and bootstraps its statistics:
// the source-language row always exists, and every language already teamed
// on the project gets a zero-progress row immediately.
type CreateResourceUseCase struct {
	projectRepo  project.Repository
	teamRepo     project.TeamRepository
	resourceRepo resource.Repository
	refresher    *StatsRefresher
	logger       logger.Interface
}

// NewCreateResourceUseCase creates a new CreateResourceUseCase
func NewCreateResourceUseCase(
	projectRepo project.Repository,
	teamRepo project.TeamRepository,
	resourceRepo resource.Repository,
	refresher *StatsRefresher,
	logger logger.Interface,
) *CreateResourceUseCase {
	return &CreateResourceUseCase{
		projectRepo:  projectRepo,
		teamRepo:     teamRepo,
		resourceRepo: resourceRepo,
		refresher:    refresher,
		logger:       logger,
	}
}

// Execute creates the resource and its initial statistics rows.
func (uc *CreateResourceUseCase) Execute(ctx context.Context, req dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	proj, err := uc.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to get project", "project_id", req.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if proj == nil {
		return nil, project.ErrProjectNotFound
	}

	existing, err := uc.resourceRepo.GetByProjectAndSlug(ctx, proj.ID(), req.Slug)
	if err != nil {
		uc.logger.Errorw("failed to check resource slug", "project_id", proj.ID(), "slug", req.Slug, "error", err)
		return nil, fmt.Errorf("failed to check resource slug: %w", err)
	}
	if existing != nil {
		return nil, resource.ErrResourceSlugExists
	}

	res, err := resource.NewResource(proj.ID(), req.Slug, req.Name, req.SourceLanguageCode)
	if err != nil {
		return nil, fmt.Errorf("failed to build resource: %w", err)
	}

	if err := uc.resourceRepo.Create(ctx, res); err != nil {
		uc.logger.Errorw("failed to create resource", "project_id", proj.ID(), "slug", req.Slug, "error", err)
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	teamLangs, err := uc.teamRepo.ListLanguages(ctx, proj.TeamHolderID())
	if err != nil {
		return nil, fmt.Errorf("failed to list team languages: %w", err)
	}

	for _, code := range unionLanguageCodes(res.SourceLanguageCode(), teamLangs) {
		if _, err := uc.refresher.RefreshPair(ctx, res, language.LookupOrFallback(code)); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("resource created",
		"id", res.ID(),
		"project_id", proj.ID(),
		"slug", res.Slug(),
		"source_language", res.SourceLanguageCode())

	return toResourceResponse(res), nil
}

// ImportSourceEntitiesUseCase replaces a resource's source entity set with
// an imported batch: new strings are created, matched strings keep their
// translations, vanished strings are removed with their translations. The
// resource's source facts and every active language's statistics are
// refreshed afterwards.
type ImportSourceEntitiesUseCase struct {
	projectRepo  project.Repository
	teamRepo     project.TeamRepository
	resourceRepo resource.Repository
	entityRepo   resource.SourceEntityRepository
	statsRepo    stats.Repository
	txManager    *db.TransactionManager
	refresher    *StatsRefresher
	logger       logger.Interface
}

// NewImportSourceEntitiesUseCase creates a new ImportSourceEntitiesUseCase
func NewImportSourceEntitiesUseCase(
	projectRepo project.Repository,
	teamRepo project.TeamRepository,
	resourceRepo resource.Repository,
	entityRepo resource.SourceEntityRepository,
	statsRepo stats.Repository,
	txManager *db.TransactionManager,
	refresher *StatsRefresher,
	logger logger.Interface,
) *ImportSourceEntitiesUseCase {
	return &ImportSourceEntitiesUseCase{
		projectRepo:  projectRepo,
		teamRepo:     teamRepo,
		resourceRepo: resourceRepo,
		entityRepo:   entityRepo,
		statsRepo:    statsRepo,
		txManager:    txManager,
		refresher:    refresher,
		logger:       logger,
	}
}

// Execute applies the import batch and refreshes statistics.
func (uc *ImportSourceEntitiesUseCase) Execute(ctx context.Context, req dto.ImportSourceRequest) (*dto.ImportSourceResponse, error) {
	res, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		uc.logger.Errorw("failed to get resource", "resource_id", req.ResourceID, "error", err)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	if res == nil {
		return nil, resource.ErrResourceNotFound
	}

	resp := &dto.ImportSourceResponse{}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.entityRepo.ListByResource(txCtx, res.ID())
		if err != nil {
			return fmt.Errorf("failed to list existing entities: %w", err)
		}

		byHash := make(map[string]*resource.SourceEntity, len(existing))
		for _, e := range existing {
			byHash[e.StringHash()] = e
		}

		imported := make(map[string]struct{}, len(req.Entities))
		for _, input := range req.Entities {
			hash := resource.HashSourceString(input.SourceString, input.Context)
			if _, dup := imported[hash]; dup {
				continue
			}
			imported[hash] = struct{}{}

			current := byHash[hash]
			if current != nil && current.Pluralized() != input.Pluralized {
				// A pluralized flip invalidates the translation shape;
				// treat it as a new entity.
				if err := uc.entityRepo.Delete(txCtx, current.ID()); err != nil {
					return fmt.Errorf("failed to delete reshaped entity: %w", err)
				}
				current = nil
			}

			if current == nil {
				entity, err := resource.NewSourceEntity(res.ID(), input.SourceString, input.Context, input.Pluralized, input.Position)
				if err != nil {
					return fmt.Errorf("failed to build source entity: %w", err)
				}
				entity.SetComment(input.Comment)
				entity.SetOccurrences(input.Occurrences)
				if err := uc.entityRepo.Create(txCtx, entity); err != nil {
					return fmt.Errorf("failed to create source entity: %w", err)
				}
				resp.Created++
				continue
			}

			current.SetPosition(input.Position)
			current.SetComment(input.Comment)
			current.SetOccurrences(input.Occurrences)
			if err := uc.entityRepo.Update(txCtx, current); err != nil {
				return fmt.Errorf("failed to update source entity: %w", err)
			}
			resp.Updated++
		}

		for hash, e := range byHash {
			if _, keep := imported[hash]; keep {
				continue
			}
			if err := uc.entityRepo.Delete(txCtx, e.ID()); err != nil {
				return fmt.Errorf("failed to delete vanished entity: %w", err)
			}
			resp.Deleted++
		}

		total, words, err := uc.entityRepo.CountByResource(txCtx, res.ID())
		if err != nil {
			return fmt.Errorf("failed to count source entities: %w", err)
		}
		if res.TotalEntities() != total || res.WordCount() != words {
			if err := res.RefreshSourceFacts(total, words); err != nil {
				return fmt.Errorf("failed to refresh source facts: %w", err)
			}
			if err := uc.resourceRepo.Update(txCtx, res); err != nil {
				return fmt.Errorf("failed to store source facts: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("source import failed", "resource_id", res.ID(), "error", err)
		return nil, err
	}

	if err := uc.refreshActiveLanguages(ctx, res); err != nil {
		return nil, err
	}

	uc.logger.Infow("source entities imported",
		"resource_id", res.ID(),
		"created", resp.Created,
		"updated", resp.Updated,
		"deleted", resp.Deleted)

	return resp, nil
}

// refreshActiveLanguages recomputes the source language, every language
// with a stats row and every teamed language for the resource.
func (uc *ImportSourceEntitiesUseCase) refreshActiveLanguages(ctx context.Context, res *resource.Resource) error {
	proj, err := uc.projectRepo.GetByID(ctx, res.ProjectID())
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if proj == nil {
		return project.ErrProjectNotFound
	}

	teamLangs, err := uc.teamRepo.ListLanguages(ctx, proj.TeamHolderID())
	if err != nil {
		return fmt.Errorf("failed to list team languages: %w", err)
	}

	rowLangs, err := uc.statsRepo.ListLanguages(ctx, res.ID())
	if err != nil {
		return fmt.Errorf("failed to list stats languages: %w", err)
	}

	for _, code := range unionLanguageCodes(res.SourceLanguageCode(), teamLangs, rowLangs) {
		if _, err := uc.refresher.RefreshPair(ctx, res, language.LookupOrFallback(code)); err != nil {
			return err
		}
	}
	return nil
}

// toResourceResponse converts a domain resource into its response shape.
func toResourceResponse(res *resource.Resource) *dto.ResourceResponse {
	return &dto.ResourceResponse{
		ID:                 res.ID(),
		ProjectID:          res.ProjectID(),
		Slug:               res.Slug(),
		Name:               res.Name(),
		SourceLanguageCode: res.SourceLanguageCode(),
		TotalEntities:      res.TotalEntities(),
		WordCount:          res.WordCount(),
		CreatedAt:          res.CreatedAt(),
		UpdatedAt:          res.UpdatedAt(),
	}
}
