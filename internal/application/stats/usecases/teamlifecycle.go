package usecases

import (
	"context"
	"fmt"

	"transtats/internal/application/stats/dto"
	"transtats/internal/domain/language"
	"transtats/internal/domain/project"
	"transtats/internal/domain/resource"
	"transtats/internal/shared/logger"
)

// CreateTeamUseCase creates the team for a (project, language) pair and
// materializes a statistics row for every resource the team now covers,
// including resources of projects that outsource to this one.
type CreateTeamUseCase struct {
	projectRepo  project.Repository
	teamRepo     project.TeamRepository
	resourceRepo resource.Repository
	refresher    *StatsRefresher
	logger       logger.Interface
}

// NewCreateTeamUseCase creates a new CreateTeamUseCase
func NewCreateTeamUseCase(
	projectRepo project.Repository,
	teamRepo project.TeamRepository,
	resourceRepo resource.Repository,
	refresher *StatsRefresher,
	logger logger.Interface,
) *CreateTeamUseCase {
	return &CreateTeamUseCase{
		projectRepo:  projectRepo,
		teamRepo:     teamRepo,
		resourceRepo: resourceRepo,
		refresher:    refresher,
		logger:       logger,
	}
}

// Execute creates the team and ensures a row for each covered resource.
func (uc *CreateTeamUseCase) Execute(ctx context.Context, req dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	proj, err := uc.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to get project", "project_id", req.ProjectID, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if proj == nil {
		return nil, project.ErrProjectNotFound
	}

	lang, ok := language.Lookup(req.LanguageCode)
	if !ok {
		return nil, language.ErrUnknownLanguage
	}

	existing, err := uc.teamRepo.GetByProjectAndLanguage(ctx, proj.ID(), lang.Code())
	if err != nil {
		uc.logger.Errorw("failed to check existing team", "project_id", proj.ID(), "language", lang.Code(), "error", err)
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}
	if existing != nil {
		return nil, project.ErrTeamExists
	}

	team, err := project.NewTeam(proj.ID(), lang.Code())
	if err != nil {
		return nil, fmt.Errorf("failed to build team: %w", err)
	}

	if err := uc.teamRepo.Create(ctx, team); err != nil {
		uc.logger.Errorw("failed to create team", "project_id", proj.ID(), "language", lang.Code(), "error", err)
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	covered, err := coveredResources(ctx, uc.projectRepo, uc.resourceRepo, proj)
	if err != nil {
		return nil, err
	}

	for _, res := range covered {
		if _, err := uc.refresher.RefreshPair(ctx, res, lang); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("team created",
		"project_id", proj.ID(),
		"language", lang.Code(),
		"resources_covered", len(covered))

	return &dto.TeamResponse{
		ID:           team.ID(),
		ProjectID:    team.ProjectID(),
		LanguageCode: team.LanguageCode(),
		CreatedAt:    team.CreatedAt(),
	}, nil
}

// DeleteTeamUseCase removes the team for a (project, language) pair and
// drops the now-orphaned statistics rows, preserving any row with
// translated progress and every source-language row.
type DeleteTeamUseCase struct {
	projectRepo  project.Repository
	teamRepo     project.TeamRepository
	resourceRepo resource.Repository
	refresher    *StatsRefresher
	logger       logger.Interface
}

// NewDeleteTeamUseCase creates a new DeleteTeamUseCase
func NewDeleteTeamUseCase(
	projectRepo project.Repository,
	teamRepo project.TeamRepository,
	resourceRepo resource.Repository,
	refresher *StatsRefresher,
	logger logger.Interface,
) *DeleteTeamUseCase {
	return &DeleteTeamUseCase{
		projectRepo:  projectRepo,
		teamRepo:     teamRepo,
		resourceRepo: resourceRepo,
		refresher:    refresher,
		logger:       logger,
	}
}

// Execute deletes the team and sweeps idle rows on every covered resource.
func (uc *DeleteTeamUseCase) Execute(ctx context.Context, req dto.DeleteTeamRequest) error {
	proj, err := uc.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to get project", "project_id", req.ProjectID, "error", err)
		return fmt.Errorf("failed to get project: %w", err)
	}
	if proj == nil {
		return project.ErrProjectNotFound
	}

	team, err := uc.teamRepo.GetByProjectAndLanguage(ctx, proj.ID(), req.LanguageCode)
	if err != nil {
		uc.logger.Errorw("failed to get team", "project_id", proj.ID(), "language", req.LanguageCode, "error", err)
		return fmt.Errorf("failed to get team: %w", err)
	}
	if team == nil {
		return project.ErrTeamNotFound
	}

	if err := uc.teamRepo.Delete(ctx, team.ID()); err != nil {
		uc.logger.Errorw("failed to delete team", "id", team.ID(), "error", err)
		return fmt.Errorf("failed to delete team: %w", err)
	}

	covered, err := coveredResources(ctx, uc.projectRepo, uc.resourceRepo, proj)
	if err != nil {
		return err
	}

	dropped := 0
	for _, res := range covered {
		ok, err := uc.refresher.DropRowIfIdle(ctx, res, team.LanguageCode())
		if err != nil {
			return err
		}
		if ok {
			dropped++
		}
	}

	uc.logger.Infow("team deleted",
		"project_id", proj.ID(),
		"language", team.LanguageCode(),
		"rows_dropped", dropped)

	return nil
}

// coveredResources returns the resources whose statistics a team on proj
// governs: the project's own resources plus those of every project
// outsourcing to it.
func coveredResources(ctx context.Context, projectRepo project.Repository, resourceRepo resource.Repository, proj *project.Project) ([]*resource.Resource, error) {
	projects := []*project.Project{proj}

	outsourcing, err := projectRepo.ListOutsourcing(ctx, proj.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list outsourcing projects: %w", err)
	}
	projects = append(projects, outsourcing...)

	var covered []*resource.Resource
	for _, p := range projects {
		resources, err := resourceRepo.ListByProject(ctx, p.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to list project resources: %w", err)
		}
		covered = append(covered, resources...)
	}

	return covered, nil
}
