package recalc

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"transtats/internal/application/stats/dto"
	"transtats/internal/application/stats/usecases"
	"transtats/internal/domain/stats"
	"transtats/internal/infrastructure/config"
	"transtats/internal/infrastructure/database"
	"transtats/internal/infrastructure/repository"
	"transtats/internal/shared/logger"
)

var (
	env        string
	resourceID uint
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recalc",
		Short: "Recalculate translation statistics",
		Long: `Rebuild the denormalized statistics rows from the translation store.
Refreshes each resource's source facts, recomputes every active language
and garbage-collects orphaned rows. Interrupt with SIGINT/SIGTERM to stop
at the next resource boundary.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().UintVarP(&resourceID, "resource", "r", 0, "Limit the run to one resource ID (0 = all resources)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	gormDB := database.Get()

	projectRepo := repository.NewProjectRepository(gormDB, log)
	teamRepo := repository.NewTeamRepository(gormDB, log)
	resourceRepo := repository.NewResourceRepository(gormDB, log)
	entityRepo := repository.NewSourceEntityRepository(gormDB, log)
	translationRepo := repository.NewTranslationRepository(gormDB, log)
	statsRepo := repository.NewResourceStatsRepository(gormDB, log)

	aggregator := stats.NewAggregator(entityRepo, translationRepo)
	refresher := usecases.NewStatsRefresher(aggregator, statsRepo, log)

	job := usecases.NewRecalculationJob(
		resourceRepo,
		entityRepo,
		projectRepo,
		teamRepo,
		translationRepo,
		statsRepo,
		refresher,
		cfg.Stats.RecalcBatchSize,
		log,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	req := dto.RecalculateRequest{}
	if resourceID != 0 {
		req.ResourceID = &resourceID
	}

	resp, err := job.Execute(ctx, req)
	if resp != nil {
		fmt.Printf("resources processed: %d\nrows upserted: %d\nrows dropped: %d\n",
			resp.ResourcesProcessed, resp.RowsUpserted, resp.RowsDropped)
	}
	if err != nil {
		return fmt.Errorf("recalculation failed: %w", err)
	}

	return nil
}
