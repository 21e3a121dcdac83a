package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"transtats/internal/application/stats/dto"
	"transtats/internal/domain/language"
	"transtats/internal/domain/project"
	"transtats/internal/domain/resource"
	"transtats/internal/domain/stats"
	"transtats/internal/domain/translation"
	"transtats/internal/infrastructure/migration"
	"transtats/internal/infrastructure/persistence/models"
	"transtats/internal/infrastructure/repository"
	"transtats/internal/shared/db"
	"transtats/internal/shared/logger"
)

// testEnv wires the use cases against a real in-memory database so the
// scenarios exercise the same SQL paths as production.
type testEnv struct {
	db *gorm.DB

	projectRepo     project.Repository
	teamRepo        project.TeamRepository
	resourceRepo    resource.Repository
	entityRepo      resource.SourceEntityRepository
	translationRepo translation.Repository
	statsRepo       stats.Repository

	createResource *CreateResourceUseCase
	importSource   *ImportSourceEntitiesUseCase
	submit         *SubmitTranslationsUseCase
	deleteTrans    *DeleteTranslationsUseCase
	createTeam     *CreateTeamUseCase
	deleteTeam     *DeleteTeamUseCase
	getStats       *GetStatsUseCase
	recalc         *RecalculationJob
}

func newTestEnv(t *testing.T) *testEnv {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(migration.AutoMigrateModels()...))

	log := logger.NewLogger()
	txManager := db.NewTransactionManager(gormDB)

	env := &testEnv{
		db:              gormDB,
		projectRepo:     repository.NewProjectRepository(gormDB, log),
		teamRepo:        repository.NewTeamRepository(gormDB, log),
		resourceRepo:    repository.NewResourceRepository(gormDB, log),
		entityRepo:      repository.NewSourceEntityRepository(gormDB, log),
		translationRepo: repository.NewTranslationRepository(gormDB, log),
		statsRepo:       repository.NewResourceStatsRepository(gormDB, log),
	}

	aggregator := stats.NewAggregator(env.entityRepo, env.translationRepo)
	refresher := NewStatsRefresher(aggregator, env.statsRepo, log)

	env.createResource = NewCreateResourceUseCase(env.projectRepo, env.teamRepo, env.resourceRepo, refresher, log)
	env.importSource = NewImportSourceEntitiesUseCase(env.projectRepo, env.teamRepo, env.resourceRepo, env.entityRepo, env.statsRepo, txManager, refresher, log)
	env.submit = NewSubmitTranslationsUseCase(env.resourceRepo, env.entityRepo, env.translationRepo, txManager, refresher, log)
	env.deleteTrans = NewDeleteTranslationsUseCase(env.resourceRepo, env.translationRepo, txManager, refresher, log)
	env.createTeam = NewCreateTeamUseCase(env.projectRepo, env.teamRepo, env.resourceRepo, refresher, log)
	env.deleteTeam = NewDeleteTeamUseCase(env.projectRepo, env.teamRepo, env.resourceRepo, refresher, log)
	env.getStats = NewGetStatsUseCase(env.statsRepo, log)
	env.recalc = NewRecalculationJob(env.resourceRepo, env.entityRepo, env.projectRepo, env.teamRepo, env.translationRepo, env.statsRepo, refresher, 2, log)

	return env
}

func (env *testEnv) newProject(t *testing.T, ctx context.Context, slug string) *project.Project {
	proj, err := project.NewProject(slug, slug, "")
	require.NoError(t, err)
	require.NoError(t, env.projectRepo.Create(ctx, proj))
	return proj
}

func (env *testEnv) newResource(t *testing.T, ctx context.Context, projectID uint, slug string, entities ...dto.SourceEntityInput) *resource.Resource {
	resp, err := env.createResource.Execute(ctx, dto.CreateResourceRequest{
		ProjectID:          projectID,
		Slug:               slug,
		Name:               slug,
		SourceLanguageCode: "en",
	})
	require.NoError(t, err)

	if len(entities) > 0 {
		_, err = env.importSource.Execute(ctx, dto.ImportSourceRequest{
			ResourceID: resp.ID,
			Entities:   entities,
		})
		require.NoError(t, err)
	}

	res, err := env.resourceRepo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func (env *testEnv) entitiesOf(t *testing.T, ctx context.Context, resourceID uint) []*resource.SourceEntity {
	entities, err := env.entityRepo.ListByResource(ctx, resourceID)
	require.NoError(t, err)
	return entities
}

func (env *testEnv) pair(t *testing.T, ctx context.Context, resourceID uint, languageCode string) *dto.StatsRowResponse {
	row, err := env.getStats.GetPair(ctx, resourceID, languageCode)
	require.NoError(t, err)
	return row
}

func TestSubmitTranslationsProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proj := env.newProject(t, ctx, "website")
	res := env.newResource(t, ctx, proj.ID(), "core",
		dto.SourceEntityInput{SourceString: "Hello world", Position: 0},
		dto.SourceEntityInput{SourceString: "One file", Pluralized: true, Position: 1},
	)
	entities := env.entitiesOf(t, ctx, res.ID())
	require.Len(t, entities, 2)
	plain, plural := entities[0], entities[1]
	require.True(t, plural.Pluralized())

	_, err := env.createTeam.Execute(ctx, dto.CreateTeamRequest{ProjectID: proj.ID(), LanguageCode: "fr"})
	require.NoError(t, err)

	t.Run("teamed language starts at zero progress", func(t *testing.T) {
		row := env.pair(t, ctx, res.ID(), "fr")
		assert.Equal(t, 2, row.Total)
		assert.Equal(t, 0, row.Translated)
		assert.Equal(t, 2, row.Untranslated)
		assert.Equal(t, 4, row.TotalWords)
		assert.Equal(t, 0, row.Percentage)
	})

	t.Run("plain entity counts once its string arrives", func(t *testing.T) {
		row, err := env.submit.Execute(ctx, dto.SubmitTranslationsRequest{
			ResourceID:   res.ID(),
			LanguageCode: "fr",
			AuthorID:     7,
			Translations: []dto.TranslationInput{
				{EntityID: plain.ID(), Rule: "other", String: "Bonjour le monde"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, row.Translated)
		assert.Equal(t, 1, row.Untranslated)
		assert.Equal(t, 50, row.Percentage)
		assert.Equal(t, 2, row.TranslatedWords)
		require.NotNil(t, row.LastCommitterID)
		assert.Equal(t, uint(7), *row.LastCommitterID)
	})

	t.Run("incomplete plural set does not count", func(t *testing.T) {
		row, err := env.submit.Execute(ctx, dto.SubmitTranslationsRequest{
			ResourceID:   res.ID(),
			LanguageCode: "fr",
			Translations: []dto.TranslationInput{
				{EntityID: plural.ID(), Rule: "one", String: "Un fichier"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, row.Translated)
	})

	t.Run("completing the plural set counts", func(t *testing.T) {
		row, err := env.submit.Execute(ctx, dto.SubmitTranslationsRequest{
			ResourceID:   res.ID(),
			LanguageCode: "fr",
			Translations: []dto.TranslationInput{
				{EntityID: plural.ID(), Rule: "other", String: "%d fichiers"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, row.Translated)
		assert.Equal(t, 0, row.Untranslated)
		assert.Equal(t, 100, row.Percentage)
	})

	t.Run("review requires every row reviewed", func(t *testing.T) {
		row, err := env.submit.Execute(ctx, dto.SubmitTranslationsRequest{
			ResourceID:   res.ID(),
			LanguageCode: "fr",
			Translations: []dto.TranslationInput{
				{EntityID: plural.ID(), Rule: "one", String: "Un fichier", Reviewed: true},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, row.Reviewed)

		row, err = env.submit.Execute(ctx, dto.SubmitTranslationsRequest{
			ResourceID:   res.ID(),
			LanguageCode: "fr",
			Translations: []dto.TranslationInput{
				{EntityID: plural.ID(), Rule: "other", String: "%d fichiers", Reviewed: true},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, row.Reviewed)
		assert.Equal(t, 50, row.ReviewedPercentage)
	})

	t.Run("rule outside the language's plural set is rejected", func(t *testing.T) {
		_, err := env.submit.Execute(ctx, dto.SubmitTranslationsRequest{
			ResourceID:   res.ID(),
			LanguageCode: "fr",
			Translations: []dto.TranslationInput{
				{EntityID: plural.ID(), Rule: "many", String: "beaucoup"},
			},
		})
		assert.ErrorIs(t, err, translation.ErrRuleNotApplicable)
	})

	t.Run("plural rule on a plain entity is rejected", func(t *testing.T) {
		_, err := env.submit.Execute(ctx, dto.SubmitTranslationsRequest{
			ResourceID:   res.ID(),
			LanguageCode: "fr",
			Translations: []dto.TranslationInput{
				{EntityID: plain.ID(), Rule: "one", String: "Bonjour"},
			},
		})
		assert.ErrorIs(t, err, translation.ErrRuleNotApplicable)
	})
}

func TestDeleteTranslationsResetsRow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proj := env.newProject(t, ctx, "website")
	res := env.newResource(t, ctx, proj.ID(), "core",
		dto.SourceEntityInput{SourceString: "Save"},
		dto.SourceEntityInput{SourceString: "Cancel", Position: 1},
	)
	entities := env.entitiesOf(t, ctx, res.ID())

	_, err := env.createTeam.Execute(ctx, dto.CreateTeamRequest{ProjectID: proj.ID(), LanguageCode: "de"})
	require.NoError(t, err)

	_, err = env.submit.Execute(ctx, dto.SubmitTranslationsRequest{
		ResourceID:   res.ID(),
		LanguageCode: "de",
		Translations: []dto.TranslationInput{
			{EntityID: entities[0].ID(), Rule: "other", String: "Speichern"},
			{EntityID: entities[1].ID(), Rule: "other", String: "Abbrechen"},
		},
	})
	require.NoError(t, err)

	row, err := env.deleteTrans.Execute(ctx, dto.DeleteTranslationsRequest{
		ResourceID:   res.ID(),
		LanguageCode: "de",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, row.Total)
	assert.Equal(t, 0, row.Translated)
	assert.Equal(t, 2, row.Untranslated)
	assert.Equal(t, 0, row.Percentage)

	// The row survives the delete; it is not removed with the strings.
	kept := env.pair(t, ctx, res.ID(), "de")
	assert.Equal(t, 0, kept.Translated)
}

func TestTeamLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proj := env.newProject(t, ctx, "website")
	res := env.newResource(t, ctx, proj.ID(), "core",
		dto.SourceEntityInput{SourceString: "Open"},
		dto.SourceEntityInput{SourceString: "Close", Position: 1},
		dto.SourceEntityInput{SourceString: "Quit", Position: 2},
	)
	entities := env.entitiesOf(t, ctx, res.ID())

	t.Run("creating a team materializes zero-progress rows", func(t *testing.T) {
		_, err := env.createTeam.Execute(ctx, dto.CreateTeamRequest{ProjectID: proj.ID(), LanguageCode: "ru"})
		require.NoError(t, err)

		row := env.pair(t, ctx, res.ID(), "ru")
		assert.Equal(t, 3, row.Total)
		assert.Equal(t, 0, row.Translated)
	})

	t.Run("unknown language is rejected", func(t *testing.T) {
		_, err := env.createTeam.Execute(ctx, dto.CreateTeamRequest{ProjectID: proj.ID(), LanguageCode: "xx-nope"})
		assert.ErrorIs(t, err, language.ErrUnknownLanguage)
	})

	t.Run("duplicate team is rejected", func(t *testing.T) {
		_, err := env.createTeam.Execute(ctx, dto.CreateTeamRequest{ProjectID: proj.ID(), LanguageCode: "ru"})
		assert.ErrorIs(t, err, project.ErrTeamExists)
	})

	t.Run("deleting a team with progress keeps the row", func(t *testing.T) {
		_, err := env.submit.Execute(ctx, dto.SubmitTranslationsRequest{
			ResourceID:   res.ID(),
			LanguageCode: "ru",
			Translations: []dto.TranslationInput{
				{EntityID: entities[0].ID(), Rule: "other", String: "Открыть"},
				{EntityID: entities[1].ID(), Rule: "other", String: "Закрыть"},
			},
		})
		require.NoError(t, err)

		require.NoError(t, env.deleteTeam.Execute(ctx, dto.DeleteTeamRequest{ProjectID: proj.ID(), LanguageCode: "ru"}))

		row := env.pair(t, ctx, res.ID(), "ru")
		require.NotNil(t, row)
		assert.Equal(t, 2, row.Translated)
	})

	t.Run("deleting an idle team drops its rows", func(t *testing.T) {
		_, err := env.createTeam.Execute(ctx, dto.CreateTeamRequest{ProjectID: proj.ID(), LanguageCode: "ja"})
		require.NoError(t, err)
		require.NotNil(t, env.pair(t, ctx, res.ID(), "ja"))

		require.NoError(t, env.deleteTeam.Execute(ctx, dto.DeleteTeamRequest{ProjectID: proj.ID(), LanguageCode: "ja"}))

		_, err = env.getStats.GetPair(ctx, res.ID(), "ja")
		assert.ErrorIs(t, err, stats.ErrStatsRowNotFound)
	})

	t.Run("source language row is never dropped", func(t *testing.T) {
		row := env.pair(t, ctx, res.ID(), "en")
		assert.Equal(t, row.Total, row.Translated)
	})
}

func TestTeamOnHubCoversOutsourcedProjects(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	hub := env.newProject(t, ctx, "hub")
	client, err := project.NewProject("client", "Client", "")
	require.NoError(t, err)
	require.NoError(t, client.OutsourceTo(hub.ID()))
	require.NoError(t, env.projectRepo.Create(ctx, client))

	hubRes := env.newResource(t, ctx, hub.ID(), "hub-core",
		dto.SourceEntityInput{SourceString: "Yes"},
	)
	clientRes := env.newResource(t, ctx, client.ID(), "client-core",
		dto.SourceEntityInput{SourceString: "No"},
	)

	_, err = env.createTeam.Execute(ctx, dto.CreateTeamRequest{ProjectID: hub.ID(), LanguageCode: "fr"})
	require.NoError(t, err)

	assert.NotNil(t, env.pair(t, ctx, hubRes.ID(), "fr"))
	assert.NotNil(t, env.pair(t, ctx, clientRes.ID(), "fr"))

	// A resource created after the team inherits the hub's languages.
	lateRes := env.newResource(t, ctx, client.ID(), "client-extra",
		dto.SourceEntityInput{SourceString: "Maybe"},
	)
	row := env.pair(t, ctx, lateRes.ID(), "fr")
	assert.Equal(t, 1, row.Total)
	assert.Equal(t, 0, row.Translated)
}

func TestSourceImportLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proj := env.newProject(t, ctx, "website")
	res := env.newResource(t, ctx, proj.ID(), "core")

	_, err := env.createTeam.Execute(ctx, dto.CreateTeamRequest{ProjectID: proj.ID(), LanguageCode: "de"})
	require.NoError(t, err)

	t.Run("source language tracks total automatically", func(t *testing.T) {
		resp, err := env.importSource.Execute(ctx, dto.ImportSourceRequest{
			ResourceID: res.ID(),
			Entities: []dto.SourceEntityInput{
				{SourceString: "Hello world"},
				{SourceString: "Goodbye", Position: 1},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Created)

		row := env.pair(t, ctx, res.ID(), "en")
		assert.Equal(t, 2, row.Total)
		assert.Equal(t, 2, row.Translated)
		assert.Equal(t, 100, row.Percentage)
	})

	t.Run("new entity increases untranslated", func(t *testing.T) {
		entities := env.entitiesOf(t, ctx, res.ID())
		_, err := env.submit.Execute(ctx, dto.SubmitTranslationsRequest{
			ResourceID:   res.ID(),
			LanguageCode: "de",
			Translations: []dto.TranslationInput{
				{EntityID: entities[0].ID(), Rule: "other", String: "Hallo Welt"},
				{EntityID: entities[1].ID(), Rule: "other", String: "Tschüss"},
			},
		})
		require.NoError(t, err)

		resp, err := env.importSource.Execute(ctx, dto.ImportSourceRequest{
			ResourceID: res.ID(),
			Entities: []dto.SourceEntityInput{
				{SourceString: "Hello world"},
				{SourceString: "Goodbye", Position: 1},
				{SourceString: "Welcome back", Position: 2},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Created)
		assert.Equal(t, 2, resp.Updated)

		row := env.pair(t, ctx, res.ID(), "de")
		assert.Equal(t, 3, row.Total)
		assert.Equal(t, 2, row.Translated)
		assert.Equal(t, 1, row.Untranslated)
	})

	t.Run("vanished entity is removed with its translations", func(t *testing.T) {
		resp, err := env.importSource.Execute(ctx, dto.ImportSourceRequest{
			ResourceID: res.ID(),
			Entities: []dto.SourceEntityInput{
				{SourceString: "Hello world"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Deleted)

		row := env.pair(t, ctx, res.ID(), "de")
		assert.Equal(t, 1, row.Total)
		assert.Equal(t, 1, row.Translated)
		assert.Equal(t, 100, row.Percentage)

		var orphans int64
		require.NoError(t, env.db.Model(&models.TranslationModel{}).Count(&orphans).Error)
		assert.EqualValues(t, 1, orphans)
	})
}

func TestRecalculationRepairsAndConverges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proj := env.newProject(t, ctx, "website")
	res := env.newResource(t, ctx, proj.ID(), "core",
		dto.SourceEntityInput{SourceString: "Hello world"},
		dto.SourceEntityInput{SourceString: "Goodbye", Position: 1},
	)
	entities := env.entitiesOf(t, ctx, res.ID())

	_, err := env.createTeam.Execute(ctx, dto.CreateTeamRequest{ProjectID: proj.ID(), LanguageCode: "fr"})
	require.NoError(t, err)
	_, err = env.submit.Execute(ctx, dto.SubmitTranslationsRequest{
		ResourceID:   res.ID(),
		LanguageCode: "fr",
		Translations: []dto.TranslationInput{
			{EntityID: entities[0].ID(), Rule: "other", String: "Bonjour le monde"},
		},
	})
	require.NoError(t, err)

	t.Run("repairs a corrupted row", func(t *testing.T) {
		err := env.db.Model(&models.ResourceStatsModel{}).
			Where("resource_id = ? AND language_code = ?", res.ID(), "fr").
			Updates(map[string]interface{}{"translated": 99, "untranslated": 0, "reviewed": 42}).Error
		require.NoError(t, err)

		resp, err := env.recalc.Execute(ctx, dto.RecalculateRequest{})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.ResourcesProcessed)

		row := env.pair(t, ctx, res.ID(), "fr")
		assert.Equal(t, 1, row.Translated)
		assert.Equal(t, 1, row.Untranslated)
		assert.Equal(t, 0, row.Reviewed)
	})

	t.Run("repairs stale source facts", func(t *testing.T) {
		err := env.db.Model(&models.ResourceModel{}).
			Where("id = ?", res.ID()).
			Updates(map[string]interface{}{"total_entities": 0, "word_count": 0}).Error
		require.NoError(t, err)

		resourceID := res.ID()
		_, err = env.recalc.Execute(ctx, dto.RecalculateRequest{ResourceID: &resourceID})
		require.NoError(t, err)

		fresh, err := env.resourceRepo.GetByID(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, fresh.TotalEntities())
		assert.Equal(t, 3, fresh.WordCount())
	})

	t.Run("drops idle untracked rows but keeps progressed ones", func(t *testing.T) {
		// Rows a correct maintenance path would never leave behind.
		for _, code := range []string{"ja", "de"} {
			row, err := stats.NewStatsRow(res.ID(), code)
			require.NoError(t, err)
			require.NoError(t, env.statsRepo.Upsert(ctx, row))
		}
		_, err := env.submit.Execute(ctx, dto.SubmitTranslationsRequest{
			ResourceID:   res.ID(),
			LanguageCode: "de",
			Translations: []dto.TranslationInput{
				{EntityID: entities[0].ID(), Rule: "other", String: "Hallo Welt"},
			},
		})
		require.NoError(t, err)

		resp, err := env.recalc.Execute(ctx, dto.RecalculateRequest{})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.RowsDropped)

		_, err = env.getStats.GetPair(ctx, res.ID(), "ja")
		assert.ErrorIs(t, err, stats.ErrStatsRowNotFound)

		kept := env.pair(t, ctx, res.ID(), "de")
		assert.Equal(t, 1, kept.Translated)
	})

	t.Run("a second run changes nothing", func(t *testing.T) {
		before, err := env.getStats.ByResource(ctx, res.ID())
		require.NoError(t, err)

		resp, err := env.recalc.Execute(ctx, dto.RecalculateRequest{})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.RowsDropped)

		after, err := env.getStats.ByResource(ctx, res.ID())
		require.NoError(t, err)
		require.Len(t, after, len(before))
		for i := range before {
			assert.Equal(t, before[i].Translated, after[i].Translated)
			assert.Equal(t, before[i].Untranslated, after[i].Untranslated)
			assert.Equal(t, before[i].Reviewed, after[i].Reviewed)
		}
	})
}

func TestRecalculationWalksAllResources(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	proj := env.newProject(t, ctx, "website")
	for _, slug := range []string{"a", "b", "c", "d", "e"} {
		env.newResource(t, ctx, proj.ID(), slug,
			dto.SourceEntityInput{SourceString: "Hello"},
		)
	}

	// Batch size 2, five resources: three pages.
	resp, err := env.recalc.Execute(ctx, dto.RecalculateRequest{})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.ResourcesProcessed)
}
