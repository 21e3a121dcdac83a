package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"transtats/internal/domain/language"
	"transtats/internal/domain/project"
	"transtats/internal/domain/resource"
	"transtats/internal/domain/stats"
	"transtats/internal/domain/translation"
	"transtats/internal/infrastructure/migration"
	"transtats/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(migration.AutoMigrateModels()...)
	require.NoError(t, err)

	return db
}

func createTestResource(t *testing.T, ctx context.Context, db *gorm.DB) *resource.Resource {
	log := logger.NewLogger()

	proj, err := project.NewProject("website", "Website", "")
	require.NoError(t, err)
	require.NoError(t, NewProjectRepository(db, log).Create(ctx, proj))

	res, err := resource.NewResource(proj.ID(), "core", "Core strings", "en")
	require.NoError(t, err)
	require.NoError(t, NewResourceRepository(db, log).Create(ctx, res))

	return res
}

func createTestEntity(t *testing.T, ctx context.Context, db *gorm.DB, resourceID uint, text string, pluralized bool) *resource.SourceEntity {
	entity, err := resource.NewSourceEntity(resourceID, text, "", pluralized, 0)
	require.NoError(t, err)
	require.NoError(t, NewSourceEntityRepository(db, logger.NewLogger()).Create(ctx, entity))
	return entity
}

func TestProjectRepository(t *testing.T) {
	db := setupTestDB(t)
	log := logger.NewLogger()
	repo := NewProjectRepository(db, log)
	ctx := context.Background()

	t.Run("create assigns ID and round-trips", func(t *testing.T) {
		proj, err := project.NewProject("docs", "Documentation", "manuals")
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, proj))
		assert.NotZero(t, proj.ID())

		found, err := repo.GetBySlug(ctx, "docs")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, proj.ID(), found.ID())
		assert.Equal(t, "Documentation", found.Name())
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		proj, err := project.NewProject("docs", "Other docs", "")
		require.NoError(t, err)
		assert.Error(t, repo.Create(ctx, proj))
	})

	t.Run("missing project is nil, not error", func(t *testing.T) {
		found, err := repo.GetBySlug(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("list outsourcing projects", func(t *testing.T) {
		hub, err := project.NewProject("hub", "Hub", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, hub))

		client, err := project.NewProject("client", "Client", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, client))
		require.NoError(t, client.OutsourceTo(hub.ID()))
		require.NoError(t, repo.Update(ctx, client))

		outsourcing, err := repo.ListOutsourcing(ctx, hub.ID())
		require.NoError(t, err)
		require.Len(t, outsourcing, 1)
		assert.Equal(t, client.ID(), outsourcing[0].ID())
		assert.Equal(t, hub.ID(), outsourcing[0].TeamHolderID())
	})
}

func TestTeamRepository(t *testing.T) {
	db := setupTestDB(t)
	log := logger.NewLogger()
	repo := NewTeamRepository(db, log)
	ctx := context.Background()
	res := createTestResource(t, ctx, db)

	t.Run("create and look up by pair", func(t *testing.T) {
		team, err := project.NewTeam(res.ProjectID(), "fr")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, team))
		assert.NotZero(t, team.ID())

		found, err := repo.GetByProjectAndLanguage(ctx, res.ProjectID(), "fr")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, team.ID(), found.ID())
	})

	t.Run("duplicate pair conflicts", func(t *testing.T) {
		team, err := project.NewTeam(res.ProjectID(), "fr")
		require.NoError(t, err)
		assert.Error(t, repo.Create(ctx, team))
	})

	t.Run("list languages sorted", func(t *testing.T) {
		team, err := project.NewTeam(res.ProjectID(), "de")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, team))

		langs, err := repo.ListLanguages(ctx, res.ProjectID())
		require.NoError(t, err)
		assert.Equal(t, []string{"de", "fr"}, langs)
	})

	t.Run("delete removes the team", func(t *testing.T) {
		team, err := repo.GetByProjectAndLanguage(ctx, res.ProjectID(), "de")
		require.NoError(t, err)
		require.NotNil(t, team)

		require.NoError(t, repo.Delete(ctx, team.ID()))

		found, err := repo.GetByProjectAndLanguage(ctx, res.ProjectID(), "de")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestSourceEntityRepository_CountByResource(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSourceEntityRepository(db, logger.NewLogger())
	ctx := context.Background()
	res := createTestResource(t, ctx, db)

	t.Run("empty resource counts zero", func(t *testing.T) {
		total, words, err := repo.CountByResource(ctx, res.ID())
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Zero(t, words)
	})

	t.Run("counts entities and words", func(t *testing.T) {
		createTestEntity(t, ctx, db, res.ID(), "Hello world", false)
		createTestEntity(t, ctx, db, res.ID(), "One two three", false)

		total, words, err := repo.CountByResource(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Equal(t, 5, words)
	})
}

func TestTranslationRepository(t *testing.T) {
	db := setupTestDB(t)
	log := logger.NewLogger()
	repo := NewTranslationRepository(db, log)
	ctx := context.Background()
	res := createTestResource(t, ctx, db)
	entity := createTestEntity(t, ctx, db, res.ID(), "Hello world", false)

	t.Run("upsert creates then replaces", func(t *testing.T) {
		tr, err := translation.NewTranslation(entity.ID(), "fr", language.CategoryOther, "Bonjour le monde", 7, false)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, tr))

		replacement, err := translation.NewTranslation(entity.ID(), "fr", language.CategoryOther, "Salut le monde", 8, true)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, replacement))

		rows, err := repo.GetByEntityAndLanguage(ctx, entity.ID(), "fr")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Salut le monde", rows[language.CategoryOther].String())
		assert.True(t, rows[language.CategoryOther].Reviewed())
		assert.Equal(t, uint(8), rows[language.CategoryOther].AuthorID())
	})

	t.Run("list by resource joins through entities", func(t *testing.T) {
		other := createTestEntity(t, ctx, db, res.ID(), "Goodbye", false)
		tr, err := translation.NewTranslation(other.ID(), "fr", language.CategoryOther, "Au revoir", 7, false)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, tr))

		rows, err := repo.ListByResourceAndLanguage(ctx, res.ID(), "fr")
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("list languages distinct", func(t *testing.T) {
		tr, err := translation.NewTranslation(entity.ID(), "de", language.CategoryOther, "Hallo Welt", 7, false)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, tr))

		langs, err := repo.ListLanguagesByResource(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, []string{"de", "fr"}, langs)
	})

	t.Run("delete by resource and language removes all rows of that language only", func(t *testing.T) {
		require.NoError(t, repo.DeleteByResourceAndLanguage(ctx, res.ID(), "fr"))

		rows, err := repo.ListByResourceAndLanguage(ctx, res.ID(), "fr")
		require.NoError(t, err)
		assert.Empty(t, rows)

		langs, err := repo.ListLanguagesByResource(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, []string{"de"}, langs)
	})
}

func TestResourceStatsRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResourceStatsRepository(db, logger.NewLogger())
	ctx := context.Background()
	res := createTestResource(t, ctx, db)

	t.Run("upsert creates then replaces by pair", func(t *testing.T) {
		row, err := stats.NewStatsRow(res.ID(), "fr")
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, row))
		assert.NotZero(t, row.ID())

		replacement, err := stats.ReconstructStatsRow(row.ID(), res.ID(), "fr",
			5, 3, 2, 1, 50, 30, 20, nil, nil, row.UpdatedAt())
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, replacement))

		found, err := repo.GetByResourceAndLanguage(ctx, res.ID(), "fr")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 3, found.Translated())
		assert.Equal(t, 60, found.Percentage())
	})

	t.Run("missing pair is nil, not error", func(t *testing.T) {
		found, err := repo.GetByResourceAndLanguage(ctx, res.ID(), "xx")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("list by resource ordered by language", func(t *testing.T) {
		row, err := stats.NewStatsRow(res.ID(), "de")
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, row))

		rows, err := repo.ListByResource(ctx, res.ID())
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "de", rows[0].LanguageCode())
		assert.Equal(t, "fr", rows[1].LanguageCode())
	})

	t.Run("delete pair leaves other languages", func(t *testing.T) {
		require.NoError(t, repo.DeleteByResourceAndLanguage(ctx, res.ID(), "de"))

		langs, err := repo.ListLanguages(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, []string{"fr"}, langs)
	})
}

func TestResourceRepository_ListIDs(t *testing.T) {
	db := setupTestDB(t)
	log := logger.NewLogger()
	projectRepo := NewProjectRepository(db, log)
	repo := NewResourceRepository(db, log)
	ctx := context.Background()

	proj, err := project.NewProject("paging", "Paging", "")
	require.NoError(t, err)
	require.NoError(t, projectRepo.Create(ctx, proj))

	var all []uint
	for _, slug := range []string{"a", "b", "c", "d", "e"} {
		res, err := resource.NewResource(proj.ID(), slug, slug, "en")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, res))
		all = append(all, res.ID())
	}

	t.Run("pages in ID order", func(t *testing.T) {
		var got []uint
		afterID := uint(0)
		for {
			ids, err := repo.ListIDs(ctx, afterID, 2)
			require.NoError(t, err)
			if len(ids) == 0 {
				break
			}
			got = append(got, ids...)
			afterID = ids[len(ids)-1]
		}
		assert.Equal(t, all, got)
	})

	t.Run("delete cascades entities, translations and stats", func(t *testing.T) {
		res, err := repo.GetByID(ctx, all[0])
		require.NoError(t, err)
		entity := createTestEntity(t, ctx, db, res.ID(), "Hello", false)

		tr, err := translation.NewTranslation(entity.ID(), "fr", language.CategoryOther, "Bonjour", 1, false)
		require.NoError(t, err)
		require.NoError(t, NewTranslationRepository(db, log).Upsert(ctx, tr))

		row, err := stats.NewStatsRow(res.ID(), "fr")
		require.NoError(t, err)
		statsRepo := NewResourceStatsRepository(db, log)
		require.NoError(t, statsRepo.Upsert(ctx, row))

		require.NoError(t, repo.Delete(ctx, res.ID()))

		found, err := repo.GetByID(ctx, res.ID())
		require.NoError(t, err)
		assert.Nil(t, found)

		gone, err := NewSourceEntityRepository(db, log).GetByID(ctx, entity.ID())
		require.NoError(t, err)
		assert.Nil(t, gone)

		rows, err := statsRepo.ListByResource(ctx, res.ID())
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
