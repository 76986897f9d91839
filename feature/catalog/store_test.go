package catalog_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"factory-planner/core/database"
	"factory-planner/feature/catalog"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewStore(setupSQLite(t))
	require.NoError(t, store.Migrate(ctx))

	original := loadTestCatalog(t)
	require.NoError(t, store.Save(ctx, original))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(original.Items()), len(loaded.Items()))
	assert.Equal(t, original.Items()[0].Key, loaded.Items()[0].Key)
	assert.Equal(t, len(original.Buildings()), len(loaded.Buildings()))

	for _, item := range []string{"ironPlate", "copperPlate", "gear", "copperCable", "circuit"} {
		want, err := original.Recipe(item)
		require.NoError(t, err)
		got, err := loaded.Recipe(item)
		require.NoError(t, err)

		wantRate, err := original.RecipeRate(want)
		require.NoError(t, err)
		gotRate, err := loaded.RecipeRate(got)
		require.NoError(t, err)
		assert.True(t, wantRate.Equal(gotRate), "rate for %s", item)
		assert.True(t, want.Gives(item).Equal(got.Gives(item)), "yield for %s", item)
	}

	water, err := loaded.RecipeFor("water")
	require.NoError(t, err)
	_, hasCategory := water.Category()
	assert.False(t, hasCategory)
}

func TestStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewStore(setupSQLite(t))
	require.NoError(t, store.Migrate(ctx))

	c := loadTestCatalog(t)
	require.NoError(t, store.Save(ctx, c))
	require.NoError(t, store.Save(ctx, c))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Items(), len(c.Items()))
	assert.Len(t, loaded.Recipes(), len(c.Recipes()))

	circuit, err := loaded.RecipeFor("circuit")
	require.NoError(t, err)
	assert.Len(t, circuit.Ingredients(), 2)
}

func TestDatabaseSource(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	store := catalog.NewStore(db)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Save(ctx, loadTestCatalog(t)))

	src, err := catalog.NewSource(catalog.Config{Source: catalog.SourceDatabase}, nil, "", db)
	require.NoError(t, err)
	c, err := src.Load(ctx)
	require.NoError(t, err)
	assert.True(t, c.HasItem("gear"))
}

func TestStore_SaveRollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `catalog_recipe_lines`")).
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := catalog.NewStore(db).Save(context.Background(), loadTestCatalog(t))
	assert.ErrorContains(t, err, "failed to clear catalog")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LoadQueryError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `catalog_items`")).
		WillReturnError(errors.New("table missing"))

	_, err := catalog.NewStore(db).Load(context.Background())
	assert.ErrorContains(t, err, "failed to load items")
}
