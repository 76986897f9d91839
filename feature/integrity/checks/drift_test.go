package checks

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"factory-planner/core/database"
	"factory-planner/core/rational"
	"factory-planner/core/storage/mocks"
	"factory-planner/feature/catalog"
	"factory-planner/feature/catalog/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func smelting() *string {
	s := "smelting"
	return &s
}

func driftData() *models.Data {
	return &models.Data{
		Items: []models.Item{{Key: "ore", Name: "Ore", Resource: true}, {Key: "plate", Name: "Plate", Tier: 1}},
		Buildings: []models.Building{
			{Key: "furnace", Name: "Furnace", Category: "smelting", Speed: rational.One()},
		},
		Recipes: []models.Recipe{{
			Key: "plate", Name: "Plate", Category: smelting(), Time: rational.MustParse("3.2"),
			Ingredients: []models.Line{{Item: "ore", Amount: rational.One()}},
			Products:    []models.Line{{Item: "plate", Amount: rational.One()}},
		}},
	}
}

func TestCompareCatalogs_InSync(t *testing.T) {
	a, b := driftData(), driftData()
	// Same value, different spelling
	b.Recipes[0].Time = rational.FromFrac(16, 5)

	report := CompareCatalogs(a, b)
	assert.True(t, report.InSync)
	assert.Empty(t, report.Results)
	assert.Equal(t, DriftSummary{Total: 4}, report.Summary)
}

func TestCompareCatalogs_Drift(t *testing.T) {
	data, mirror := driftData(), driftData()
	data.Items = append(data.Items, models.Item{Key: "gear", Name: "Gear", Tier: 2})
	mirror.Items[1].Tier = 3
	mirror.Buildings = append(mirror.Buildings, models.Building{Key: "old", Category: "smelting", Speed: rational.One()})
	mirror.Recipes[0].Products[0].Amount = rational.FromInt(2)
	mirror.Recipes[0].Category = nil

	report := CompareCatalogs(data, mirror)
	assert.False(t, report.InSync)

	want := []DriftResult{
		{Kind: KindItem, Key: "gear", InData: true},
		{Kind: KindItem, Key: "plate", InData: true, InDatabase: true, Mismatch: []string{"tier"}},
		{Kind: KindBuilding, Key: "old", InDatabase: true},
		{Kind: KindRecipe, Key: "plate", InData: true, InDatabase: true, Mismatch: []string{"category", "products"}},
	}
	if diff := cmp.Diff(want, report.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, DriftSummary{Total: 6, MissingDatabase: 1, MissingData: 1, Mismatches: 2}, report.Summary)
}

func TestCheckDrift_NilDB(t *testing.T) {
	_, err := CheckDrift(context.Background(), new(mocks.Client), "factory", dataObject, nil, false)
	assert.EqualError(t, err, "database connection is nil")
}

func TestCheckDrift_Sync(t *testing.T) {
	raw, err := os.ReadFile("../../catalog/testdata/recipes.json")
	require.NoError(t, err)

	m := new(mocks.Client)
	for i := 0; i < 3; i++ {
		m.On("GetObject", mock.Anything, "factory", dataObject, mock.Anything).
			Return(io.NopCloser(bytes.NewReader(raw)), nil).Once()
	}

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	store := catalog.NewStore(db)
	require.NoError(t, store.Migrate(context.Background()))

	report, err := CheckDrift(context.Background(), m, "factory", dataObject, db, false)
	require.NoError(t, err)
	assert.False(t, report.InSync)
	assert.False(t, report.Synced)
	assert.Equal(t, 18, report.Summary.MissingDatabase)

	report, err = CheckDrift(context.Background(), m, "factory", dataObject, db, true)
	require.NoError(t, err)
	assert.True(t, report.Synced)

	report, err = CheckDrift(context.Background(), m, "factory", dataObject, db, false)
	require.NoError(t, err)
	assert.True(t, report.InSync)
	m.AssertExpectations(t)
}
