package catalog_test

import (
	"errors"
	"os"
	"testing"

	"factory-planner/core/format"
	"factory-planner/core/rational"
	"factory-planner/core/reconcile"
	"factory-planner/feature/catalog"
	"factory-planner/feature/catalog/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	f, err := os.Open("testdata/recipes.json")
	require.NoError(t, err)
	defer f.Close()

	c, err := catalog.Parse("recipes.json", f)
	require.NoError(t, err)
	return c
}

func TestCatalog_RecipeRate(t *testing.T) {
	c := loadTestCatalog(t)
	r := reconcile.NewReconciler(c, nil)

	tests := []struct {
		item string
		want string
	}{
		{"ironPlate", "1"},
		{"copperPlate", "5/16"},
		{"gear", "3/2"},
		{"copperCable", "3"}, // two cables per cycle
		{"circuit", "3/2"},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			rate, err := r.BaseRate(tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rate.String())
		})
	}
}

func TestCatalog_UndefinedRate(t *testing.T) {
	c := loadTestCatalog(t)

	for _, item := range []string{"water", "ironOre"} {
		t.Run(item, func(t *testing.T) {
			recipe, err := c.Recipe(item)
			require.NoError(t, err)
			_, err = c.RecipeRate(recipe)
			assert.ErrorIs(t, err, reconcile.ErrRateUndefined)
		})
	}
}

func TestCatalog_StoppedBuildingRateUndefined(t *testing.T) {
	for _, speed := range []rational.Rational{{}, rational.FromInt(-1)} {
		t.Run(speed.String(), func(t *testing.T) {
			c, err := catalog.Build(&models.Data{
				Items:     []models.Item{{Key: "ore", Resource: true}, {Key: "plate"}},
				Buildings: []models.Building{{Key: "furnace", Category: "smelting", Speed: speed}},
				Recipes: []models.Recipe{{
					Key: "plate", Category: strPtr("smelting"), Time: rational.One(),
					Ingredients: []models.Line{{Item: "ore", Amount: rational.One()}},
					Products:    []models.Line{{Item: "plate", Amount: rational.One()}},
				}},
			})
			require.NoError(t, err)

			r := reconcile.NewReconciler(c, format.Default())
			_, err = r.BaseRate("plate")
			assert.ErrorIs(t, err, reconcile.ErrRateUndefined)

			target := reconcile.NewTarget(0, "plate")
			out, err := r.Recompute(target)
			require.NoError(t, err)
			assert.False(t, out.RateDefined)
			assert.Nil(t, out.Rate)
			assert.Empty(t, out.RateDisplay)

			require.NoError(t, target.SwitchToRate("10", rational.One()))
			out, err = r.Recompute(target)
			require.NoError(t, err)
			assert.False(t, out.RateDefined)
			assert.Equal(t, reconcile.NotAvailable, out.BuildingsDisplay)
		})
	}
}

func strPtr(s string) *string { return &s }

func TestCatalog_ImplicitResourceRecipe(t *testing.T) {
	c := loadTestCatalog(t)

	recipe, err := c.RecipeFor("ironOre")
	require.NoError(t, err)
	_, hasCategory := recipe.Category()
	assert.False(t, hasCategory)
	assert.True(t, recipe.Gives("ironOre").Equal(rational.One()))
}

func TestCatalog_NoRecipe(t *testing.T) {
	c := loadTestCatalog(t)

	for _, item := range []string{"uranium235", "doesNotExist"} {
		t.Run(item, func(t *testing.T) {
			_, err := c.Recipe(item)
			var nre *reconcile.NoRecipeError
			require.True(t, errors.As(err, &nre))
			assert.Equal(t, item, nre.Item)
		})
	}
}

func TestCatalog_FirstBuildingPerCategory(t *testing.T) {
	c := loadTestCatalog(t)

	recipe, err := c.RecipeFor("gear")
	require.NoError(t, err)
	b := c.Building(recipe)
	require.NotNil(t, b)
	assert.Equal(t, "assembler1", b.Key)
}

func TestCatalog_PrefersRecipeNamedAfterItem(t *testing.T) {
	category := "crafting"
	data := &models.Data{
		Items: []models.Item{{Key: "a"}, {Key: "b"}},
		Buildings: []models.Building{
			{Key: "m", Category: category, Speed: rational.One()},
		},
		Recipes: []models.Recipe{
			{Key: "byproduct", Category: &category, Time: rational.One(), Products: []models.Line{{Item: "b", Amount: rational.One()}, {Item: "a", Amount: rational.One()}}},
			{Key: "a", Category: &category, Time: rational.FromInt(2), Products: []models.Line{{Item: "a", Amount: rational.One()}}},
		},
	}
	c, err := catalog.Build(data)
	require.NoError(t, err)

	recipe, err := c.Recipe("a")
	require.NoError(t, err)
	assert.Equal(t, "a", recipe.Key())

	recipe, err = c.Recipe("b")
	require.NoError(t, err)
	assert.Equal(t, "byproduct", recipe.Key())
}

func TestCatalog_Tiers(t *testing.T) {
	c := loadTestCatalog(t)

	var keys [][]string
	for _, tier := range c.Tiers() {
		var row []string
		for _, it := range tier {
			row = append(row, it.Key)
		}
		keys = append(keys, row)
	}

	want := [][]string{
		{"ironOre", "copperOre", "water"},
		{"ironPlate", "copperPlate"},
		{"copperCable", "gear"},
		{"circuit", "uranium235"},
	}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("Tiers() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Invalid(t *testing.T) {
	one := rational.One()
	tests := []struct {
		name string
		data *models.Data
		want string
	}{
		{"Nil", nil, "nil"},
		{"NoItems", &models.Data{}, "validation failed"},
		{"DuplicateItem", &models.Data{Items: []models.Item{{Key: "a"}, {Key: "a"}}}, "duplicate item"},
		{"DuplicateBuilding", &models.Data{
			Items:     []models.Item{{Key: "a"}},
			Buildings: []models.Building{{Key: "m", Category: "c"}, {Key: "m", Category: "c"}},
		}, "duplicate building"},
		{"UnknownProduct", &models.Data{
			Items:   []models.Item{{Key: "a"}},
			Recipes: []models.Recipe{{Key: "r", Products: []models.Line{{Item: "b", Amount: one}}}},
		}, "unknown item"},
		{"DuplicateRecipe", &models.Data{
			Items: []models.Item{{Key: "a"}},
			Recipes: []models.Recipe{
				{Key: "r", Products: []models.Line{{Item: "a", Amount: one}}},
				{Key: "r", Products: []models.Line{{Item: "a", Amount: one}}},
			},
		}, "duplicate recipe"},
		{"NoProducts", &models.Data{
			Items:   []models.Item{{Key: "a"}},
			Recipes: []models.Recipe{{Key: "r"}},
		}, "Products"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.Build(tt.data)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCatalog_ItemLookup(t *testing.T) {
	c := loadTestCatalog(t)

	it, err := c.Item("gear")
	require.NoError(t, err)
	assert.Equal(t, "Iron gear wheel", it.Name)
	assert.True(t, c.HasItem("gear"))

	_, err = c.Item("nope")
	assert.ErrorIs(t, err, catalog.ErrUnknownItem)
	assert.False(t, c.HasItem("nope"))
}
