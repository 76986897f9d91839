package catalog

import (
	"context"
	"fmt"

	"factory-planner/core/rational"
	"factory-planner/feature/catalog/models"

	"gorm.io/gorm"
)

// Store mirrors a catalog into SQL tables.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the catalog tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.Tables()...); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}
	return nil
}

// Save replaces the stored catalog with c in a single transaction.
func (s *Store) Save(ctx context.Context, c *Catalog) error {
	data := c.Data()

	items := make([]models.CatalogItem, 0, len(data.Items))
	for i, it := range data.Items {
		items = append(items, models.CatalogItem{Key: it.Key, Name: it.Name, Tier: it.Tier, Resource: it.Resource, Position: i})
	}

	buildings := make([]models.CatalogBuilding, 0, len(data.Buildings))
	for i, b := range data.Buildings {
		buildings = append(buildings, models.CatalogBuilding{
			Key:      b.Key,
			Name:     b.Name,
			Category: b.Category,
			Speed:    b.Speed.String(),
			Power:    b.Power.String(),
			Position: i,
		})
	}

	recipes := make([]models.CatalogRecipe, 0, len(data.Recipes))
	var lines []models.CatalogRecipeLine
	for i, r := range data.Recipes {
		recipes = append(recipes, models.CatalogRecipe{Key: r.Key, Name: r.Name, Category: r.Category, Time: r.Time.String(), Position: i})
		for j, in := range r.Ingredients {
			lines = append(lines, models.CatalogRecipeLine{RecipeKey: r.Key, Kind: models.LineIngredient, ItemKey: in.Item, Amount: in.Amount.String(), Position: j})
		}
		for j, out := range r.Products {
			lines = append(lines, models.CatalogRecipeLine{RecipeKey: r.Key, Kind: models.LineProduct, ItemKey: out.Item, Amount: out.Amount.String(), Position: j})
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.CatalogRecipeLine{}, &models.CatalogRecipe{}, &models.CatalogBuilding{}, &models.CatalogItem{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear catalog: %w", err)
			}
		}
		if err := createAll(tx, items); err != nil {
			return err
		}
		if err := createAll(tx, buildings); err != nil {
			return err
		}
		if err := createAll(tx, recipes); err != nil {
			return err
		}
		return createAll(tx, lines)
	})
}

func createAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(&rows, 200).Error; err != nil {
		return fmt.Errorf("failed to insert catalog rows: %w", err)
	}
	return nil
}

// Load rebuilds a Catalog from the stored tables.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	data, err := s.LoadData(ctx)
	if err != nil {
		return nil, err
	}
	return Build(data)
}

// LoadData reads the stored tables without validating them. Empty tables
// give empty Data.
func (s *Store) LoadData(ctx context.Context) (*models.Data, error) {
	db := s.db.WithContext(ctx)

	var items []models.CatalogItem
	if err := db.Order("position").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	var buildings []models.CatalogBuilding
	if err := db.Order("position").Find(&buildings).Error; err != nil {
		return nil, fmt.Errorf("failed to load buildings: %w", err)
	}
	var recipes []models.CatalogRecipe
	if err := db.Order("position").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	var lines []models.CatalogRecipeLine
	if err := db.Order("recipe_key").Order("kind").Order("position").Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipe lines: %w", err)
	}

	data := &models.Data{}
	for _, it := range items {
		data.Items = append(data.Items, models.Item{Key: it.Key, Name: it.Name, Tier: it.Tier, Resource: it.Resource})
	}
	for _, b := range buildings {
		speed, err := parseColumn("speed", b.Key, b.Speed)
		if err != nil {
			return nil, err
		}
		power, err := parseColumn("power", b.Key, b.Power)
		if err != nil {
			return nil, err
		}
		data.Buildings = append(data.Buildings, models.Building{Key: b.Key, Name: b.Name, Category: b.Category, Speed: speed, Power: power})
	}

	byRecipe := make(map[string][]models.CatalogRecipeLine)
	for _, l := range lines {
		byRecipe[l.RecipeKey] = append(byRecipe[l.RecipeKey], l)
	}
	for _, r := range recipes {
		t, err := parseColumn("time", r.Key, r.Time)
		if err != nil {
			return nil, err
		}
		recipe := models.Recipe{Key: r.Key, Name: r.Name, Category: r.Category, Time: t}
		for _, l := range byRecipe[r.Key] {
			amount, err := parseColumn("amount", r.Key, l.Amount)
			if err != nil {
				return nil, err
			}
			line := models.Line{Item: l.ItemKey, Amount: amount}
			if l.Kind == models.LineIngredient {
				recipe.Ingredients = append(recipe.Ingredients, line)
			} else {
				recipe.Products = append(recipe.Products, line)
			}
		}
		data.Recipes = append(data.Recipes, recipe)
	}

	return data, nil
}

func parseColumn(column, key, value string) (rational.Rational, error) {
	if value == "" {
		return rational.Zero(), nil
	}
	v, err := rational.FromString(value)
	if err != nil {
		return rational.Zero(), fmt.Errorf("bad %s for %s: %w", column, key, err)
	}
	return v, nil
}
