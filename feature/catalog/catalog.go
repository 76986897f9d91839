package catalog

import (
	"errors"
	"fmt"
	"sort"

	"factory-planner/core/rational"
	"factory-planner/core/reconcile"
	"factory-planner/core/validation"
	"factory-planner/feature/catalog/models"
)

// ErrUnknownItem is returned when an item key is not in the catalog.
var ErrUnknownItem = errors.New("unknown item")

// Recipe is a resolved recipe. It implements reconcile.Recipe.
type Recipe struct {
	key         string
	name        string
	category    *string
	time        rational.Rational
	ingredients []models.Line
	products    []models.Line
}

// Key returns the recipe key.
func (r *Recipe) Key() string { return r.key }

// Name returns the display name.
func (r *Recipe) Name() string { return r.name }

// Category returns the building category, or "" and false for recipes no
// building runs.
func (r *Recipe) Category() (string, bool) {
	if r.category == nil {
		return "", false
	}
	return *r.category, true
}

// Time returns the cycle time in seconds.
func (r *Recipe) Time() rational.Rational { return r.time }

// Gives returns the amount of item produced per cycle.
func (r *Recipe) Gives(item string) rational.Rational {
	total := rational.Zero()
	for _, p := range r.products {
		if p.Item == item {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// Ingredients returns the consumed lines.
func (r *Recipe) Ingredients() []models.Line { return r.ingredients }

// Products returns the produced lines.
func (r *Recipe) Products() []models.Line { return r.products }

// Catalog is an immutable index over recipe data. It is safe for concurrent use.
type Catalog struct {
	items      []models.Item
	itemIndex  map[string]int
	recipes    []*Recipe
	producers  map[string][]*Recipe
	byKey      map[string]*Recipe
	buildings  []models.Building
	byCategory map[string]*models.Building
}

// Build validates data and indexes it.
func Build(data *models.Data) (*Catalog, error) {
	if data == nil {
		return nil, fmt.Errorf("catalog data is nil")
	}
	if err := validation.New().Struct(data); err != nil {
		return nil, err
	}

	c := &Catalog{
		items:      data.Items,
		itemIndex:  make(map[string]int, len(data.Items)),
		producers:  make(map[string][]*Recipe),
		byKey:      make(map[string]*Recipe, len(data.Recipes)),
		buildings:  data.Buildings,
		byCategory: make(map[string]*models.Building),
	}

	for i, item := range data.Items {
		if _, dup := c.itemIndex[item.Key]; dup {
			return nil, fmt.Errorf("duplicate item: %s", item.Key)
		}
		c.itemIndex[item.Key] = i
	}

	seenBuildings := make(map[string]struct{}, len(data.Buildings))
	for i := range c.buildings {
		b := &c.buildings[i]
		if _, dup := seenBuildings[b.Key]; dup {
			return nil, fmt.Errorf("duplicate building: %s", b.Key)
		}
		seenBuildings[b.Key] = struct{}{}
		if _, ok := c.byCategory[b.Category]; !ok {
			c.byCategory[b.Category] = b
		}
	}

	for _, rd := range data.Recipes {
		if _, dup := c.byKey[rd.Key]; dup {
			return nil, fmt.Errorf("duplicate recipe: %s", rd.Key)
		}
		for _, line := range append(append([]models.Line{}, rd.Ingredients...), rd.Products...) {
			if _, ok := c.itemIndex[line.Item]; !ok {
				return nil, fmt.Errorf("recipe %s references %w: %s", rd.Key, ErrUnknownItem, line.Item)
			}
		}
		r := &Recipe{
			key:         rd.Key,
			name:        rd.Name,
			category:    rd.Category,
			time:        rd.Time,
			ingredients: rd.Ingredients,
			products:    rd.Products,
		}
		c.recipes = append(c.recipes, r)
		c.byKey[r.key] = r
		for _, p := range rd.Products {
			c.producers[p.Item] = append(c.producers[p.Item], r)
		}
	}

	return c, nil
}

// Recipe returns the recipe used to make item: the recipe sharing the item's
// key if it produces it, else the first producing recipe, else an implicit
// building-less recipe for resources.
func (c *Catalog) Recipe(item string) (reconcile.Recipe, error) {
	r, err := c.recipeFor(item)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// RecipeFor is Recipe with the concrete type.
func (c *Catalog) RecipeFor(item string) (*Recipe, error) {
	return c.recipeFor(item)
}

func (c *Catalog) recipeFor(item string) (*Recipe, error) {
	if r, ok := c.byKey[item]; ok && r.Gives(item).Sign() > 0 {
		return r, nil
	}
	if rs := c.producers[item]; len(rs) > 0 {
		return rs[0], nil
	}
	if i, ok := c.itemIndex[item]; ok && c.items[i].Resource {
		return &Recipe{
			key:      item,
			name:     c.items[i].Name,
			time:     rational.One(),
			products: []models.Line{{Item: item, Amount: rational.One()}},
		}, nil
	}
	return nil, &reconcile.NoRecipeError{Item: item}
}

// RecipeRate returns cycles per second for one building running recipe.
func (c *Catalog) RecipeRate(recipe reconcile.Recipe) (rational.Rational, error) {
	r, ok := recipe.(*Recipe)
	if !ok {
		return rational.Zero(), fmt.Errorf("recipe %s is not from this catalog", recipe.Key())
	}
	b := c.Building(r)
	if b == nil || r.time.Sign() <= 0 {
		return rational.Zero(), reconcile.ErrRateUndefined
	}
	rate, err := b.Speed.Div(r.time)
	if err != nil || rate.Sign() <= 0 {
		return rational.Zero(), reconcile.ErrRateUndefined
	}
	return rate, nil
}

// Building returns the building that runs r, or nil.
func (c *Catalog) Building(r *Recipe) *models.Building {
	category, ok := r.Category()
	if !ok {
		return nil
	}
	return c.byCategory[category]
}

// Item returns the item with the given key.
func (c *Catalog) Item(key string) (models.Item, error) {
	i, ok := c.itemIndex[key]
	if !ok {
		return models.Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, key)
	}
	return c.items[i], nil
}

// HasItem reports whether key names an item.
func (c *Catalog) HasItem(key string) bool {
	_, ok := c.itemIndex[key]
	return ok
}

// Items returns all items in file order.
func (c *Catalog) Items() []models.Item {
	return append([]models.Item(nil), c.items...)
}

// Tiers groups items by tier, lowest first, keeping file order within a tier.
func (c *Catalog) Tiers() [][]models.Item {
	byTier := make(map[int][]models.Item)
	var tiers []int
	for _, item := range c.items {
		if _, ok := byTier[item.Tier]; !ok {
			tiers = append(tiers, item.Tier)
		}
		byTier[item.Tier] = append(byTier[item.Tier], item)
	}
	sort.Ints(tiers)

	out := make([][]models.Item, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, byTier[t])
	}
	return out
}

// Recipes returns all explicit recipes in file order.
func (c *Catalog) Recipes() []*Recipe {
	return append([]*Recipe(nil), c.recipes...)
}

// Buildings returns all buildings in file order.
func (c *Catalog) Buildings() []models.Building {
	return append([]models.Building(nil), c.buildings...)
}

// Data converts the catalog back into its file representation.
func (c *Catalog) Data() *models.Data {
	data := &models.Data{
		Items:     c.Items(),
		Buildings: c.Buildings(),
	}
	for _, r := range c.recipes {
		data.Recipes = append(data.Recipes, models.Recipe{
			Key:         r.key,
			Name:        r.name,
			Category:    r.category,
			Time:        r.time,
			Ingredients: r.ingredients,
			Products:    r.products,
		})
	}
	return data
}
