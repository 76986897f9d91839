package models

// CatalogItem is the database row for an item.
type CatalogItem struct {
	Key      string `gorm:"primaryKey;column:item_key;type:varchar(100)"`
	Name     string `gorm:"column:name;type:varchar(150)"`
	Tier     int    `gorm:"column:tier;default:0"`
	Resource bool   `gorm:"column:resource;default:false"`
	Position int    `gorm:"column:position;default:0"`
}

func (CatalogItem) TableName() string {
	return "catalog_items"
}

// CatalogBuilding is the database row for a building.
type CatalogBuilding struct {
	Key      string `gorm:"primaryKey;column:building_key;type:varchar(100)"`
	Name     string `gorm:"column:name;type:varchar(150)"`
	Category string `gorm:"column:category;type:varchar(100);index"`
	Speed    string `gorm:"column:speed;type:varchar(64)"` // rational text, e.g. "3/4"
	Power    string `gorm:"column:power;type:varchar(64)"`
	Position int    `gorm:"column:position;default:0"`
}

func (CatalogBuilding) TableName() string {
	return "catalog_buildings"
}

// CatalogRecipe is the database row for a recipe.
type CatalogRecipe struct {
	Key      string  `gorm:"primaryKey;column:recipe_key;type:varchar(100)"`
	Name     string  `gorm:"column:name;type:varchar(150)"`
	Category *string `gorm:"column:category;type:varchar(100)"` // Nullable
	Time     string  `gorm:"column:time;type:varchar(64)"`
	Position int     `gorm:"column:position;default:0"`
}

func (CatalogRecipe) TableName() string {
	return "catalog_recipes"
}

// Line kinds stored in CatalogRecipeLine.Kind.
const (
	LineIngredient = "in"
	LineProduct    = "out"
)

// CatalogRecipeLine is one ingredient or product of a recipe.
type CatalogRecipeLine struct {
	ID        uint   `gorm:"primaryKey;column:id"`
	RecipeKey string `gorm:"column:recipe_key;type:varchar(100);index"`
	Kind      string `gorm:"column:kind;type:varchar(3)"`
	ItemKey   string `gorm:"column:item_key;type:varchar(100)"`
	Amount    string `gorm:"column:amount;type:varchar(64)"`
	Position  int    `gorm:"column:position;default:0"`
}

func (CatalogRecipeLine) TableName() string {
	return "catalog_recipe_lines"
}

// Tables lists every catalog model, in migration order.
func Tables() []any {
	return []any{&CatalogItem{}, &CatalogBuilding{}, &CatalogRecipe{}, &CatalogRecipeLine{}}
}
