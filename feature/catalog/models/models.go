package models

import (
	"factory-planner/core/rational"
)

// Data represents the structure of a recipe data file (JSON or YAML).
type Data struct {
	Items     []Item     `json:"items" yaml:"items" validate:"required,min=1,dive"`
	Buildings []Building `json:"buildings" yaml:"buildings" validate:"dive"`
	Recipes   []Recipe   `json:"recipes" yaml:"recipes" validate:"dive"`
}

// Item is a producible or raw item.
type Item struct {
	Key  string `json:"key" yaml:"key" validate:"required"`
	Name string `json:"name" yaml:"name"`
	// Tier groups items in selection lists.
	Tier int `json:"tier" yaml:"tier" validate:"min=0"`
	// Resource marks raw items that are gathered rather than crafted.
	Resource bool `json:"resource,omitempty" yaml:"resource,omitempty"`
}

// Building is a machine that runs recipes of one category.
type Building struct {
	Key      string `json:"key" yaml:"key" validate:"required"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category" validate:"required"`
	// Speed is the crafting speed multiplier.
	Speed rational.Rational `json:"speed" yaml:"speed"`
	// Power is the power draw in kW, informational.
	Power rational.Rational `json:"power,omitempty" yaml:"power,omitempty"`
}

// Line is an item amount consumed or produced by a recipe.
type Line struct {
	Item   string            `json:"item" yaml:"item" validate:"required"`
	Amount rational.Rational `json:"amount" yaml:"amount"`
}

// Recipe converts ingredients into products in Time seconds.
type Recipe struct {
	Key  string `json:"key" yaml:"key" validate:"required"`
	Name string `json:"name" yaml:"name"`
	// Category selects the building; nil means no building runs this recipe.
	Category    *string           `json:"category" yaml:"category"`
	Time        rational.Rational `json:"time" yaml:"time"`
	Ingredients []Line            `json:"ingredients" yaml:"ingredients" validate:"dive"`
	Products    []Line            `json:"products" yaml:"products" validate:"required,min=1,dive"`
}

// ItemView is the API representation of an item.
type ItemView struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Tier     int    `json:"tier"`
	Resource bool   `json:"resource"`
}

// RecipeView is the API representation of the recipe used for an item.
type RecipeView struct {
	Item        string `json:"item"`
	Recipe      string `json:"recipe"`
	Category    string `json:"category,omitempty"`
	Building    string `json:"building,omitempty"`
	RateDefined bool   `json:"rate_defined"`
	// BaseRate is the display rate of one building, or "N/A".
	BaseRate  string `json:"base_rate"`
	RateLabel string `json:"rate_label"`
}
