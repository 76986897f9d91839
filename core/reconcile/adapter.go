package reconcile

import (
	"errors"
	"fmt"

	"factory-planner/core/rational"
)

// ErrRateUndefined is returned by Catalog.RecipeRate when a recipe has no
// fixed per-building throughput (e.g. raw resources with no building).
var ErrRateUndefined = errors.New("recipe rate undefined")

// ParseError is returned when entered text is not a valid number.
type ParseError = rational.ParseError

// NoRecipeError reports an item with no resolvable recipe.
type NoRecipeError struct {
	Item string
}

func (e *NoRecipeError) Error() string {
	if e.Item == "" {
		return "no item selected"
	}
	return fmt.Sprintf("no recipe produces %s", e.Item)
}

// Recipe is the part of a recipe the reconciler needs.
type Recipe interface {
	// Key returns the recipe identifier.
	Key() string

	// Gives returns how many units of item one cycle yields.
	Gives(item string) rational.Rational
}

// Catalog resolves items to recipes and recipes to per-building rates.
// Implementations must be safe for concurrent reads.
type Catalog interface {
	// Recipe returns the recipe used to produce item, or *NoRecipeError.
	Recipe(item string) (Recipe, error)

	// RecipeRate returns the cycles per second one building completes,
	// or ErrRateUndefined.
	RecipeRate(recipe Recipe) (rational.Rational, error)
}

// Formatter renders values for display.
type Formatter interface {
	Rate(perSecond rational.Rational) string
	Count(count rational.Rational) string
}
