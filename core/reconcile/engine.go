package reconcile

import (
	"errors"

	"factory-planner/core/rational"
)

// Reconciler derives the non-authoritative field of a Target.
type Reconciler struct {
	catalog Catalog
	format  Formatter
}

// NewReconciler creates a Reconciler over the given catalog and formatter.
func NewReconciler(catalog Catalog, format Formatter) *Reconciler {
	return &Reconciler{catalog: catalog, format: format}
}

// BaseRate returns the items per second one building produces for item.
// The returned error is *NoRecipeError or ErrRateUndefined.
func (r *Reconciler) BaseRate(item string) (rational.Rational, error) {
	recipe, err := r.catalog.Recipe(item)
	if err != nil {
		return rational.Zero(), err
	}
	return r.baseRate(recipe, item)
}

func (r *Reconciler) baseRate(recipe Recipe, item string) (rational.Rational, error) {
	perCycle, err := r.catalog.RecipeRate(recipe)
	if err != nil {
		return rational.Zero(), err
	}
	return perCycle.Mul(recipe.Gives(item)), nil
}

// Recompute derives the complementary field of t and its display strings.
// It does not modify t. A *NoRecipeError means the caller should show a
// neutral placeholder.
func (r *Reconciler) Recompute(t *Target) (Reconciliation, error) {
	if t.SelectedItem == "" {
		return Reconciliation{Mode: t.Mode}, &NoRecipeError{}
	}
	recipe, err := r.catalog.Recipe(t.SelectedItem)
	if err != nil {
		return Reconciliation{Mode: t.Mode}, err
	}

	baseRate, err := r.baseRate(recipe, t.SelectedItem)
	defined := true
	if err != nil {
		if !errors.Is(err, ErrRateUndefined) {
			return Reconciliation{Mode: t.Mode}, err
		}
		defined = false
	}

	out := Reconciliation{Mode: t.Mode, RateDefined: defined}

	switch t.Mode {
	case ByBuildings:
		count := t.BuildingCount
		out.Buildings = &count
		out.BuildingsDisplay = t.BuildingText
		if out.BuildingsDisplay == "" {
			out.BuildingsDisplay = r.format.Count(count)
		}
		if defined {
			rate := baseRate.Mul(count)
			out.Rate = &rate
			out.RateDisplay = r.format.Rate(rate)
		}

	case ByRate:
		rate := t.Rate
		out.Rate = &rate
		out.RateDisplay = r.format.Rate(rate)
		if count, err := rate.Div(baseRate); defined && err == nil {
			out.Buildings = &count
			out.BuildingsDisplay = r.format.Count(count)
		} else {
			out.BuildingsDisplay = NotAvailable
		}
	}

	return out, nil
}

// SwitchToBuildings makes text the authoritative building count. On a
// *ParseError t is left unchanged.
func (r *Reconciler) SwitchToBuildings(t *Target, text string) error {
	return t.SwitchToBuildings(text)
}

// SwitchToRate makes text, in display units, the authoritative rate. The
// value is divided by rateUnitFactor to store items per second. On a
// *ParseError t is left unchanged.
func (r *Reconciler) SwitchToRate(t *Target, text string, rateUnitFactor rational.Rational) error {
	return t.SwitchToRate(text, rateUnitFactor)
}

// SetBuildings sets an already normalized building count.
func (r *Reconciler) SetBuildings(t *Target, count rational.Rational) {
	t.Mode = ByBuildings
	t.BuildingCount = count
	t.BuildingText = count.String()
	t.Rate = rational.Zero()
}

// SetRate sets an already normalized rate in items per second.
func (r *Reconciler) SetRate(t *Target, perSecond rational.Rational) {
	t.Mode = ByRate
	t.Rate = perSecond
	t.BuildingCount = rational.Zero()
	t.BuildingText = ""
}
