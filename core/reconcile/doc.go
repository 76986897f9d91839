// Package reconcile keeps the two representations of a build target in step.
//
// A Target is either specified by building count or by production rate. The
// field the user last edited is authoritative; the other one is derived on
// demand by the Reconciler from the recipe catalog:
//
//	rate      = baseRate * buildings   (ByBuildings)
//	buildings = rate / baseRate        (ByRate)
//
// where baseRate is the per-building cycle rate of the item's recipe times the
// number of units one cycle yields. All values are exact rationals, so the
// conversion round-trips without drift.
//
// # Collaborators
//
// The Reconciler owns no global state. The recipe Catalog and the display
// Formatter are passed to NewReconciler; feature/catalog and core/format
// provide the production implementations.
//
// # Errors
//
//   - *ParseError: entered text is not a number. The target is left untouched.
//   - *NoRecipeError: the item has no recipe. Show a neutral placeholder.
//   - ErrRateUndefined: the recipe has no fixed per-building rate. Recompute
//     absorbs it: the rate field stays empty in ByBuildings mode and the
//     building field shows "N/A" in ByRate mode.
//
// # Usage
//
//	r := reconcile.NewReconciler(catalog, formatter)
//	t := reconcile.NewTarget(0, "iron-plate")
//	if err := r.SwitchToRate(t, input, formatter.RateFactor()); err != nil {
//	    // reject the edit
//	}
//	view, err := r.Recompute(t)
package reconcile
