// Package target manages the build targets of a planning session.
//
// A target names an item and either a building count or a production rate;
// whichever the user edited last is authoritative and the other is derived by
// core/reconcile against the current recipe catalog. Edits are parsed as
// exact rationals ("2", "1.5", "3/4"); a malformed value leaves the target
// as it was and the API answers 400 with the unchanged view.
//
// When the item's recipe has no fixed rate (a resource or a recipe without a
// building category) the rate field is left empty in building mode, and the
// building count reads "N/A" in rate mode.
//
// # Endpoints
//
//   - GET    /targets
//   - POST   /targets
//   - GET    /targets/:id
//   - PUT    /targets/:id/item
//   - PUT    /targets/:id/buildings
//   - PUT    /targets/:id/rate
//   - DELETE /targets/:id
package target
