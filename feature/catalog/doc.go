// Package catalog implements the recipe catalog feature.
//
// The catalog maps items to the recipes that produce them and recipes to the
// buildings that run them. It is the Catalog collaborator of core/reconcile.
//
// # Data File
//
// Recipe data is a JSON or YAML document with three lists:
//
//	items:     [{key, name, tier, resource}]
//	buildings: [{key, name, category, speed, power}]
//	recipes:   [{key, name, category, time, ingredients, products}]
//
// Numbers may be written as JSON/YAML numbers or as fraction strings ("1/3").
// A recipe with a null category is run by no building, so its per-building
// rate is undefined. Items marked resource without an explicit recipe get an
// implicit building-less recipe.
//
// # Sources
//
//   - StorageSource: the data file in the S3/MinIO bucket (default data/recipes.json).
//   - FileSource: a local file, optionally watched for changes (fsnotify).
//   - DatabaseSource: the SQL mirror written by Store.Save.
//
// A Cache wraps the selected source with a TTL and singleflight protection.
//
// # HTTP Endpoints
//
//   - GET /catalog/items : List items.
//   - GET /catalog/tiers : List items grouped by tier.
//   - GET /catalog/items/:key : Get one item.
//   - GET /catalog/items/:key/recipe : Recipe and single-building rate for an item.
//   - POST /catalog/reload : Re-read the catalog source.
package catalog
