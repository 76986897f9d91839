// Package integrity checks that the planner's backing stores are usable.
//
//   - Structure: the bucket exists and holds the data/ and images/ folders
//     (?fix=true creates them).
//   - Data: the recipe data file is present and builds into a catalog.
//   - Schema: the catalog tables in the database carry every model column
//     with a compatible type.
//   - Drift: the database mirror holds the same items, buildings and recipes
//     as the data file. Sync rewrites the mirror from the file.
//
// # HTTP Endpoints
//
//   - GET /integrity : runs all checks.
//   - GET /integrity/structure : structure check (supports ?fix=true).
//   - GET /integrity/data : data file check.
//   - GET /integrity/schema : schema check.
//   - GET /integrity/drift : data file vs database comparison.
//   - POST /integrity/drift/sync : rewrite the database catalog from the data file.
package integrity
