// Package storage wraps the MinIO client behind a small interface.
//
// The bucket holds the recipe data file (data/recipes.json by default) and an
// images/ folder. The Client interface is narrow enough to mock with
// testify; see core/storage/mocks.
//
//	client, err := storage.NewClient(cfg.Storage)
//	created, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
