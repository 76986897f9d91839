package checks

import (
	"context"
	"fmt"

	"factory-planner/core/storage"
	"factory-planner/feature/catalog"

	"github.com/minio/minio-go/v7"
)

// DataReport describes the recipe data file in the bucket.
type DataReport struct {
	Object    string `json:"object"`
	Present   bool   `json:"present"`
	Size      int64  `json:"size"`
	Valid     bool   `json:"valid"`
	Items     int    `json:"items"`
	Buildings int    `json:"buildings"`
	Recipes   int    `json:"recipes"`
	Error     string `json:"error,omitempty"`
}

// CheckCatalogData confirms the data object exists and builds into a
// catalog. A missing or invalid file is reported, not returned as an error.
func CheckCatalogData(ctx context.Context, client storage.Client, bucket, object string) (*DataReport, error) {
	report := &DataReport{Object: object}

	info, err := client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return report, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", object, err)
	}
	report.Present = true
	report.Size = info.Size

	c, err := (&catalog.StorageSource{Client: client, Bucket: bucket, Object: object}).Load(ctx)
	if err != nil {
		report.Error = err.Error()
		return report, nil
	}
	report.Valid = true
	report.Items = len(c.Items())
	report.Buildings = len(c.Buildings())
	report.Recipes = len(c.Recipes())
	return report, nil
}
