package integrity

import (
	"context"

	"factory-planner/core/storage"
	"factory-planner/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs health checks on the catalog's storage and database.
type Service struct {
	client storage.Client
	bucket string
	object string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. db may be nil.
func NewService(client storage.Client, bucket, object string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		object: object,
		db:     db,
		logger: logger,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckCatalogData inspects the recipe data file.
func (s *Service) CheckCatalogData(ctx context.Context) (*checks.DataReport, error) {
	return checks.CheckCatalogData(ctx, s.client, s.bucket, s.object)
}

// CheckSchema compares the catalog tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckDrift compares the data file with the database mirror and, when
// sync is set, rewrites the mirror from the data file.
func (s *Service) CheckDrift(ctx context.Context, sync bool) (*checks.DriftReport, error) {
	report, err := checks.CheckDrift(ctx, s.client, s.bucket, s.object, s.db, sync)
	if err == nil && report.Synced {
		s.logger.Info("Database catalog synced from data file",
			zap.Int("missing_database", report.Summary.MissingDatabase),
			zap.Int("missing_data", report.Summary.MissingData),
			zap.Int("mismatches", report.Summary.Mismatches))
	}
	return report, err
}
