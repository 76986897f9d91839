package catalog

import (
	"context"
	"fmt"
	"os"

	"factory-planner/core/storage"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// Source loads a catalog from somewhere.
type Source interface {
	// Name identifies the source in logs and cache keys.
	Name() string
	// Load reads and builds the catalog.
	Load(ctx context.Context) (*Catalog, error)
}

// StorageSource reads the data file from object storage.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Object string
}

// Name returns "storage:<bucket>/<object>".
func (s *StorageSource) Name() string {
	return "storage:" + s.Bucket + "/" + s.Object
}

// Load downloads and parses the data file.
func (s *StorageSource) Load(ctx context.Context) (*Catalog, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.Object, err)
	}
	defer obj.Close()

	return Parse(s.Object, obj)
}

// FileSource reads the data file from local disk.
type FileSource struct {
	Path string
}

// Name returns "file:<path>".
func (s *FileSource) Name() string {
	return "file:" + s.Path
}

// Load reads and parses the data file.
func (s *FileSource) Load(ctx context.Context) (*Catalog, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return Parse(s.Path, f)
}

// DatabaseSource rebuilds the catalog from the SQL mirror.
type DatabaseSource struct {
	Store *Store
}

// Name returns "database".
func (s *DatabaseSource) Name() string {
	return "database"
}

// Load reads every catalog table.
func (s *DatabaseSource) Load(ctx context.Context) (*Catalog, error) {
	return s.Store.Load(ctx)
}

// NewSource builds the Source selected by cfg.
func NewSource(cfg Config, client storage.Client, bucket string, db *gorm.DB) (Source, error) {
	switch cfg.Source {
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("catalog source %q needs a storage client", cfg.Source)
		}
		return &StorageSource{Client: client, Bucket: bucket, Object: cfg.Object}, nil
	case SourceFile:
		return &FileSource{Path: cfg.Path}, nil
	case SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("catalog source %q needs a database connection", cfg.Source)
		}
		return &DatabaseSource{Store: NewStore(db)}, nil
	default:
		return nil, fmt.Errorf("unknown catalog source: %q", cfg.Source)
	}
}
