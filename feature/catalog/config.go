package catalog

import "time"

// Catalog source kinds.
const (
	SourceStorage  = "storage"
	SourceFile     = "file"
	SourceDatabase = "database"
)

// Config holds configuration for loading the recipe catalog.
type Config struct {
	// Source selects where the catalog is read from (storage, file, database).
	Source string `mapstructure:"source" default:"storage" validate:"oneof=storage file database"`
	// Object is the data file key in the storage bucket.
	Object string `mapstructure:"object" default:"data/recipes.json"`
	// Path is the data file path on disk when Source is file.
	Path string `mapstructure:"path" default:"recipes.json"`
	// CacheTTLSeconds is how long a loaded catalog is reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300" validate:"min=0"`
	// Watch reloads a file source when it changes on disk.
	Watch bool `mapstructure:"watch" default:"false"`
}

// CacheTTL returns CacheTTLSeconds as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
