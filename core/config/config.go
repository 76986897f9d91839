package config

import (
	"reflect"
	"strings"

	"factory-planner/core/database"
	"factory-planner/core/format"
	"factory-planner/core/logger"
	"factory-planner/core/server"
	"factory-planner/core/storage"
	"factory-planner/core/validation"
	"factory-planner/feature/catalog"
	"factory-planner/feature/target"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (S3, MinIO).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the catalog database.
	Database database.Config `mapstructure:"database"`
	// Format holds display settings for rates and counts.
	Format format.Config `mapstructure:"format"`
	// Catalog selects and caches the recipe data source.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Target limits the build-target session.
	Target target.Config `mapstructure:"target"`
}

// LoadConfig loads configuration from environment variables and the .env
// file in path, then validates it.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is fine; production passes real environment variables
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := validation.New().Struct(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every mapstructure key with its
// `default` tag so AutomaticEnv can see it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Set even empty defaults so the key exists for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
