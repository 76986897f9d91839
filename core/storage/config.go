package storage

// Config holds the object storage connection settings.
type Config struct {
	// Endpoint is host:port of the S3 compatible service; a scheme is stripped.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000" validate:"required"`
	// AccessKey is the access key ID.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL switches to https.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the recipe data and item images.
	Bucket string `mapstructure:"bucket" default:"factory" validate:"required"`
	// Region is the bucket location, e.g. us-east-1.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dial, TLS and first-byte waits.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" validate:"gte=0"`
}
