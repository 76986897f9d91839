package database

// Config holds configuration for the catalog database.
type Config struct {
	// Driver selects the dialect (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"sqlite" validate:"oneof=mysql sqlite"`
	// Host is the MySQL host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the MySQL port.
	Port int `mapstructure:"port" default:"3306" validate:"gte=0,lte=65535"`
	// User is the MySQL user.
	User string `mapstructure:"user" default:"root"`
	// Password is the MySQL password.
	Password string `mapstructure:"password" default:""`
	// Name is the schema name for MySQL, or the file path for SQLite.
	Name string `mapstructure:"name" default:"factory.db" validate:"required"`
	// TimeoutSeconds bounds connection setup and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" validate:"gte=0"`
}
