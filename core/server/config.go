package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// ApiKey guards every route except /health; empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// RateLimit is the sustained requests per second per client; 0 disables throttling.
	RateLimit float64 `mapstructure:"rate_limit" default:"20" validate:"gte=0"`
	// RateBurst is the token bucket size per client.
	RateBurst int `mapstructure:"rate_burst" default:"40" validate:"gte=0"`
	// Swagger exposes the API docs under /swagger.
	Swagger bool `mapstructure:"swagger" default:"true"`
}

// Addr returns the listen address for fiber.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// Throttled reports whether request throttling is on.
func (c Config) Throttled() bool {
	return c.RateLimit > 0 && c.RateBurst > 0
}
