// Package server holds the HTTP server settings.
//
// The start command reads Addr for fiber's Listen, installs the API key
// middleware when ApiKey is set and the per-client throttle when Throttled
// returns true.
package server
