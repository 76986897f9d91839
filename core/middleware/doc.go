// Package middleware groups the fiber middleware installed by the start
// command.
//
//   - rayid: tags each request with an X-Ray-ID used in every log line.
//   - auth: checks X-API-Key when server.api_key is set.
//   - throttle: per-client token buckets from golang.org/x/time/rate.
//
// Order matters: rayid first so rejections from auth and throttle are
// traceable.
package middleware
