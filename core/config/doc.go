// Package config loads the planner's settings.
//
// Values come from the environment, optionally seeded from a .env file, with
// defaults taken from each section's `default` struct tags. Keys map as
// SECTION_KEY, e.g. CATALOG_SOURCE or FORMAT_RATE_UNIT. The result is checked
// with the sections' `validate` tags before it is returned.
//
// Sections: server, storage, log, database, format, catalog, target.
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
