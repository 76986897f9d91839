// Package database opens the relational store that can back the recipe
// catalog and inspects its schema.
//
// Connect understands two drivers. "mysql" builds a DSN from host, port and
// credentials with connect/read/write timeouts; "sqlite" opens Name as a file
// path (":memory:" is allowed and pinned to one connection).
//
// GetTableColumns returns normalised column descriptions for a table and is
// used by the integrity feature to confirm the catalog tables match their
// models.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	cols, err := database.ColumnSet(db, "catalog_items")
package database
