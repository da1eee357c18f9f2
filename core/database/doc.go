// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or
// SQLite (local development) connections based on the application's
// configuration.
//
// # Connect
//
// The Connect function establishes a connection to the canonical store,
// applies pool settings, and verifies the connection with a bounded ping.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the
// status command to verify the devices table matches the expected canonical
// shape before a reconciliation run is scheduled against it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "devices")
package database
