// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to open the inventory database. SQLite is
// the default (a local file such as inventory.db, or ":memory:" in tests);
// MySQL is supported for shared deployments.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies pool settings and
// verifies the connection with a bounded ping. SQLite connections are limited
// to one open connection so in-memory databases survive across queries.
//
// # Schema Inspection
//
// GetTableColumns reads the live column list (PRAGMA table_info on SQLite,
// SHOW COLUMNS on MySQL). MissingColumns builds on it so callers can verify a
// table after migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	missing, err := database.MissingColumns(db, "inventory", []string{"product_name"})
package database
