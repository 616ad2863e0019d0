// Package database opens the relational database used by the database mapping backend.
//
// It wraps GORM and supports MySQL (production) and SQLite (local runs and tests).
// SQLite connections are limited to a single pooled connection so that ":memory:"
// databases behave as one database.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return fmt.Errorf("failed to connect to database: %w", err)
//	}
//	store := mapping.NewDBStore(db)
package database
