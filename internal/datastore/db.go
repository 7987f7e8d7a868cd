// Package datastore opens the relational sink and owns its schema. The
// same SQL runs against SQLite and PostgreSQL: statements are written with
// "?" placeholders and rebound per driver.
package datastore

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/sightscreen/cricdata/internal/config"
)

func init() {
	// The modernc driver registers as "sqlite", a name sqlx does not know.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// DB is an open connection to the configured database.
type DB struct {
	*sqlx.DB
}

// Open connects to the database selected by cfg and verifies the
// connection with a ping.
func Open(cfg config.DBConfig) (*DB, error) {
	driver := "sqlite"
	if cfg.Driver == "postgres" {
		driver = "pgx"
	}
	db, err := sqlx.Connect(driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}
	return &DB{DB: db}, nil
}

// CreateSchema creates every table if it does not already exist.
func (d *DB) CreateSchema() error {
	for _, stmt := range schema {
		if _, err := d.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
