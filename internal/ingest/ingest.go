// Package ingest normalizes cached API payloads into the relational
// schema. Each entity family is loaded in one transaction: entities with
// mutable attributes are upserted, facts and junction rows are inserted
// once with later duplicates discarded.
package ingest

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sightscreen/cricdata/internal/cache"
	"github.com/sightscreen/cricdata/internal/cricapi"
	"github.com/sightscreen/cricdata/internal/datastore"
)

// Loader reads the cache and writes the database.
type Loader struct {
	cache *cache.Store
	db    *datastore.DB
}

// New creates a Loader over an open cache and database.
func New(store *cache.Store, db *datastore.DB) *Loader {
	return &Loader{cache: store, db: db}
}

// exec rebinds the placeholder style for the connected driver and runs
// the statement inside the family transaction.
func exec(tx *sqlx.Tx, query string, args ...any) error {
	_, err := tx.Exec(tx.Rebind(query), args...)
	return err
}

// imageURL builds the provider's static-asset URL for an image id.
func imageURL(id any) *string {
	n := cricapi.AsInt(id)
	if n == nil {
		return nil
	}
	u := fmt.Sprintf("http://i.cricketcb.com/i/stats/images/%d.jpg", *n)
	return &u
}

// nz maps the empty string to NULL.
func nz(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// teamID resolves a team reference: listing payloads carry teamId,
// match-center payloads carry id.
func teamID(t *cricapi.TeamInfo) *int64 {
	if t == nil {
		return nil
	}
	if id := cricapi.AsInt(t.TeamID); id != nil {
		return id
	}
	return cricapi.AsInt(t.ID)
}
