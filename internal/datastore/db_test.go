package datastore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sightscreen/cricdata/internal/config"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(config.DBConfig{Driver: "sqlite", File: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.CreateSchema())
	return db
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, db.CreateSchema())
}

func TestSchemaCoversAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{
		"teams", "players", "player_team", "venues", "series", "matches",
		"match_teams", "match_result", "match_toss", "match_officials",
		"match_awards", "match_roster", "player_stats", "player_bowling_stats",
		"match_batting", "match_bowling", "match_fow",
	} {
		var count int
		err := db.Get(&count, "SELECT COUNT(*) FROM "+table)
		assert.NoError(t, err, table)
		assert.Zero(t, count, table)
	}
}

func TestUpsertConflictClauseWorks(t *testing.T) {
	db := openTestDB(t)

	query := db.Rebind(`INSERT INTO teams (team_id, name, short_name, country, image_url)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (team_id) DO UPDATE SET
			name = excluded.name, short_name = excluded.short_name,
			country = excluded.country, image_url = excluded.image_url`)

	_, err := db.Exec(query, 2, "India", "IND", "India", "http://example.com/1.jpg")
	require.NoError(t, err)
	_, err = db.Exec(query, 2, "India", "IN", "India", "http://example.com/2.jpg")
	require.NoError(t, err)

	var got struct {
		ShortName string `db:"short_name"`
		ImageURL  string `db:"image_url"`
	}
	require.NoError(t, db.Get(&got, "SELECT short_name, image_url FROM teams WHERE team_id = 2"))
	assert.Equal(t, "IN", got.ShortName)
	assert.Equal(t, "http://example.com/2.jpg", got.ImageURL)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM teams"))
	assert.Equal(t, 1, count)
}

func TestInsertOnceConflictClauseWorks(t *testing.T) {
	db := openTestDB(t)

	query := db.Rebind(`INSERT INTO player_team (player_id, team_id) VALUES (?, ?)
		ON CONFLICT (player_id, team_id) DO NOTHING`)

	_, err := db.Exec(query, 1413, 2)
	require.NoError(t, err)
	_, err = db.Exec(query, 1413, 2)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM player_team"))
	assert.Equal(t, 1, count)
}
