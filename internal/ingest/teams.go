package ingest

import (
	"fmt"
	"log/slog"

	"github.com/sightscreen/cricdata/internal/cache"
	"github.com/sightscreen/cricdata/internal/cricapi"
)

const teamUpsert = `INSERT INTO teams (team_id, name, short_name, country, image_url)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (team_id) DO UPDATE SET
		name = excluded.name,
		short_name = excluded.short_name,
		country = excluded.country,
		image_url = excluded.image_url`

// Teams loads the cached international team index into the teams table.
func (l *Loader) Teams() (Result, error) {
	res := Result{Family: "teams"}

	data, err := l.cache.Read(cache.TeamsList())
	if err != nil {
		return res, fmt.Errorf("read team listing: %w", err)
	}
	listing, err := cricapi.DecodeTeamListing(data)
	if err != nil {
		return res, fmt.Errorf("decode team listing: %w", err)
	}

	tx, err := l.db.Beginx()
	if err != nil {
		return res, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, team := range listing.List {
		tid := cricapi.AsInt(team.TeamID)
		if tid == nil {
			// Category header rows carry a name but no id.
			res.skip(team.TeamName, "no team id")
			continue
		}
		country := team.CountryName
		if country == "" {
			country = team.TeamName
		}
		err := exec(tx, teamUpsert,
			*tid, team.TeamName, nz(team.TeamSName), country, imageURL(team.ImageID))
		if err != nil {
			return res, fmt.Errorf("upsert team %d: %w", *tid, err)
		}
		res.Succeeded++
	}

	if err := tx.Commit(); err != nil {
		return res, err
	}
	slog.Info("Teams loaded", "summary", res.Summary())
	return res, nil
}
