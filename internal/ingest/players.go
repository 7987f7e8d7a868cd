package ingest

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/sightscreen/cricdata/internal/cricapi"
)

const playerUpsert = `INSERT INTO players
	(player_id, name, nickname, role, bat_style, bowl_style, dob, birthplace, country, image_url)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (player_id) DO UPDATE SET
		name = excluded.name,
		nickname = excluded.nickname,
		role = excluded.role,
		bat_style = excluded.bat_style,
		bowl_style = excluded.bowl_style,
		dob = excluded.dob,
		birthplace = excluded.birthplace,
		country = excluded.country,
		image_url = excluded.image_url`

const playerTeamInsert = `INSERT INTO player_team (player_id, team_id) VALUES (?, ?)
	ON CONFLICT (player_id, team_id) DO NOTHING`

// Players loads cached player profiles and their player-team links.
func (l *Loader) Players() (Result, error) {
	res := Result{Family: "players"}

	keys, err := l.cache.List("player", "info")
	if err != nil {
		return res, fmt.Errorf("list cached players: %w", err)
	}

	tx, err := l.db.Beginx()
	if err != nil {
		return res, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, key := range keys {
		data, err := l.cache.Read(key)
		if err != nil {
			res.skip(key.ID, "unreadable file")
			continue
		}
		p, err := cricapi.DecodePlayerProfile(data)
		if err != nil {
			res.skip(key.ID, "unparsable payload")
			continue
		}
		pid := cricapi.AsInt(p.ID)
		if pid == nil {
			// Fall back to the id embedded in the filename.
			if n, convErr := strconv.ParseInt(key.ID, 10, 64); convErr == nil {
				pid = &n
			}
		}
		if pid == nil {
			res.skip(key.ID, "no player id")
			continue
		}

		err = exec(tx, playerUpsert,
			*pid, p.Name, nz(p.NickName), nz(p.Role), nz(p.Bat), nz(p.Bowl),
			nz(p.DoBFormat), nz(p.BirthPlace), nz(p.IntlTeam), nz(p.Image))
		if err != nil {
			return res, fmt.Errorf("upsert player %d: %w", *pid, err)
		}
		for _, t := range p.TeamNameIDs {
			tid := cricapi.AsInt(t.TeamID)
			if tid == nil {
				continue
			}
			if err := exec(tx, playerTeamInsert, *pid, *tid); err != nil {
				return res, fmt.Errorf("link player %d to team %d: %w", *pid, *tid, err)
			}
		}
		res.Succeeded++
	}

	if err := tx.Commit(); err != nil {
		return res, err
	}
	slog.Info("Players loaded", "summary", res.Summary())
	return res, nil
}
