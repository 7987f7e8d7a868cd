package ingest

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/sightscreen/cricdata/internal/cricapi"
)

const seriesUpsert = `INSERT INTO series (series_id, name, type, start_date, end_date)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (series_id) DO UPDATE SET
		name = excluded.name,
		type = excluded.type,
		start_date = excluded.start_date,
		end_date = excluded.end_date`

const matchUpsert = `INSERT INTO matches
	(match_id, series_id, name, format, start_date, end_date, state, status, venue_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (match_id) DO UPDATE SET
		series_id = excluded.series_id,
		name = excluded.name,
		format = excluded.format,
		start_date = excluded.start_date,
		end_date = excluded.end_date,
		state = excluded.state,
		status = excluded.status,
		venue_id = excluded.venue_id`

const matchTeamInsert = `INSERT INTO match_teams (match_id, team_id, team_role) VALUES (?, ?, ?)
	ON CONFLICT (match_id, team_id) DO NOTHING`

// SeriesAndMatches loads series rows and their matches from the cached
// per-series match files. A match whose series id cannot be resolved is
// skipped rather than written with a dangling series reference.
func (l *Loader) SeriesAndMatches() (Result, error) {
	res := Result{Family: "series and matches"}

	keys, err := l.cache.List("series", "matches")
	if err != nil {
		return res, fmt.Errorf("list cached series: %w", err)
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
		detail, err := cricapi.DecodeSeriesDetail(data)
		if err != nil {
			res.skip(key.ID, "unparsable payload")
			continue
		}

		for _, md := range detail.MatchDetails {
			if md.MatchDetailsMap == nil {
				continue
			}
			for _, m := range md.MatchDetailsMap.Match {
				if err := l.loadMatch(tx, m.Info, &res); err != nil {
					return res, err
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return res, err
	}
	slog.Info("Series and matches loaded", "summary", res.Summary())
	return res, nil
}

func (l *Loader) loadMatch(tx *sqlx.Tx, info *cricapi.MatchInfo, res *Result) error {
	if info == nil {
		return nil
	}
	mid := cricapi.AsInt(info.MatchID)
	if mid == nil {
		res.skip(info.MatchDesc, "no match id")
		return nil
	}
	sid := cricapi.AsInt(info.SeriesID)
	if sid == nil {
		res.skip(strconv.FormatInt(*mid, 10), "no series id")
		return nil
	}

	seriesType := info.SeriesType
	if seriesType == "" {
		seriesType = info.MatchFormat
	}
	err := exec(tx, seriesUpsert,
		*sid, info.SeriesName, nz(seriesType),
		cricapi.EpochMillis(info.SeriesStartDt), cricapi.EpochMillis(info.SeriesEndDt))
	if err != nil {
		return fmt.Errorf("upsert series %d: %w", *sid, err)
	}

	var venueID *int64
	if info.VenueInfo != nil {
		venueID = cricapi.AsInt(info.VenueInfo.ID)
	}
	err = exec(tx, matchUpsert,
		*mid, *sid, nz(info.MatchDesc), nz(info.MatchFormat),
		cricapi.EpochMillis(info.StartDate), cricapi.EpochMillis(info.EndDate),
		nz(info.State), nz(info.Status), venueID)
	if err != nil {
		return fmt.Errorf("upsert match %d: %w", *mid, err)
	}

	for role, team := range map[string]*cricapi.TeamInfo{"team1": info.Team1, "team2": info.Team2} {
		tid := teamID(team)
		if tid == nil {
			continue
		}
		if err := exec(tx, matchTeamInsert, *mid, *tid, role); err != nil {
			return fmt.Errorf("link match %d to team %d: %w", *mid, *tid, err)
		}
	}

	res.Succeeded++
	return nil
}
