package ingest

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/sightscreen/cricdata/internal/cricapi"
)

const battingInsert = `INSERT INTO match_batting
	(match_id, innings_id, batsman_id, player_name, runs, balls, fours, sixes, strike_rate, dismissal)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (match_id, innings_id, batsman_id) DO NOTHING`

const bowlingInsert = `INSERT INTO match_bowling
	(match_id, innings_id, bowler_id, player_name, overs, maidens, runs, wickets, economy, balls)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (match_id, innings_id, bowler_id) DO NOTHING`

const fowInsert = `INSERT INTO match_fow
	(match_id, innings_id, fow_order, batsman_id, player_name, score, overs)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (match_id, innings_id, fow_order) DO NOTHING`

// Scorecards loads batting, bowling and fall-of-wicket lines from cached
// scorecard files. Scorecard lines are facts: rows are inserted once and
// later duplicates discarded.
func (l *Loader) Scorecards() (Result, error) {
	res := Result{Family: "scorecards"}

	keys, err := l.cache.List("match", "scorecard")
	if err != nil {
		return res, fmt.Errorf("list cached scorecards: %w", err)
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
		card, err := cricapi.DecodeScorecard(data)
		if err != nil {
			res.skip(key.ID, "unparsable payload")
			continue
		}
		mid := cricapi.AsInt(card.MatchID)
		if mid == nil {
			if n, convErr := strconv.ParseInt(key.ID, 10, 64); convErr == nil {
				mid = &n
			}
		}
		if mid == nil {
			res.skip(key.ID, "no match id")
			continue
		}

		for idx, innings := range card.Scorecard {
			iid := cricapi.AsInt(innings.InningsID)
			if iid == nil {
				// Ordinal fallback keeps the innings distinguishable.
				n := int64(idx + 1)
				iid = &n
			}

			for _, b := range innings.Batsman {
				bid := cricapi.AsInt(b.ID)
				if bid == nil {
					continue
				}
				err := exec(tx, battingInsert,
					*mid, *iid, *bid, b.Name,
					cricapi.AsInt(b.Runs), cricapi.AsInt(b.Balls),
					cricapi.AsInt(b.Fours), cricapi.AsInt(b.Sixes),
					cricapi.AsFloat(b.StrikeRate), nz(b.OutDec))
				if err != nil {
					return res, fmt.Errorf("insert batting line for match %d: %w", *mid, err)
				}
			}

			for _, b := range innings.Bowler {
				bid := cricapi.AsInt(b.ID)
				if bid == nil {
					continue
				}
				err := exec(tx, bowlingInsert,
					*mid, *iid, *bid, b.Name,
					cricapi.AsFloat(b.Overs), cricapi.AsInt(b.Maidens),
					cricapi.AsInt(b.Runs), cricapi.AsInt(b.Wickets),
					cricapi.AsFloat(b.Economy), cricapi.AsInt(b.Balls))
				if err != nil {
					return res, fmt.Errorf("insert bowling line for match %d: %w", *mid, err)
				}
			}

			if innings.Fow == nil {
				continue
			}
			for i, f := range innings.Fow.Fow {
				fid := cricapi.AsInt(f.BatsmanID)
				if fid == nil {
					continue
				}
				err := exec(tx, fowInsert,
					*mid, *iid, i+1, *fid,
					cricapi.AsString(f.BatsmanName), cricapi.AsString(f.Runs),
					cricapi.AsString(f.OverNumber))
				if err != nil {
					return res, fmt.Errorf("insert fall of wicket for match %d: %w", *mid, err)
				}
			}
		}
		res.Succeeded++
	}

	if err := tx.Commit(); err != nil {
		return res, err
	}
	slog.Info("Scorecards loaded", "summary", res.Summary())
	return res, nil
}
