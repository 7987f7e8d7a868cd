package ingest

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/sightscreen/cricdata/internal/cricapi"
)

const resultUpsert = `INSERT INTO match_result
	(match_id, result_type, winning_team, winning_team_id, winning_margin, win_by_runs, win_by_innings)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (match_id) DO UPDATE SET
		result_type = excluded.result_type,
		winning_team = excluded.winning_team,
		winning_team_id = excluded.winning_team_id,
		winning_margin = excluded.winning_margin,
		win_by_runs = excluded.win_by_runs,
		win_by_innings = excluded.win_by_innings`

const tossUpsert = `INSERT INTO match_toss (match_id, toss_winner_id, toss_winner_name, decision)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (match_id) DO UPDATE SET
		toss_winner_id = excluded.toss_winner_id,
		toss_winner_name = excluded.toss_winner_name,
		decision = excluded.decision`

const officialsUpsert = `INSERT INTO match_officials
	(match_id,
	 umpire1_id, umpire1_name, umpire1_country,
	 umpire2_id, umpire2_name, umpire2_country,
	 umpire3_id, umpire3_name, umpire3_country,
	 referee_id, referee_name, referee_country)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (match_id) DO UPDATE SET
		umpire1_id = excluded.umpire1_id, umpire1_name = excluded.umpire1_name, umpire1_country = excluded.umpire1_country,
		umpire2_id = excluded.umpire2_id, umpire2_name = excluded.umpire2_name, umpire2_country = excluded.umpire2_country,
		umpire3_id = excluded.umpire3_id, umpire3_name = excluded.umpire3_name, umpire3_country = excluded.umpire3_country,
		referee_id = excluded.referee_id, referee_name = excluded.referee_name, referee_country = excluded.referee_country`

const awardUpsert = `INSERT INTO match_awards (match_id, award_type, player_id, player_name, team_name)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (match_id, award_type, player_id) DO UPDATE SET
		player_name = excluded.player_name,
		team_name = excluded.team_name`

// rosterPlayerUpsert records players first seen in a match roster without
// clobbering profile-loaded columns such as dob and birthplace.
const rosterPlayerUpsert = `INSERT INTO players (player_id, name, country, role, bat_style, bowl_style)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (player_id) DO UPDATE SET
		name = excluded.name,
		country = excluded.country,
		role = excluded.role,
		bat_style = excluded.bat_style,
		bowl_style = excluded.bowl_style`

const rosterUpsert = `INSERT INTO match_roster
	(match_id, team_id, player_id, name, full_name, nickname, role, bat_style, bowl_style,
	 is_captain, is_keeper, is_substitute, face_image_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (match_id, team_id, player_id) DO UPDATE SET
		name = excluded.name,
		full_name = excluded.full_name,
		nickname = excluded.nickname,
		role = excluded.role,
		bat_style = excluded.bat_style,
		bowl_style = excluded.bowl_style,
		is_captain = excluded.is_captain,
		is_keeper = excluded.is_keeper,
		is_substitute = excluded.is_substitute,
		face_image_id = excluded.face_image_id`

// MatchDetails loads result, toss, officials, awards and rosters from the
// cached match-center files.
func (l *Loader) MatchDetails() (Result, error) {
	res := Result{Family: "match details"}

	keys, err := l.cache.List("match", "info")
	if err != nil {
		return res, fmt.Errorf("list cached matches: %w", err)
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
		center, err := cricapi.DecodeMatchCenter(data)
		if err != nil || center.MatchInfo == nil {
			res.skip(key.ID, "unparsable payload")
			continue
		}
		info := center.MatchInfo

		mid := cricapi.AsInt(info.MatchID)
		if mid == nil {
			if n, convErr := strconv.ParseInt(key.ID, 10, 64); convErr == nil {
				mid = &n
			}
		}
		if mid == nil {
			res.skip(key.ID, "no match id")
			continue
		}

		if err := loadMatchFacts(tx, *mid, info); err != nil {
			return res, err
		}
		res.Succeeded++
	}

	if err := tx.Commit(); err != nil {
		return res, err
	}
	slog.Info("Match details loaded", "summary", res.Summary())
	return res, nil
}

func loadMatchFacts(tx *sqlx.Tx, mid int64, info *cricapi.MatchInfo) error {
	if r := info.Result; r != nil && r.ResultType != "" {
		err := exec(tx, resultUpsert,
			mid, r.ResultType, nz(r.WinningTeam), cricapi.AsInt(r.WinningTeamID),
			cricapi.AsInt(r.WinningMargin), r.WinByRuns, r.WinByInnings)
		if err != nil {
			return fmt.Errorf("upsert result for match %d: %w", mid, err)
		}
	}

	if t := info.TossResults; t != nil && t.TossWinnerName != "" {
		err := exec(tx, tossUpsert,
			mid, cricapi.AsInt(t.TossWinnerID), t.TossWinnerName, nz(t.Decision))
		if err != nil {
			return fmt.Errorf("upsert toss for match %d: %w", mid, err)
		}
	}

	if info.Umpire1 != nil || info.Umpire2 != nil || info.Umpire3 != nil || info.Referee != nil {
		args := []any{mid}
		for _, o := range []*cricapi.Official{info.Umpire1, info.Umpire2, info.Umpire3, info.Referee} {
			if o == nil {
				args = append(args, nil, nil, nil)
				continue
			}
			args = append(args, cricapi.AsInt(o.ID), nz(o.Name), nz(o.Country))
		}
		if err := exec(tx, officialsUpsert, args...); err != nil {
			return fmt.Errorf("upsert officials for match %d: %w", mid, err)
		}
	}

	for awardType, players := range map[string][]cricapi.AwardPlayer{
		"PlayerOfMatch":  info.PlayersOfTheMatch,
		"PlayerOfSeries": info.PlayersOfTheSeries,
	} {
		for _, p := range players {
			pid := cricapi.AsInt(p.ID)
			if pid == nil {
				continue
			}
			name := p.FullName
			if name == "" {
				name = p.Name
			}
			if err := exec(tx, awardUpsert, mid, awardType, *pid, name, nz(p.TeamName)); err != nil {
				return fmt.Errorf("upsert award for match %d: %w", mid, err)
			}
		}
	}

	for _, team := range []*cricapi.TeamInfo{info.Team1, info.Team2} {
		tid := teamID(team)
		if tid == nil {
			continue
		}
		for _, p := range team.PlayerDetails {
			pid := cricapi.AsInt(p.ID)
			if pid == nil {
				continue
			}
			err := exec(tx, rosterPlayerUpsert,
				*pid, p.Name, nz(p.TeamName), nz(p.Role), nz(p.BattingStyle), nz(p.BowlingStyle))
			if err != nil {
				return fmt.Errorf("upsert roster player %d: %w", *pid, err)
			}
			err = exec(tx, rosterUpsert,
				mid, *tid, *pid, p.Name, nz(p.FullName), nz(p.NickName), nz(p.Role),
				nz(p.BattingStyle), nz(p.BowlingStyle),
				p.Captain, p.Keeper, p.Substitute, cricapi.AsInt(p.FaceImageID))
			if err != nil {
				return fmt.Errorf("upsert roster row for match %d player %d: %w", mid, *pid, err)
			}
		}
	}
	return nil
}
