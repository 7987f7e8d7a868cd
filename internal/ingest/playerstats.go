package ingest

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sightscreen/cricdata/internal/cricapi"
)

type statKind int

const (
	statInt statKind = iota
	statReal
	statText
)

// statMetric maps one row label of the career stats table to a column.
type statMetric struct {
	label  string
	column string
	kind   statKind
}

var battingMetrics = []statMetric{
	{"Matches", "matches", statInt},
	{"Innings", "innings", statInt},
	{"Runs", "runs", statInt},
	{"Balls", "balls", statInt},
	{"Highest", "highest", statText},
	{"Average", "average", statReal},
	{"SR", "strike_rate", statReal},
	{"Not Out", "not_outs", statInt},
	{"Fours", "fours", statInt},
	{"Sixes", "sixes", statInt},
	{"Ducks", "ducks", statInt},
	{"50s", "fifties", statInt},
	{"100s", "hundreds", statInt},
	{"200s", "double_hundreds", statInt},
	{"300s", "triple_hundreds", statInt},
	{"400s", "quadruple_hundreds", statInt},
}

var bowlingMetrics = []statMetric{
	{"Matches", "matches", statInt},
	{"Innings", "innings", statInt},
	{"Balls", "balls", statInt},
	{"Runs", "runs", statInt},
	{"Maidens", "maidens", statInt},
	{"Wickets", "wickets", statInt},
	{"Avg", "average", statReal},
	{"Eco", "economy", statReal},
	{"SR", "strike_rate", statReal},
	{"BBI", "best_bowling_innings", statText},
	{"BBM", "best_bowling_match", statText},
	{"4w", "four_wickets", statInt},
	{"5w", "five_wickets", statInt},
	{"10w", "ten_wickets", statInt},
}

// BattingStats loads cached career batting tables into player_stats.
func (l *Loader) BattingStats() (Result, error) {
	return l.playerStats("batting", "player_stats", battingMetrics)
}

// BowlingStats loads cached career bowling tables into player_bowling_stats.
func (l *Loader) BowlingStats() (Result, error) {
	return l.playerStats("bowling", "player_bowling_stats", bowlingMetrics)
}

func (l *Loader) playerStats(sub, table string, metrics []statMetric) (Result, error) {
	res := Result{Family: table}

	keys, err := l.cache.List("player", sub)
	if err != nil {
		return res, fmt.Errorf("list cached %s stats: %w", sub, err)
	}
	upsert := statsUpsert(table, metrics)

	tx, err := l.db.Beginx()
	if err != nil {
		return res, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, key := range keys {
		pid, err := strconv.ParseInt(key.ID, 10, 64)
		if err != nil {
			res.skip(key.ID, "no player id in filename")
			continue
		}
		data, err := l.cache.Read(key)
		if err != nil {
			res.skip(key.ID, "unreadable file")
			continue
		}
		matrix, err := cricapi.DecodeStatsMatrix(data)
		if err != nil {
			res.skip(key.ID, "unparsable payload")
			continue
		}
		if len(matrix.Headers) < 2 {
			res.skip(key.ID, "no formats in table")
			continue
		}

		byLabel := map[string][]string{}
		for _, row := range matrix.Values {
			if len(row.Values) > 0 {
				byLabel[row.Values[0]] = row.Values[1:]
			}
		}

		for i, format := range matrix.Headers[1:] {
			args := []any{pid, format}
			for _, m := range metrics {
				args = append(args, coerceStat(byLabel[m.label], i, m.kind))
			}
			if err := exec(tx, upsert, args...); err != nil {
				return res, fmt.Errorf("upsert %s for player %d format %s: %w", table, pid, format, err)
			}
		}
		res.Succeeded++
	}

	if err := tx.Commit(); err != nil {
		return res, err
	}
	slog.Info("Player stats loaded", "summary", res.Summary())
	return res, nil
}

// statsUpsert builds the per-table upsert keyed on (player_id, format).
func statsUpsert(table string, metrics []statMetric) string {
	cols := []string{"player_id", "format"}
	var sets []string
	for _, m := range metrics {
		cols = append(cols, m.column)
		sets = append(sets, m.column+" = excluded."+m.column)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (player_id, format) DO UPDATE SET %s",
		table, strings.Join(cols, ", "), placeholders, strings.Join(sets, ", "))
}

// coerceStat pulls one format's cell from a metric row. A missing row,
// short row, or junk cell becomes NULL; the stats row is still written.
func coerceStat(vals []string, i int, kind statKind) any {
	if i >= len(vals) {
		return nil
	}
	raw := vals[i]
	switch kind {
	case statInt:
		return cricapi.AsInt(raw)
	case statReal:
		return cricapi.AsFloat(raw)
	default:
		if raw == "" || raw == "-" {
			return nil
		}
		return raw
	}
}
