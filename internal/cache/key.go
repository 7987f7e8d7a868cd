package cache

import (
	"strconv"
	"strings"
)

// Key identifies one cached API response. Kind is the entity family
// ("match", "player", ...), ID the external entity id (empty for singleton
// listings) and Sub the endpoint flavour ("info", "scorecard", ...).
type Key struct {
	Kind string
	ID   string
	Sub  string
}

// Filename is the single serializer from Key to on-disk name. Nothing else
// in the codebase builds or splits cache filenames.
func (k Key) Filename() string {
	if k.ID == "" {
		return k.Kind + "_" + k.Sub + ".json"
	}
	return k.Kind + "_" + k.ID + "_" + k.Sub + ".json"
}

// ParseFilename is the single parser from on-disk name back to Key.
// A middle segment of digits is an entity ID; everything after it is the
// sub, so multi-underscore subs like "rankings_batsmen_test" survive.
func ParseFilename(name string) (Key, bool) {
	base, found := strings.CutSuffix(name, ".json")
	if !found {
		return Key{}, false
	}
	kind, rest, found := strings.Cut(base, "_")
	if !found || kind == "" || rest == "" {
		return Key{}, false
	}
	if id, sub, ok := strings.Cut(rest, "_"); ok && isDigits(id) && sub != "" {
		return Key{Kind: kind, ID: id, Sub: sub}, true
	}
	return Key{Kind: kind, Sub: rest}, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Named constructors for every key shape the pipeline uses.

func LiveMatches() Key     { return Key{Kind: "matches", Sub: "live"} }
func UpcomingMatches() Key { return Key{Kind: "matches", Sub: "upcoming"} }
func RecentMatches() Key   { return Key{Kind: "matches", Sub: "recent"} }

func MatchInfo(id int) Key      { return Key{Kind: "match", ID: itoa(id), Sub: "info"} }
func MatchScorecard(id int) Key { return Key{Kind: "match", ID: itoa(id), Sub: "scorecard"} }

func SeriesList() Key           { return Key{Kind: "series", Sub: "list"} }
func SeriesArchives() Key       { return Key{Kind: "series", Sub: "archives"} }
func SeriesMatches(id int) Key  { return Key{Kind: "series", ID: itoa(id), Sub: "matches"} }

func TeamsList() Key           { return Key{Kind: "teams", Sub: "list"} }
func TeamSchedule(id int) Key  { return Key{Kind: "team", ID: itoa(id), Sub: "schedule"} }
func TeamResults(id int) Key   { return Key{Kind: "team", ID: itoa(id), Sub: "results"} }
func TeamPlayers(id int) Key   { return Key{Kind: "team", ID: itoa(id), Sub: "players"} }

func PlayerInfo(id int) Key    { return Key{Kind: "player", ID: itoa(id), Sub: "info"} }
func PlayerCareer(id int) Key  { return Key{Kind: "player", ID: itoa(id), Sub: "career"} }
func PlayerBatting(id int) Key { return Key{Kind: "player", ID: itoa(id), Sub: "batting"} }
func PlayerBowling(id int) Key { return Key{Kind: "player", ID: itoa(id), Sub: "bowling"} }

func VenueInfo(id int) Key    { return Key{Kind: "venue", ID: itoa(id), Sub: "info"} }
func VenueMatches(id int) Key { return Key{Kind: "venue", ID: itoa(id), Sub: "matches"} }

func StatsListing(sub string) Key { return Key{Kind: "stats", Sub: sub} }

func itoa(id int) string { return strconv.Itoa(id) }
