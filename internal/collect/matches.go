package collect

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/sightscreen/cricdata/internal/cache"
	"github.com/sightscreen/cricdata/internal/cricapi"
)

var listingEndpoints = []struct {
	endpoint string
	key      cache.Key
}{
	{"matches/v1/live", cache.LiveMatches()},
	{"matches/v1/upcoming", cache.UpcomingMatches()},
	{"matches/v1/recent", cache.RecentMatches()},
}

// Matches fetches the live/upcoming/recent listings, then the match-center
// detail for every match found in them. Venue IDs seen along the way are
// returned for the venue family.
func (c *Collector) Matches(ctx context.Context) ([]int, map[int]bool, Report) {
	var rep Report
	matchIDs := map[int]bool{}
	venueIDs := map[int]bool{}

	for _, l := range listingEndpoints {
		data := c.fetch(ctx, l.endpoint, l.key, &rep)
		if len(data) == 0 {
			continue
		}
		listing, err := cricapi.DecodeMatchListing(data)
		if err != nil {
			slog.Warn("Skipping unparsable match listing", "file", l.key.Filename(), "error", err)
			continue
		}
		harvestListing(listing, matchIDs, venueIDs)
	}

	ids := sortedIDs(matchIDs)
	for _, mid := range ids {
		c.fetch(ctx, fmt.Sprintf("mcenter/v1/%d", mid), cache.MatchInfo(mid), &rep)
	}

	slog.Info("Match collection done", "matches", len(ids), "report", rep.String())
	return ids, venueIDs, rep
}

func harvestListing(listing *cricapi.MatchListing, matchIDs, venueIDs map[int]bool) {
	for _, tm := range listing.TypeMatches {
		for _, sm := range tm.SeriesMatches {
			if sm.SeriesAdWrapper == nil {
				continue
			}
			for _, m := range sm.SeriesAdWrapper.Matches {
				harvestMatchInfo(m.Info, matchIDs, venueIDs)
			}
		}
	}
}

func harvestMatchInfo(info *cricapi.MatchInfo, matchIDs, venueIDs map[int]bool) {
	if info == nil {
		return
	}
	if mid := cricapi.AsInt(info.MatchID); mid != nil {
		matchIDs[int(*mid)] = true
	}
	if info.VenueInfo != nil {
		if vid := cricapi.AsInt(info.VenueInfo.ID); vid != nil {
			venueIDs[int(*vid)] = true
		}
	}
}

// Scorecards fetches one scorecard per cached match info file, skipping
// matches whose scorecard is already on disk before touching the client.
func (c *Collector) Scorecards(ctx context.Context) Report {
	var rep Report

	keys, err := c.cache.List("match", "info")
	if err != nil {
		slog.Error("Cannot enumerate cached matches", "error", err)
		return rep
	}
	slog.Info("Fetching scorecards for cached matches", "count", len(keys))

	for _, key := range keys {
		mid, err := strconv.Atoi(key.ID)
		if err != nil {
			continue
		}
		if c.cache.Has(cache.MatchScorecard(mid)) {
			rep.Skipped++
			continue
		}
		c.Scorecard(ctx, mid, &rep)
	}

	slog.Info("Scorecard collection done", "report", rep.String())
	return rep
}

// Scorecard fetches a single match's scorecard.
func (c *Collector) Scorecard(ctx context.Context, matchID int, rep *Report) {
	c.fetch(ctx, fmt.Sprintf("mcenter/v1/%d/scard", matchID), cache.MatchScorecard(matchID), rep)
}

// PlayerStats fetches profile, career and batting/bowling stats for every
// player appearing in a cached match roster. Players whose batting file is
// already cached are skipped without any client calls.
func (c *Collector) PlayerStats(ctx context.Context) Report {
	var rep Report

	playerIDs := c.rosterPlayerIDs()
	slog.Info("Found players across cached match rosters", "count", len(playerIDs))

	for _, pid := range sortedIDs(playerIDs) {
		if c.cache.Has(cache.PlayerBatting(pid)) {
			rep.Skipped++
			continue
		}
		c.fetchPlayer(ctx, pid, &rep)
	}

	slog.Info("Player stats collection done", "report", rep.String())
	return rep
}

// rosterPlayerIDs harvests player IDs from every cached match-center file.
func (c *Collector) rosterPlayerIDs() map[int]bool {
	playerIDs := map[int]bool{}

	keys, err := c.cache.List("match", "info")
	if err != nil {
		slog.Error("Cannot enumerate cached matches", "error", err)
		return playerIDs
	}

	for _, key := range keys {
		data, err := c.cache.Read(key)
		if err != nil {
			continue
		}
		center, err := cricapi.DecodeMatchCenter(data)
		if err != nil || center.MatchInfo == nil {
			continue
		}
		for _, team := range []*cricapi.TeamInfo{center.MatchInfo.Team1, center.MatchInfo.Team2} {
			if team == nil {
				continue
			}
			for _, p := range team.PlayerDetails {
				if pid := cricapi.AsInt(p.ID); pid != nil {
					playerIDs[int(*pid)] = true
				}
			}
		}
	}
	return playerIDs
}

func (c *Collector) fetchPlayer(ctx context.Context, pid int, rep *Report) {
	c.fetch(ctx, fmt.Sprintf("stats/v1/player/%d", pid), cache.PlayerInfo(pid), rep)
	c.fetch(ctx, fmt.Sprintf("stats/v1/player/%d/career", pid), cache.PlayerCareer(pid), rep)
	c.fetch(ctx, fmt.Sprintf("stats/v1/player/%d/batting", pid), cache.PlayerBatting(pid), rep)
	c.fetch(ctx, fmt.Sprintf("stats/v1/player/%d/bowling", pid), cache.PlayerBowling(pid), rep)
}
