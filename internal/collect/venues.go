package collect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sightscreen/cricdata/internal/cache"
	"github.com/sightscreen/cricdata/internal/cricapi"
)

// Venues fetches info and match history for every harvested venue ID.
// There is no venue listing endpoint; the ID set comes from the match and
// series families.
func (c *Collector) Venues(ctx context.Context, venueIDs map[int]bool) Report {
	var rep Report

	for _, vid := range sortedIDs(venueIDs) {
		c.fetch(ctx, fmt.Sprintf("venues/v1/%d", vid), cache.VenueInfo(vid), &rep)
		c.fetch(ctx, fmt.Sprintf("venues/v1/%d/matches", vid), cache.VenueMatches(vid), &rep)
	}

	slog.Info("Venue collection done", "venues", len(venueIDs), "report", rep.String())
	return rep
}

// CachedVenueIDs harvests venue IDs from cached match-center and series
// match files, so a venue run does not need a listing run in the same
// invocation.
func (c *Collector) CachedVenueIDs() map[int]bool {
	venueIDs := map[int]bool{}
	matchIDs := map[int]bool{}

	if keys, err := c.cache.List("match", "info"); err == nil {
		for _, key := range keys {
			data, err := c.cache.Read(key)
			if err != nil {
				continue
			}
			center, err := cricapi.DecodeMatchCenter(data)
			if err != nil {
				continue
			}
			harvestMatchInfo(center.MatchInfo, matchIDs, venueIDs)
		}
	}

	if keys, err := c.cache.List("series", "matches"); err == nil {
		for _, key := range keys {
			data, err := c.cache.Read(key)
			if err != nil {
				continue
			}
			detail, err := cricapi.DecodeSeriesDetail(data)
			if err != nil {
				continue
			}
			for _, md := range detail.MatchDetails {
				if md.MatchDetailsMap == nil {
					continue
				}
				for _, m := range md.MatchDetailsMap.Match {
					harvestMatchInfo(m.Info, matchIDs, venueIDs)
				}
			}
		}
	}

	return venueIDs
}

// Rankings fetches the fixed set of global rankings and standings
// listings. These are cached for display use; nothing loads them into the
// relational schema.
func (c *Collector) Rankings(ctx context.Context) Report {
	var rep Report

	endpoints := []struct {
		endpoint string
		key      cache.Key
	}{
		{"stats/v1/rankings/batsmen?formatType=test", cache.StatsListing("rankings_batsmen_test")},
		{"stats/v1/iccstanding/team/matchtype/1", cache.StatsListing("icc_standings")},
		{"stats/v1/topstats", cache.StatsListing("topstats_filters")},
		{"stats/v1/topstats/0?statsType=mostRuns", cache.StatsListing("topstats_most_runs")},
	}
	for _, e := range endpoints {
		c.fetch(ctx, e.endpoint, e.key, &rep)
	}

	slog.Info("Rankings collection done", "report", rep.String())
	return rep
}
