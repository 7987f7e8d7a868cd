package collect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sightscreen/cricdata/internal/cache"
	"github.com/sightscreen/cricdata/internal/cricapi"
)

// Series fetches the current and archived series listings, then every
// series' match schedule. Venue IDs seen in the schedules are returned
// for the venue family.
func (c *Collector) Series(ctx context.Context) ([]int, map[int]bool, Report) {
	var rep Report
	venueIDs := map[int]bool{}

	seen := map[int]bool{}
	for _, l := range []struct {
		endpoint string
		key      cache.Key
	}{
		{"series/v1/international", cache.SeriesList()},
		{"series/v1/archives/international", cache.SeriesArchives()},
	} {
		data := c.fetch(ctx, l.endpoint, l.key, &rep)
		if len(data) == 0 {
			continue
		}
		listing, err := cricapi.DecodeSeriesListing(data)
		if err != nil {
			slog.Warn("Skipping unparsable series listing", "file", l.key.Filename(), "error", err)
			continue
		}
		for _, group := range listing.SeriesMapProto {
			for _, s := range group.Series {
				if sid := cricapi.AsInt(s.ID); sid != nil {
					seen[int(*sid)] = true
				}
			}
		}
	}

	seriesIDs := sortedIDs(seen)
	for _, sid := range seriesIDs {
		data := c.fetch(ctx, fmt.Sprintf("series/v1/%d", sid), cache.SeriesMatches(sid), &rep)
		if len(data) == 0 {
			continue
		}
		detail, err := cricapi.DecodeSeriesDetail(data)
		if err != nil {
			slog.Warn("Skipping unparsable series detail", "series", sid, "error", err)
			continue
		}
		for _, md := range detail.MatchDetails {
			if md.MatchDetailsMap == nil {
				continue
			}
			for _, m := range md.MatchDetailsMap.Match {
				harvestMatchInfo(m.Info, map[int]bool{}, venueIDs)
			}
		}
	}

	slog.Info("Series collection done", "series", len(seriesIDs), "report", rep.String())
	return seriesIDs, venueIDs, rep
}
