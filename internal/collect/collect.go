// Package collect enumerates which entities need fetching and drives the
// fetch client per entity family. Secondary IDs (venues, players) are
// harvested from already-cached sibling payloads rather than fetched from
// dedicated listing endpoints.
package collect

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/sightscreen/cricdata/internal/cache"
	"github.com/sightscreen/cricdata/internal/config"
)

// Fetcher is the fetch-client surface the orchestrator needs.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, key cache.Key) (json.RawMessage, bool)
}

// Collector drives per-family fetch runs.
type Collector struct {
	fetcher Fetcher
	cache   *cache.Store
	cfg     *config.Config
}

// New creates a Collector.
func New(cfg *config.Config, store *cache.Store, fetcher Fetcher) *Collector {
	return &Collector{fetcher: fetcher, cache: store, cfg: cfg}
}

// Report counts one family's fetch run. Skipped covers cache hits; Failed
// covers fetches that degraded to an empty result.
type Report struct {
	Fetched int
	Skipped int
	Failed  int
}

func (r Report) String() string {
	return fmt.Sprintf("fetched=%d skipped=%d failed=%d", r.Fetched, r.Skipped, r.Failed)
}

// Add merges another report into this one.
func (r *Report) Add(other Report) {
	r.Fetched += other.Fetched
	r.Skipped += other.Skipped
	r.Failed += other.Failed
}

// fetch runs one fetch and tallies it.
func (c *Collector) fetch(ctx context.Context, endpoint string, key cache.Key, rep *Report) json.RawMessage {
	data, fromCache := c.fetcher.Fetch(ctx, endpoint, key)
	switch {
	case fromCache:
		rep.Skipped++
	case len(data) > 0:
		rep.Fetched++
	default:
		rep.Failed++
	}
	return data
}

// sortedIDs returns a set's members in ascending order so fetch order is
// stable across runs.
func sortedIDs(set map[int]bool) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
