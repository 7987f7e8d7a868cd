package collect

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sightscreen/cricdata/internal/cache"
	"github.com/sightscreen/cricdata/internal/config"
)

// stubFetcher mimics the fetch client: cache hit wins, otherwise serve a
// canned response and cache it, otherwise degrade to empty.
type stubFetcher struct {
	store     *cache.Store
	responses map[string]string
	calls     []string
}

func (f *stubFetcher) Fetch(_ context.Context, endpoint string, key cache.Key) (json.RawMessage, bool) {
	if f.store.Has(key) {
		data, _ := f.store.Read(key)
		return data, true
	}
	f.calls = append(f.calls, endpoint)
	body, ok := f.responses[endpoint]
	if !ok {
		return nil, false
	}
	_ = f.store.Write(key, []byte(body))
	return []byte(body), false
}

func newTestCollector(t *testing.T, responses map[string]string) (*Collector, *stubFetcher, *cache.Store) {
	t.Helper()
	store, err := cache.NewStore(t.TempDir())
	require.NoError(t, err)

	fetcher := &stubFetcher{store: store, responses: responses}
	cfg := &config.Config{AllowedCountries: []string{"India", "Australia"}}
	return New(cfg, store, fetcher), fetcher, store
}

const liveListing = `{
	"typeMatches": [{
		"matchType": "International",
		"seriesMatches": [{
			"seriesAdWrapper": {
				"seriesId": 9237,
				"matches": [
					{"matchInfo": {"matchId": 41881, "venueInfo": {"id": 31}}},
					{"matchInfo": {"matchId": 41882, "venueInfo": {"id": 80}}}
				]
			}
		}]
	}]
}`

func TestMatchesHarvestsAndFetchesDetails(t *testing.T) {
	c, fetcher, _ := newTestCollector(t, map[string]string{
		"matches/v1/live":     liveListing,
		"matches/v1/upcoming": `{"typeMatches": []}`,
		"mcenter/v1/41881":    `{"matchInfo": {"matchId": 41881}}`,
		"mcenter/v1/41882":    `{"matchInfo": {"matchId": 41882}}`,
	})

	ids, venues, rep := c.Matches(context.Background())

	assert.Equal(t, []int{41881, 41882}, ids)
	assert.Equal(t, map[int]bool{31: true, 80: true}, venues)
	// live + upcoming + 2 details fetched; recent listing failed.
	assert.Equal(t, 4, rep.Fetched)
	assert.Equal(t, 1, rep.Failed)
	assert.Contains(t, fetcher.calls, "matches/v1/recent")
}

func TestMatchesSecondRunHitsOnlyCache(t *testing.T) {
	responses := map[string]string{
		"matches/v1/live":     liveListing,
		"matches/v1/upcoming": `{"typeMatches": []}`,
		"matches/v1/recent":   `{"typeMatches": []}`,
		"mcenter/v1/41881":    `{"matchInfo": {"matchId": 41881}}`,
		"mcenter/v1/41882":    `{"matchInfo": {"matchId": 41882}}`,
	}
	c, fetcher, _ := newTestCollector(t, responses)

	_, _, first := c.Matches(context.Background())
	require.Equal(t, 5, first.Fetched)

	fetcher.calls = nil
	_, _, second := c.Matches(context.Background())
	assert.Empty(t, fetcher.calls, "everything cached, no network calls")
	assert.Equal(t, Report{Skipped: 5}, second)
}

func TestSeriesHarvestsVenues(t *testing.T) {
	c, _, _ := newTestCollector(t, map[string]string{
		"series/v1/international": `{
			"seriesMapProto": [{"series": [{"id": 9237}, {"id": "9240"}]}]
		}`,
		"series/v1/archives/international": `{"seriesMapProto": []}`,
		"series/v1/9237": `{
			"matchDetails": [{"matchDetailsMap": {"match": [
				{"matchInfo": {"matchId": 1, "venueInfo": {"id": 485}}}
			]}}]
		}`,
		"series/v1/9240": `{"matchDetails": []}`,
	})

	ids, venues, rep := c.Series(context.Background())

	assert.Equal(t, []int{9237, 9240}, ids)
	assert.Equal(t, map[int]bool{485: true}, venues)
	assert.Equal(t, 4, rep.Fetched)
}

func TestTeamPlayersAppliesCountryAllowList(t *testing.T) {
	c, fetcher, _ := newTestCollector(t, map[string]string{
		"teams/v1/international": `{"list": [
			{"teamName": "Test Teams"},
			{"teamId": 2, "teamName": "India", "countryName": "India"},
			{"teamId": 30, "teamName": "Nepal", "countryName": "Nepal"}
		]}`,
		"teams/v1/2/players": `{"player": [
			{"name": "BATSMEN"},
			{"id": "1413", "name": "Virat Kohli"}
		]}`,
		"stats/v1/player/1413":         `{"id": "1413"}`,
		"stats/v1/player/1413/career":  `{"values": []}`,
		"stats/v1/player/1413/batting": `{"headers": [], "values": []}`,
		"stats/v1/player/1413/bowling": `{"headers": [], "values": []}`,
	})

	c.TeamPlayers(context.Background())

	assert.Contains(t, fetcher.calls, "teams/v1/2/players")
	assert.NotContains(t, fetcher.calls, "teams/v1/30/players", "Nepal is not allow-listed")
	assert.Contains(t, fetcher.calls, "stats/v1/player/1413/bowling")
}

func TestPlayerStatsSkipsAlreadyCachedPlayers(t *testing.T) {
	c, fetcher, store := newTestCollector(t, map[string]string{
		"stats/v1/player/9":         `{"id": "9"}`,
		"stats/v1/player/9/career":  `{"values": []}`,
		"stats/v1/player/9/batting": `{"headers": [], "values": []}`,
		"stats/v1/player/9/bowling": `{"headers": [], "values": []}`,
	})

	matchCenter := `{"matchInfo": {
		"matchId": 5,
		"team1": {"id": 2, "playerDetails": [{"id": 8}, {"id": 9}]},
		"team2": {"id": 4, "playerDetails": []}
	}}`
	require.NoError(t, store.Write(cache.MatchInfo(5), []byte(matchCenter)))
	// Player 8 already has batting stats on disk.
	require.NoError(t, store.Write(cache.PlayerBatting(8), []byte(`{}`)))

	rep := c.PlayerStats(context.Background())

	assert.Equal(t, 1, rep.Skipped, "player 8 skipped before any client call")
	assert.NotContains(t, fetcher.calls, "stats/v1/player/8")
	assert.Contains(t, fetcher.calls, "stats/v1/player/9/batting")
}

func TestScorecardsPreChecksCache(t *testing.T) {
	c, fetcher, store := newTestCollector(t, map[string]string{
		"mcenter/v1/7/scard": `{"scorecard": []}`,
	})

	require.NoError(t, store.Write(cache.MatchInfo(5), []byte(`{"matchInfo":{"matchId":5}}`)))
	require.NoError(t, store.Write(cache.MatchScorecard(5), []byte(`{"scorecard":[]}`)))
	require.NoError(t, store.Write(cache.MatchInfo(7), []byte(`{"matchInfo":{"matchId":7}}`)))

	rep := c.Scorecards(context.Background())

	assert.Equal(t, Report{Fetched: 1, Skipped: 1}, rep)
	assert.Equal(t, []string{"mcenter/v1/7/scard"}, fetcher.calls)
}
