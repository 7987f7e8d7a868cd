package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sightscreen/cricdata/internal/cache"
	"github.com/sightscreen/cricdata/internal/ratelimit"
	"github.com/sightscreen/cricdata/internal/warnlog"
)

type testClient struct {
	*Client
	sleeps   *[]time.Duration
	warnPath string
}

func newTestClient(t *testing.T, baseURL string) testClient {
	t.Helper()

	store, err := cache.NewStore(t.TempDir())
	require.NoError(t, err)

	warnPath := filepath.Join(t.TempDir(), "warnings.log")
	warnings, err := warnlog.Open(warnPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = warnings.Close() })

	sleeps := &[]time.Duration{}
	return testClient{
		Client: &Client{
			baseURL:  baseURL,
			apiKey:   "secret-api-key-12345",
			apiHost:  "example.test",
			cache:    store,
			http:     &http.Client{Timeout: time.Second},
			limiter:  ratelimit.New("test", 1000),
			warnings: warnings,
			retries:  3,
			sleep:    func(d time.Duration) { *sleeps = append(*sleeps, d) },
		},
		sleeps:   sleeps,
		warnPath: warnPath,
	}
}

func TestFetchCachesAndSkipsNetwork(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "secret-api-key-12345", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "example.test", r.Header.Get("X-RapidAPI-Host"))
		_, _ = w.Write([]byte(`{"typeMatches":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	key := cache.LiveMatches()

	first, fromCache := c.Fetch(context.Background(), "matches/v1/live", key)
	require.NotEmpty(t, first)
	assert.False(t, fromCache)
	assert.Equal(t, 1, requests)
	assert.True(t, c.cache.Has(key))

	second, fromCache := c.Fetch(context.Background(), "matches/v1/live", key)
	assert.True(t, fromCache)
	assert.Equal(t, 1, requests, "cached call must not hit the network")
	assert.JSONEq(t, string(first), string(second))

	third, _ := c.Fetch(context.Background(), "matches/v1/live", key)
	assert.Equal(t, string(second), string(third), "repeat cache reads are byte-identical")
}

func TestFetchRetryBoundAndBackoff(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	data, fromCache := c.Fetch(context.Background(), "mcenter/v1/41881", cache.MatchInfo(41881))

	assert.Empty(t, data, "exhausted retries degrade to empty result")
	assert.False(t, fromCache)
	assert.Equal(t, 3, requests)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, *c.sleeps)
	assert.False(t, c.cache.Has(cache.MatchInfo(41881)), "failed fetch writes no cache file")

	warnings, err := os.ReadFile(c.warnPath)
	require.NoError(t, err)
	assert.Contains(t, string(warnings), "attempt 1 failed for mcenter/v1/41881")
	assert.Contains(t, string(warnings), "failed after 3 attempts: mcenter/v1/41881")
}

func TestFetchQuotaShortCircuit(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	data, _ := c.Fetch(context.Background(), "teams/v1/international", cache.TeamsList())

	assert.Empty(t, data)
	assert.Equal(t, 1, requests, "quota errors are never retried")
	assert.Empty(t, *c.sleeps)

	warnings, err := os.ReadFile(c.warnPath)
	require.NoError(t, err)
	assert.Contains(t, string(warnings), "quota exceeded for teams/v1/international")
	assert.Contains(t, string(warnings), "12345", "warning names the truncated key suffix")
	assert.NotContains(t, string(warnings), "secret-api-key-12345")
}

func TestFetchRetriesMalformedBody(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			_, _ = w.Write([]byte(`<html>gateway error</html>`))
			return
		}
		_, _ = w.Write([]byte(`{"list":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	data, fromCache := c.Fetch(context.Background(), "teams/v1/international", cache.TeamsList())

	assert.False(t, fromCache)
	assert.JSONEq(t, `{"list":[]}`, string(data))
	assert.Equal(t, 3, requests)
	assert.True(t, c.cache.Has(cache.TeamsList()))
}

func TestKeySuffix(t *testing.T) {
	assert.Equal(t, "cdef0", keySuffix("abcdef0"))
	assert.Equal(t, "tiny", keySuffix("tiny"))
}
