// Package fetch wraps one API endpoint call with cache-check, retry with
// exponential backoff, quota handling and warning logging.
package fetch

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sightscreen/cricdata/internal/cache"
	"github.com/sightscreen/cricdata/internal/config"
	"github.com/sightscreen/cricdata/internal/errors"
	"github.com/sightscreen/cricdata/internal/ratelimit"
	"github.com/sightscreen/cricdata/internal/warnlog"
)

const (
	defaultRetries = 3
	requestTimeout = 10 * time.Second
	// Requests per second against the API. Cache hits bypass the limiter.
	apiRate = 2.0
)

// Client fetches API responses through the cache store. A response, once
// cached, is authoritative: its presence alone skips the network call.
type Client struct {
	baseURL  string
	apiKey   string
	apiHost  string
	cache    *cache.Store
	http     *http.Client
	limiter  *ratelimit.Limiter
	warnings *warnlog.Log
	retries  int
	sleep    func(time.Duration)
}

// New creates a fetch client for the configured API host.
func New(cfg *config.Config, store *cache.Store, warnings *warnlog.Log) *Client {
	return &Client{
		baseURL:  "https://" + cfg.APIHost,
		apiKey:   cfg.APIKey,
		apiHost:  cfg.APIHost,
		cache:    store,
		http:     &http.Client{Timeout: requestTimeout},
		limiter:  ratelimit.New("cricket-api", apiRate),
		warnings: warnings,
		retries:  defaultRetries,
		sleep:    time.Sleep,
	}
}

// Fetch returns the payload for endpoint, from cache when present (second
// return true) or from the network. Failures degrade to a nil payload
// after logging, never an error, so a bulk run skips the entity and keeps
// going. Successful network responses are cached before returning.
func (c *Client) Fetch(ctx context.Context, endpoint string, key cache.Key) (json.RawMessage, bool) {
	if c.cache.Has(key) {
		data, err := c.cache.Read(key)
		if err == nil {
			return data, true
		}
		// Unreadable entry: fall through and refetch.
		slog.Warn("Unreadable cache entry, refetching", "key", key.Filename(), "error", err)
	}

	for attempt := 1; attempt <= c.retries; attempt++ {
		data, err := c.get(ctx, endpoint)
		if err == nil {
			if werr := c.cache.Write(key, data); werr != nil {
				c.warnings.Warnf("failed to cache %s: %v", key.Filename(), werr)
			} else {
				slog.Info("Cached", "file", key.Filename())
			}
			return data, false
		}

		if errors.IsQuotaError(err) {
			// Quota exhaustion is not transient within this run.
			c.warnings.Warnf("quota exceeded for %s (API key ending %s)", endpoint, keySuffix(c.apiKey))
			return nil, false
		}

		c.warnings.Warnf("attempt %d failed for %s: %v", attempt, endpoint, err)
		if attempt < c.retries {
			wait := backoff(attempt)
			slog.Info("Retrying", "endpoint", endpoint, "wait", wait)
			c.sleep(wait)
		}
	}

	c.warnings.Warnf("failed after %d attempts: %s", c.retries, endpoint)
	return nil, false
}

// backoff is 2^attempt seconds: 2s, 4s, 8s.
func backoff(attempt int) time.Duration {
	return time.Duration(1<<attempt) * time.Second
}

func (c *Client) get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errors.NewQuotaError(endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s returned status %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if !json.Valid(body) {
		return nil, stderrors.New("response body is not valid JSON")
	}
	return body, nil
}

// keySuffix returns the last few characters of the API key for warning
// messages, never the whole key.
func keySuffix(key string) string {
	if len(key) <= 5 {
		return key
	}
	return key[len(key)-5:]
}
