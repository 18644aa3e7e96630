// Package countries fetches read-only country reference data from the public
// countries service for the explore view. Data is never persisted — at most it
// is held in an optional cache for a configurable TTL.
package countries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nkusuma/travelcatalog/internal/domain"
)

// DefaultURL is the public countries endpoint queried when no override is
// configured.
const DefaultURL = "https://restcountries.com/v2/all"

// ErrUnavailable is returned when the countries service cannot be reached or
// answers with a non-success status after retries are exhausted.
var ErrUnavailable = errors.New("countries service unavailable")

// Client fetches the country collection over HTTP.
// Transient failures (network errors, 5xx responses) are retried with
// exponential backoff; anything else fails immediately.
type Client struct {
	http  *http.Client
	url   string
	cache Cache
}

// NewClient constructs a Client for the given endpoint URL.
// Pass NullCache{} to disable caching.
func NewClient(url string, cache Cache) *Client {
	return &Client{
		http:  &http.Client{Timeout: 10 * time.Second},
		url:   url,
		cache: cache,
	}
}

// Fetch returns all countries sorted by name using locale-aware collation.
// A cached copy is served when present; cache failures only degrade to a
// fresh fetch, never to an error.
func (c *Client) Fetch(ctx context.Context) ([]domain.Country, error) {
	if cached, err := c.cache.Get(ctx); err != nil {
		slog.WarnContext(ctx, "countries cache read failed", "error", err)
	} else if cached != nil {
		return cached, nil
	}

	var list []domain.Country
	backoff := retry.WithMaxRetries(2, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		fetched, err := c.fetch(ctx)
		if err != nil {
			return err
		}
		list = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByName(list)

	if err := c.cache.Set(ctx, list); err != nil {
		slog.WarnContext(ctx, "countries cache write failed", "error", err)
	}
	return list, nil
}

// FetchOrSample returns the live collection, or the embedded sample set when
// the service is unavailable. The second return value reports whether sample
// data is in use so callers can show a notice.
func (c *Client) FetchOrSample(ctx context.Context) ([]domain.Country, bool) {
	list, err := c.Fetch(ctx)
	if err != nil {
		slog.WarnContext(ctx, "countries fetch failed, using sample data", "error", err)
		return Sample(), true
	}
	return list, false
}

func (c *Client) fetch(ctx context.Context) ([]domain.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("countries.Client.fetch: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, retry.RetryableError(fmt.Errorf("%w: %v", ErrUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
		if resp.StatusCode >= 500 {
			return nil, retry.RetryableError(err)
		}
		return nil, err
	}

	var list []domain.Country
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("countries.Client.fetch: decode: %w", err)
	}
	return list, nil
}

// sortByName orders countries ascending by name the way a user would expect,
// honoring accented characters rather than raw byte order.
func sortByName(list []domain.Country) {
	coll := collate.New(language.English)
	sort.SliceStable(list, func(i, j int) bool {
		return coll.CompareString(list[i].Name, list[j].Name) < 0
	})
}
