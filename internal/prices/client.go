package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/logger"
	"github.com/osse101/HerbRun_Go/internal/metrics"
)

// Client reads the OSRS Wiki real-time prices API. Responses are cached for
// the configured TTL and concurrent misses share one request.
type Client struct {
	baseURL    string
	userAgent  string
	ttl        time.Duration
	httpClient *http.Client

	latest  *expirable.LRU[string, map[int]ItemPrice]
	mapping *expirable.LRU[string, []Item]
	group   singleflight.Group
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the API base URL
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTTL sets how long responses are cached
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

// WithUserAgent sets the User-Agent sent with every request. The wiki asks
// for a descriptive one.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a new price client
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		ttl:        DefaultTTL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.latest = expirable.NewLRU[string, map[int]ItemPrice](1, nil, c.ttl)
	c.mapping = expirable.NewLRU[string, []Item](1, nil, c.ttl)
	return c
}

// Latest returns the latest prices of every traded item, keyed by item ID.
func (c *Client) Latest(ctx context.Context) (map[int]ItemPrice, error) {
	if data, ok := c.latest.Get(cacheKeyLatest); ok {
		metrics.PriceCacheHits.Inc()
		return data, nil
	}
	metrics.PriceCacheMisses.Inc()

	v, err := c.shared(ctx, cacheKeyLatest, func(ctx context.Context) (any, error) {
		var resp latestResponse
		if err := c.get(ctx, EndpointLatest, &resp); err != nil {
			return nil, err
		}
		c.latest.Add(cacheKeyLatest, resp.Data)
		return resp.Data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[int]ItemPrice), nil
}

// Prices resolves ids into a price sheet. Items without trade data are
// present in the sheet as NoPrice.
func (c *Client) Prices(ctx context.Context, ids []int) (domain.PriceSheet, error) {
	latest, err := c.Latest(ctx)
	if err != nil {
		return nil, err
	}
	sheet := make(domain.PriceSheet, len(ids))
	for _, id := range ids {
		sheet[id] = latest[id].Average()
	}
	return sheet, nil
}

// Mapping returns the name and metadata of every item.
func (c *Client) Mapping(ctx context.Context) ([]Item, error) {
	if items, ok := c.mapping.Get(cacheKeyMapping); ok {
		metrics.PriceCacheHits.Inc()
		return items, nil
	}
	metrics.PriceCacheMisses.Inc()

	v, err := c.shared(ctx, cacheKeyMapping, func(ctx context.Context) (any, error) {
		var items []Item
		if err := c.get(ctx, EndpointMapping, &items); err != nil {
			return nil, err
		}
		sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
		c.mapping.Add(cacheKeyMapping, items)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Item), nil
}

// Quote returns the item with the given ID and its latest price.
func (c *Client) Quote(ctx context.Context, id int) (Quote, error) {
	items, err := c.Mapping(ctx)
	if err != nil {
		return Quote{}, err
	}
	idx := sort.Search(len(items), func(i int) bool { return items[i].ID >= id })
	if idx == len(items) || items[idx].ID != id {
		return Quote{}, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	quotes, err := c.quotes(ctx, items[idx:idx+1])
	if err != nil {
		return Quote{}, err
	}
	return quotes[0], nil
}

// Search finds items whose name contains query, ignoring case. When nothing
// contains it, the names closest to query by edit distance are returned
// instead, so small typos still find the item.
func (c *Client) Search(ctx context.Context, query string) ([]Quote, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrItemNotFound)
	}
	items, err := c.Mapping(ctx)
	if err != nil {
		return nil, err
	}

	matches := substringMatches(items, query)
	if len(matches) == 0 {
		matches = closestMatches(items, query)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, query)
	}
	if len(matches) > MaxSearchResults {
		matches = matches[:MaxSearchResults]
	}
	return c.quotes(ctx, matches)
}

func (c *Client) quotes(ctx context.Context, items []Item) ([]Quote, error) {
	latest, err := c.Latest(ctx)
	if err != nil {
		return nil, err
	}
	quotes := make([]Quote, len(items))
	for i, item := range items {
		p := latest[item.ID]
		quotes[i] = Quote{Item: item, Latest: p, Price: p.Average()}
	}
	return quotes, nil
}

// substringMatches returns items containing query, exact names first, then
// shorter names.
func substringMatches(items []Item, query string) []Item {
	var out []Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ei := strings.EqualFold(out[i].Name, query)
		ej := strings.EqualFold(out[j].Name, query)
		if ei != ej {
			return ei
		}
		if len(out[i].Name) != len(out[j].Name) {
			return len(out[i].Name) < len(out[j].Name)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// closestMatches returns the items at the smallest edit distance from query,
// provided that distance is small relative to the query.
func closestMatches(items []Item, query string) []Item {
	limit := max(2, len(query)/3)
	best := limit + 1
	var out []Item
	for _, item := range items {
		dist := levenshtein.ComputeDistance(query, strings.ToLower(item.Name))
		switch {
		case dist < best:
			best = dist
			out = append(out[:0], item)
		case dist == best:
			out = append(out, item)
		}
	}
	return out
}

// shared runs fetch once for all concurrent callers of key. The fetch is
// detached from the caller that started it, so one caller going away does not
// fail the others; each caller still stops waiting when its own ctx ends.
func (c *Client) shared(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPriceLookup, err)
	}
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		return fetch(detached)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", domain.ErrPriceLookup, ctx.Err())
	}
}

func (c *Client) get(ctx context.Context, endpoint string, out any) (err error) {
	defer func() {
		metrics.PriceFetches.WithLabelValues(endpoint, metrics.ResultLabel(err)).Inc()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPriceLookup, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPriceLookup, err)
	}
	defer resp.Body.Close()

	logger.FromContext(ctx).Debug("Price API request",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %s", domain.ErrPriceLookup, endpoint, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", domain.ErrPriceLookup, endpoint, err)
	}
	return nil
}
