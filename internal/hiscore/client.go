package hiscore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/logger"
	"github.com/osse101/HerbRun_Go/internal/metrics"
)

// Client looks players up on the official Old School hiscores.
type Client struct {
	url        string
	userAgent  string
	httpClient *http.Client

	cache *expirable.LRU[string, *domain.Player]
	group singleflight.Group
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	url        string
	userAgent  string
	ttl        time.Duration
	size       int
	httpClient *http.Client
}

// WithURL overrides the hiscore endpoint
func WithURL(u string) Option {
	return func(o *clientOptions) { o.url = u }
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithTTL sets how long a player's stats are cached
func WithTTL(ttl time.Duration) Option {
	return func(o *clientOptions) { o.ttl = ttl }
}

// WithCacheSize sets how many players are cached
func WithCacheSize(n int) Option {
	return func(o *clientOptions) { o.size = n }
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) { o.userAgent = ua }
}

// NewClient creates a new hiscore client
func NewClient(opts ...Option) *Client {
	o := clientOptions{
		url:        DefaultURL,
		userAgent:  DefaultUserAgent,
		ttl:        DefaultTTL,
		size:       DefaultCacheSize,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		url:        o.url,
		userAgent:  o.userAgent,
		httpClient: o.httpClient,
		cache:      expirable.NewLRU[string, *domain.Player](o.size, nil, o.ttl),
	}
}

// Player returns the hiscore entry for name.
func (c *Client) Player(ctx context.Context, name string) (*domain.Player, error) {
	key, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if p, ok := c.cache.Get(key); ok {
		return p, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrHiscoreLookup, err)
	}
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		p, err := c.fetch(detached, name)
		if err != nil {
			return nil, err
		}
		c.cache.Add(key, p)
		return p, nil
	})

	// The shared fetch outlives any one caller; each caller only stops
	// waiting on its own ctx.
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.Player), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", domain.ErrHiscoreLookup, ctx.Err())
	}
}

// Level returns the player's level in skill. Unranked skills report level 1.
func (c *Client) Level(ctx context.Context, player string, skill domain.Skill) (int, error) {
	p, err := c.Player(ctx, player)
	if err != nil {
		return 0, err
	}
	return p.Level(skill), nil
}

func (c *Client) fetch(ctx context.Context, name string) (p *domain.Player, err error) {
	defer func() {
		result := metrics.ResultLabel(err)
		if errors.Is(err, domain.ErrPlayerNotFound) {
			result = metrics.ResultNotFound
		}
		metrics.HiscoreLookups.WithLabelValues(result).Inc()
	}()

	endpoint := c.url + "?" + url.Values{"player": {strings.TrimSpace(name)}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrHiscoreLookup, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrHiscoreLookup, err)
	}
	defer resp.Body.Close()

	logger.FromContext(ctx).Debug("Hiscore request",
		"player", name,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q", domain.ErrPlayerNotFound, name)
	default:
		return nil, fmt.Errorf("%w: hiscores returned %s", domain.ErrHiscoreLookup, resp.Status)
	}

	p, err = ParsePlayer(resp.Body)
	if err != nil {
		return nil, err
	}
	p.Name = strings.TrimSpace(name)
	return p, nil
}

// ParsePlayer reads a full hiscore CSV: the skill rows followed by
// "rank,score" activity rows. Activities the player is unranked in are left
// out.
func ParsePlayer(r io.Reader) (*domain.Player, error) {
	reader := newReader(r)
	skills, err := readSkills(reader)
	if err != nil {
		return nil, err
	}
	activities, err := readActivities(reader)
	if err != nil {
		return nil, err
	}
	return &domain.Player{Skills: skills, Activities: activities}, nil
}

// ParseSkills reads the skill rows of a hiscore CSV. Each skill row is
// "rank,level,xp" in skill order; the activity rows that follow are ignored.
func ParseSkills(r io.Reader) ([]domain.SkillLevel, error) {
	return readSkills(newReader(r))
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	return reader
}

func readActivities(reader *csv.Reader) ([]domain.ActivityScore, error) {
	var out []domain.ActivityScore
	for _, name := range activityNames {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrHiscoreLookup, err)
		}
		if len(record) != 2 {
			return nil, fmt.Errorf("%w: %s row has %d fields", domain.ErrHiscoreLookup, name, len(record))
		}

		nums, err := parseFields(record)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row: %w", domain.ErrHiscoreLookup, name, err)
		}
		if nums[0] < 0 || nums[1] < 0 {
			continue
		}
		out = append(out, domain.ActivityScore{Name: name, Rank: int(nums[0]), Score: nums[1]})
	}
	return out, nil
}

func parseFields(record []string) ([]int64, error) {
	nums := make([]int64, len(record))
	for i, field := range record {
		n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

func readSkills(reader *csv.Reader) ([]domain.SkillLevel, error) {
	skills := domain.Skills()
	out := make([]domain.SkillLevel, 0, len(skills))
	for _, skill := range skills {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: expected %d skill rows, got %d", domain.ErrHiscoreLookup, len(skills), len(out))
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrHiscoreLookup, err)
		}
		if len(record) != 3 {
			return nil, fmt.Errorf("%w: %s row has %d fields", domain.ErrHiscoreLookup, skill, len(record))
		}

		nums, err := parseFields(record)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row: %w", domain.ErrHiscoreLookup, skill, err)
		}
		out = append(out, domain.SkillLevel{
			Skill: skill,
			Rank:  int(nums[0]),
			Level: int(nums[1]),
			XP:    nums[2],
		})
	}
	return out, nil
}

// normalizeName returns the cache key for a display name. The hiscores treat
// spaces, underscores and hyphens alike and ignore case.
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return "", fmt.Errorf("%w: %q", domain.ErrPlayerNotFound, name)
	}
	r := strings.NewReplacer("_", " ", "-", " ")
	return strings.ToLower(r.Replace(name)), nil
}
