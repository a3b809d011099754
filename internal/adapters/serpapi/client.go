// Package serpapi fetches Google Trends data through SerpApi.
package serpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"siteintel/internal/adapters/vendorhttp"
	"siteintel/internal/domain"
	"siteintel/internal/logger"
	"siteintel/internal/normalize"
	"siteintel/internal/ports"
)

const vendor = "serpapi"

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// CallInterval spaces consecutive vendor calls; zero disables pacing.
	CallInterval time.Duration
}

type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	log     logger.Logger
	now     func() time.Time
}

func New(cfg Config, log logger.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if log == nil {
		log = logger.NewNop()
	}
	limit := rate.Inf
	if cfg.CallInterval > 0 {
		limit = rate.Every(cfg.CallInterval)
	}
	return &Client{
		cfg:     cfg,
		http:    vendorhttp.NewClient(cfg.Timeout),
		limiter: rate.NewLimiter(limit, 1),
		log:     log.With(logger.String("vendor", vendor)),
		now:     time.Now,
	}
}

func (c *Client) Configured() bool { return c.cfg.APIKey != "" }

// FetchTrends runs the four trends sub-queries. Each one degrades to an empty
// section on failure; only when all four fail is domain.ErrVendorUnavailable
// returned.
func (c *Client) FetchTrends(ctx context.Context, q ports.TrendsQuery) (domain.TrendsSummary, error) {
	keywords := normalize.CleanKeywords(q.Keywords)
	if len(keywords) == 0 {
		return domain.TrendsSummary{}, domain.Invalid("no usable keywords")
	}
	if !c.Configured() {
		return domain.TrendsSummary{}, fmt.Errorf("%w: serpapi key not configured", domain.ErrVendorUnavailable)
	}

	original := q.Keywords
	if len(original) > normalize.MaxTrendKeywords {
		original = original[:normalize.MaxTrendKeywords]
	}
	s := domain.TrendsSummary{
		Keywords:         keywords,
		OriginalKeywords: append([]string(nil), original...),
		Timeframe:        q.Timeframe,
		Geo:              q.Geo,
		FetchedAt:        c.now().UTC(),
		InterestOverTime: map[string]domain.TimeseriesPoint{},
		InterestByRegion: map[string]domain.TimeseriesPoint{},
		RelatedQueries:   map[string]domain.RelatedSet{},
		RelatedTopics:    map[string]domain.RelatedSet{},
	}
	joined := strings.Join(keywords, ",")
	failed := 0

	if body, err := c.search(ctx, q, joined, "TIMESERIES"); err == nil {
		if s.InterestOverTime, err = normalize.InterestOverTime(body); err != nil {
			c.subFailed("interest over time", err)
			s.InterestOverTime = map[string]domain.TimeseriesPoint{}
			failed++
		}
	} else {
		c.subFailed("interest over time", err)
		failed++
	}

	geoType := "GEO_MAP"
	if len(keywords) == 1 {
		geoType = "GEO_MAP_0"
	}
	if body, err := c.search(ctx, q, joined, geoType); err == nil {
		if s.InterestByRegion, err = normalize.InterestByRegion(body, keywords); err != nil {
			c.subFailed("interest by region", err)
			s.InterestByRegion = map[string]domain.TimeseriesPoint{}
			failed++
		}
	} else {
		c.subFailed("interest by region", err)
		failed++
	}

	if !c.related(ctx, q, keywords, "RELATED_QUERIES", normalize.RelatedQueries, s.RelatedQueries) {
		failed++
	}
	if !c.related(ctx, q, keywords, "RELATED_TOPICS", normalize.RelatedTopics, s.RelatedTopics) {
		failed++
	}

	if failed == 4 {
		return domain.TrendsSummary{}, fmt.Errorf("%w: every trends sub-query failed", domain.ErrVendorUnavailable)
	}

	s.Analytics = normalize.TrendAnalytics(s.InterestOverTime, keywords)
	s.MarketShare = normalize.MarketShare(s.Analytics, keywords)
	s.Suggestions = normalize.Suggestions(s.RelatedQueries, s.RelatedTopics, keywords)
	return s, nil
}

// related issues one single-keyword query per keyword, since the vendor only
// returns related data for single-term searches. It reports whether any
// keyword succeeded.
func (c *Client) related(ctx context.Context, q ports.TrendsQuery, keywords []string, dataType string,
	parse func([]byte) (domain.RelatedSet, error), into map[string]domain.RelatedSet) bool {
	ok := false
	for _, k := range keywords {
		body, err := c.search(ctx, q, k, dataType)
		if err == nil {
			var set domain.RelatedSet
			if set, err = parse(body); err == nil {
				into[k] = set
				ok = true
				continue
			}
		}
		c.subFailed(strings.ToLower(dataType)+" for "+k, err)
	}
	return ok
}

func (c *Client) subFailed(what string, err error) {
	c.log.Warn("trends sub-query failed", logger.String("query", what), logger.Error(err))
}

func (c *Client) search(ctx context.Context, q ports.TrendsQuery, terms, dataType string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: serpapi pacing: %v", domain.ErrVendorUnavailable, err)
	}
	params := url.Values{
		"engine":    {"google_trends"},
		"q":         {terms},
		"data_type": {dataType},
		"api_key":   {c.cfg.APIKey},
	}
	if q.Timeframe != "" {
		params.Set("date", q.Timeframe)
	}
	if q.Geo != "" {
		params.Set("geo", q.Geo)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/search.json?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return vendorhttp.Do(c.http, vendor, req)
}
