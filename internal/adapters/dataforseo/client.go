// Package dataforseo queries the Google Ads keyword endpoints on DataForSEO.
package dataforseo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"siteintel/internal/adapters/vendorhttp"
	"siteintel/internal/domain"
	"siteintel/internal/logger"
	"siteintel/internal/normalize"
	"siteintel/internal/ports"
)

const (
	vendor   = "dataforseo"
	adsPath  = "/v3/keywords_data/google_ads/"
	statusOK = 20000

	featureSearchVolume   = "search_volume"
	featureSiteKeywords   = "keywords_for_site"
	featureSeedKeywords   = "keywords_for_keywords"
	featureAdTraffic      = "ad_traffic_by_keywords"
	maxSeedKeywords       = 20
	defaultSiteTargetType = "page"
)

type Config struct {
	Login    string
	Password string
	BaseURL  string
	Timeout  time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
	log  logger.Logger
}

func New(cfg Config, log logger.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{cfg: cfg, http: vendorhttp.NewClient(cfg.Timeout), log: log.With(logger.String("vendor", vendor))}
}

func (c *Client) Configured() bool { return c.cfg.Login != "" && c.cfg.Password != "" }

type task struct {
	Keywords     []string `json:"keywords,omitempty"`
	Target       string   `json:"target,omitempty"`
	TargetType   string   `json:"target_type,omitempty"`
	Bid          float64  `json:"bid,omitempty"`
	Match        string   `json:"match,omitempty"`
	DateInterval string   `json:"date_interval,omitempty"`
	LanguageCode string   `json:"language_code,omitempty"`
	LocationName string   `json:"location_name,omitempty"`
}

type response struct {
	StatusCode    int     `json:"status_code"`
	StatusMessage string  `json:"status_message"`
	Cost          float64 `json:"cost"`
	Tasks         []struct {
		StatusCode    int               `json:"status_code"`
		StatusMessage string            `json:"status_message"`
		Result        []json.RawMessage `json:"result"`
	} `json:"tasks"`
}

type keywordItem struct {
	Keyword          string `json:"keyword"`
	SearchVolume     any    `json:"search_volume"`
	CPC              any    `json:"cpc"`
	Competition      any    `json:"competition"`
	CompetitionIndex any    `json:"competition_index"`
	MonthlySearches  []struct {
		Year         int `json:"year"`
		Month        int `json:"month"`
		SearchVolume any `json:"search_volume"`
	} `json:"monthly_searches"`
}

type adTrafficItem struct {
	Keyword      string `json:"keyword"`
	Match        string `json:"match"`
	DateInterval string `json:"date_interval"`
	Bid          any    `json:"bid"`
	Impressions  any    `json:"impressions"`
	CTR          any    `json:"ctr"`
	AverageCPC   any    `json:"average_cpc"`
	Cost         any    `json:"cost"`
	Clicks       any    `json:"clicks"`
}

// SearchVolume posts one live task for the whole keyword batch.
func (c *Client) SearchVolume(ctx context.Context, q ports.KeywordQuery) ([]domain.KeywordVolume, error) {
	if len(q.Keywords) == 0 {
		return nil, domain.Invalid("no keywords")
	}
	results, err := c.live(ctx, featureSearchVolume, task{Keywords: q.Keywords, LanguageCode: q.LanguageCode, LocationName: q.Location})
	if err != nil {
		return nil, err
	}
	return c.keywordVolumes(featureSearchVolume, results)
}

// KeywordsForSite lists keywords Google Ads associates with a domain or page.
func (c *Client) KeywordsForSite(ctx context.Context, q ports.SiteKeywordQuery) ([]domain.KeywordVolume, error) {
	if strings.TrimSpace(q.Target) == "" {
		return nil, domain.Invalid("no target")
	}
	targetType := q.TargetType
	if targetType == "" {
		targetType = defaultSiteTargetType
	}
	results, err := c.live(ctx, featureSiteKeywords, task{
		Target: q.Target, TargetType: targetType, LanguageCode: q.LanguageCode, LocationName: q.Location,
	})
	if err != nil {
		return nil, err
	}
	return c.keywordVolumes(featureSiteKeywords, results)
}

func (c *Client) KeywordsForKeywords(ctx context.Context, q ports.KeywordQuery) ([]domain.KeywordVolume, error) {
	if len(q.Keywords) == 0 {
		return nil, domain.Invalid("no keywords")
	}
	if len(q.Keywords) > maxSeedKeywords {
		return nil, fmt.Errorf("%w: %d seeds, at most %d", domain.ErrTooManyKeywords, len(q.Keywords), maxSeedKeywords)
	}
	results, err := c.live(ctx, featureSeedKeywords, task{Keywords: q.Keywords, LanguageCode: q.LanguageCode, LocationName: q.Location})
	if err != nil {
		return nil, err
	}
	return c.keywordVolumes(featureSeedKeywords, results)
}

// AdTraffic estimates impressions, clicks and cost for a keyword batch at a max CPC bid.
func (c *Client) AdTraffic(ctx context.Context, q ports.AdTrafficQuery) ([]domain.AdTrafficEstimate, error) {
	if len(q.Keywords) == 0 {
		return nil, domain.Invalid("no keywords")
	}
	results, err := c.live(ctx, featureAdTraffic, task{
		Keywords: q.Keywords, Bid: q.Bid, Match: q.Match, DateInterval: q.DateInterval,
		LanguageCode: q.LanguageCode, LocationName: q.Location,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.AdTrafficEstimate, 0, len(results))
	for _, raw := range results {
		var it adTrafficItem
		if err := json.Unmarshal(raw, &it); err != nil {
			return nil, vendorhttp.Invalid(vendor, "%s item: %v", featureAdTraffic, err)
		}
		out = append(out, domain.AdTrafficEstimate{
			Keyword:      it.Keyword,
			Match:        it.Match,
			DateInterval: it.DateInterval,
			Bid:          normalize.Number(it.Bid),
			Impressions:  normalize.Number(it.Impressions),
			CTR:          normalize.Number(it.CTR),
			AverageCPC:   normalize.Number(it.AverageCPC),
			Cost:         normalize.Number(it.Cost),
			Clicks:       normalize.Number(it.Clicks),
		})
	}
	c.log.Debug("ad traffic estimated", logger.Int("keywords", len(out)))
	return out, nil
}

// live posts a single task to the feature's live endpoint and returns the
// result items of every task in the reply.
func (c *Client) live(ctx context.Context, feature string, t task) ([]json.RawMessage, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("%w: dataforseo credentials not configured", domain.ErrVendorUnavailable)
	}
	payload, err := json.Marshal([]task{t})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+adsPath+feature+"/live", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.cfg.Login, c.cfg.Password)
	req.Header.Set("Content-Type", "application/json")

	body, err := vendorhttp.Do(c.http, vendor, req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return c.parse(feature, body)
}

func (c *Client) parse(feature string, body []byte) ([]json.RawMessage, error) {
	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, vendorhttp.Invalid(vendor, "%v", err)
	}
	if resp.StatusCode != 0 && resp.StatusCode != statusOK {
		return nil, fmt.Errorf("%w: dataforseo: %d %s", domain.ErrVendorUnavailable, resp.StatusCode, resp.StatusMessage)
	}
	var out []json.RawMessage
	for _, t := range resp.Tasks {
		if t.StatusCode != statusOK {
			return nil, fmt.Errorf("%w: dataforseo task: %d %s", domain.ErrVendorUnavailable, t.StatusCode, t.StatusMessage)
		}
		out = append(out, t.Result...)
	}
	c.log.Debug("live task done", logger.String("feature", feature), logger.Float64("cost", resp.Cost))
	return out, nil
}

func (c *Client) keywordVolumes(feature string, results []json.RawMessage) ([]domain.KeywordVolume, error) {
	out := make([]domain.KeywordVolume, 0, len(results))
	for _, raw := range results {
		var r keywordItem
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, vendorhttp.Invalid(vendor, "%s item: %v", feature, err)
		}
		kv := domain.KeywordVolume{
			Keyword:          r.Keyword,
			SearchVolume:     normalize.Int(r.SearchVolume),
			CPC:              normalize.Number(r.CPC),
			CompetitionIndex: int(normalize.Int(r.CompetitionIndex)),
			MonthlySearches:  make([]domain.MonthlySearch, 0, len(r.MonthlySearches)),
		}
		if s, ok := r.Competition.(string); ok {
			kv.Competition = s
		}
		for _, m := range r.MonthlySearches {
			kv.MonthlySearches = append(kv.MonthlySearches, domain.MonthlySearch{
				Year: m.Year, Month: m.Month, Volume: normalize.Int(m.SearchVolume),
			})
		}
		out = append(out, kv)
	}
	c.log.Debug("keywords fetched", logger.String("feature", feature), logger.Int("keywords", len(out)))
	return out, nil
}
