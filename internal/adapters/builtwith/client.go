// Package builtwith looks up a domain's technology stack on BuiltWith.
package builtwith

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"siteintel/internal/adapters/vendorhttp"
	"siteintel/internal/domain"
	"siteintel/internal/fixtures"
	"siteintel/internal/logger"
	"siteintel/internal/metrics"
	"siteintel/internal/normalize"
)

const vendor = "builtwith"

type Config struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

type Client struct {
	cfg   Config
	http  *http.Client
	cache *expirable.LRU[string, domain.TechStackProfile]
	log   logger.Logger
}

func New(cfg Config, log logger.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if log == nil {
		log = logger.NewNop()
	}
	c := &Client{cfg: cfg, http: vendorhttp.NewClient(cfg.Timeout), log: log.With(logger.String("vendor", vendor))}
	if cfg.CacheSize > 0 {
		c.cache = expirable.NewLRU[string, domain.TechStackProfile](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return c
}

func (c *Client) Configured() bool { return c.cfg.APIKey != "" }

// FetchStack never fails. A missing key, transport or parse error, or a
// response with no usable technologies yields the fixture profile for the
// domain. Only vendor-sourced profiles are cached.
func (c *Client) FetchStack(ctx context.Context, host string) domain.TechStackProfile {
	if c.cache != nil {
		if p, ok := c.cache.Get(host); ok {
			return cloneProfile(p)
		}
	}
	p, err := c.lookup(ctx, host)
	if err != nil {
		c.log.Warn("tech stack lookup failed, using fallback", logger.String("domain", host), logger.Error(err))
		metrics.RecordFallback("techstack")
		return fixtures.TechStack(host)
	}
	if len(p.Technologies) == 0 {
		c.log.Info("no technologies survived filtering, using fallback", logger.String("domain", host))
		metrics.RecordFallback("techstack")
		return fixtures.TechStack(host)
	}
	if c.cache != nil {
		c.cache.Add(host, cloneProfile(p))
	}
	return p
}

func (c *Client) lookup(ctx context.Context, host string) (domain.TechStackProfile, error) {
	if !c.Configured() {
		return domain.TechStackProfile{}, fmt.Errorf("%w: builtwith key not configured", domain.ErrVendorUnavailable)
	}
	q := url.Values{"KEY": {c.cfg.APIKey}, "LOOKUP": {host}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/v20/api.json?"+q.Encode(), nil)
	if err != nil {
		return domain.TechStackProfile{}, err
	}
	body, err := vendorhttp.Do(c.http, vendor, req)
	if err != nil {
		return domain.TechStackProfile{}, err
	}
	return normalize.TechStack(host, body)
}

// cloneProfile copies the technology slice so cached entries are never
// shared with callers that attach or mutate them.
func cloneProfile(p domain.TechStackProfile) domain.TechStackProfile {
	p.Technologies = append([]domain.Technology(nil), p.Technologies...)
	return p
}
