// Package apify runs the SimilarWeb traffic actor on Apify and collects its
// dataset.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"siteintel/internal/adapters/vendorhttp"
	"siteintel/internal/domain"
	"siteintel/internal/logger"
	"siteintel/internal/normalize"
	"siteintel/internal/workers/runpoller"
)

const vendor = "apify"

type Config struct {
	Token        string
	ActorID      string
	BaseURL      string
	Timeout      time.Duration
	PollInterval time.Duration
	MaxPolls     int
}

type Client struct {
	cfg    Config
	http   *http.Client
	poller *runpoller.Poller
	log    logger.Logger
}

// New builds a client. clock drives the status poll loop; pass nil for the
// real clock.
func New(cfg Config, clock clockwork.Clock, log logger.Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With(logger.String("vendor", vendor))
	return &Client{
		cfg:    cfg,
		http:   vendorhttp.NewClient(cfg.Timeout),
		poller: runpoller.New(clock, cfg.PollInterval, cfg.MaxPolls, log),
		log:    log,
	}
}

func (c *Client) Configured() bool { return c.cfg.Token != "" }

type runEnvelope struct {
	Data struct {
		ID               string `json:"id"`
		Status           string `json:"status"`
		DefaultDatasetID string `json:"defaultDatasetId"`
	} `json:"data"`
}

// FetchTraffic submits one actor run for the whole batch, waits for it and
// returns one profile per requested domain the dataset covered, in request
// order. Dataset items are joined to domains by key, never by position.
func (c *Client) FetchTraffic(ctx context.Context, domains []string) ([]domain.TrafficProfile, error) {
	if len(domains) == 0 {
		return nil, domain.Invalid("no domains to analyze")
	}
	if !c.Configured() {
		return nil, fmt.Errorf("%w: apify token not configured", domain.ErrVendorUnavailable)
	}

	run, err := c.startRun(ctx, domains)
	if err != nil {
		return nil, err
	}
	c.log.Info("actor run started", logger.String("run_id", run.Data.ID), logger.Int("domains", len(domains)))

	var last runEnvelope
	res, err := c.poller.Run(ctx, func(ctx context.Context) (string, runpoller.Outcome, error) {
		st, serr := c.runStatus(ctx, run.Data.ID)
		if serr != nil {
			return "", runpoller.Failed, serr
		}
		last = st
		switch last.Data.Status {
		case "RUNNING", "READY":
			return last.Data.Status, runpoller.Pending, nil
		case "SUCCEEDED":
			return last.Data.Status, runpoller.Done, nil
		default:
			return last.Data.Status, runpoller.Failed, nil
		}
	})
	if err != nil {
		return nil, err
	}
	c.log.Info("actor run finished", logger.String("run_id", run.Data.ID), logger.Int("polls", res.Polls))

	datasetID := last.Data.DefaultDatasetID
	if datasetID == "" {
		datasetID = run.Data.DefaultDatasetID
	}
	items, err := c.datasetItems(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	return c.join(items, domains)
}

func (c *Client) join(items []normalize.TrafficItem, domains []string) ([]domain.TrafficProfile, error) {
	byDomain := make(map[string]domain.TrafficProfile, len(items))
	for _, item := range items {
		p, err := normalize.TrafficProfile(item)
		if err != nil {
			c.log.Warn("dropping dataset item", logger.String("name", item.Name), logger.Error(err))
			continue
		}
		host, ok := normalize.MatchDomain(item, domains)
		if !ok {
			c.log.Warn("dataset item matches no requested domain", logger.String("name", item.Name))
			continue
		}
		p.Domain = host
		byDomain[host] = p
	}

	out := make([]domain.TrafficProfile, 0, len(domains))
	for _, d := range domains {
		if p, ok := byDomain[d]; ok {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, vendorhttp.Invalid(vendor, "no usable items for %d domains", len(domains))
	}
	return out, nil
}

func (c *Client) startRun(ctx context.Context, domains []string) (runEnvelope, error) {
	payload, err := json.Marshal(map[string]any{"websites": domains, "maxPages": 1})
	if err != nil {
		return runEnvelope{}, err
	}
	u := fmt.Sprintf("%s/v2/acts/%s/runs", c.cfg.BaseURL, url.PathEscape(c.cfg.ActorID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return runEnvelope{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	body, err := vendorhttp.Do(c.http, vendor, req, http.StatusCreated)
	if err != nil {
		return runEnvelope{}, err
	}
	var run runEnvelope
	if err := json.Unmarshal(body, &run); err != nil || run.Data.ID == "" {
		return runEnvelope{}, fmt.Errorf("%w: apify run response without id", domain.ErrVendorUnavailable)
	}
	return run, nil
}

func (c *Client) runStatus(ctx context.Context, runID string) (runEnvelope, error) {
	u := fmt.Sprintf("%s/v2/acts/%s/runs/%s", c.cfg.BaseURL, url.PathEscape(c.cfg.ActorID), url.PathEscape(runID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return runEnvelope{}, err
	}
	c.authorize(req)
	body, err := vendorhttp.Do(c.http, vendor, req)
	if err != nil {
		return runEnvelope{}, err
	}
	var run runEnvelope
	if err := json.Unmarshal(body, &run); err != nil {
		return runEnvelope{}, fmt.Errorf("%w: apify run status: %v", domain.ErrVendorUnavailable, err)
	}
	return run, nil
}

func (c *Client) datasetItems(ctx context.Context, datasetID string) ([]normalize.TrafficItem, error) {
	if datasetID == "" {
		return nil, vendorhttp.Invalid(vendor, "run has no dataset")
	}
	u := fmt.Sprintf("%s/v2/datasets/%s/items", c.cfg.BaseURL, url.PathEscape(datasetID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)
	body, err := vendorhttp.Do(c.http, vendor, req, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return normalize.TrafficItems(body)
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
}
