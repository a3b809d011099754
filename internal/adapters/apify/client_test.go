package apify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteintel/internal/domain"
	"siteintel/internal/logger"
)

type fakeActor struct {
	statuses []string
	polls    atomic.Int32
	items    string
	runCode  int
}

func (f *fakeActor) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/acts/actor-1/runs", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		var in struct {
			Websites []string `json:"websites"`
			MaxPages int      `json:"maxPages"`
		}
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&in)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, 1, in.MaxPages)
		if f.runCode != 0 {
			w.WriteHeader(f.runCode)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"run-9","status":"READY","defaultDatasetId":"ds-1"}}`))
	})
	mux.HandleFunc("GET /v2/acts/actor-1/runs/run-9", func(w http.ResponseWriter, _ *http.Request) {
		n := int(f.polls.Add(1)) - 1
		status := f.statuses[min(n, len(f.statuses)-1)]
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "run-9", "status": status, "defaultDatasetId": "ds-1"}})
	})
	mux.HandleFunc("GET /v2/datasets/ds-1/items", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(f.items))
	})
	return mux
}

func newTestClient(t *testing.T, f *fakeActor, maxPolls int) *Client {
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)
	return New(Config{
		Token:        "tok",
		ActorID:      "actor-1",
		BaseURL:      srv.URL + "/",
		Timeout:      time.Second,
		PollInterval: time.Millisecond,
		MaxPolls:     maxPolls,
	}, nil, logger.NewNop())
}

const items = `[
	{"name":"GitHub","globalRank":64,"bounceRate":0.28,"avgVisitDuration":"12:30"},
	{"name":"linkedin.com","globalRank":27,"bounceRate":0.35},
	{"name":"broken.com","globalRank":0,"bounceRate":0.2},
	{"name":"weird.com","globalRank":5,"bounceRate":3.5}
]`

func TestFetchTrafficJoinsByDomain(t *testing.T) {
	f := &fakeActor{statuses: []string{"RUNNING", "SUCCEEDED"}, items: items}
	c := newTestClient(t, f, 60)

	got, err := c.FetchTraffic(context.Background(), []string{"linkedin.com", "github.com", "weird.com"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "linkedin.com", got[0].Domain)
	assert.Equal(t, 27, got[0].GlobalRank)
	assert.Equal(t, "github.com", got[1].Domain)
	assert.Equal(t, "12:30", got[1].AvgVisitDuration)
	for _, p := range got {
		assert.True(t, p.BounceRate >= 0 && p.BounceRate <= 1)
	}
	assert.Equal(t, int32(2), f.polls.Load())
}

func TestFetchTrafficFailedRun(t *testing.T) {
	f := &fakeActor{statuses: []string{"RUNNING", "FAILED"}, items: items}
	c := newTestClient(t, f, 60)

	_, err := c.FetchTraffic(context.Background(), []string{"github.com"})
	assert.ErrorIs(t, err, domain.ErrVendorUnavailable)
	assert.NotErrorIs(t, err, domain.ErrVendorTimeout)
}

func TestFetchTrafficTimesOut(t *testing.T) {
	f := &fakeActor{statuses: []string{"RUNNING"}, items: items}
	c := newTestClient(t, f, 3)

	_, err := c.FetchTraffic(context.Background(), []string{"github.com"})
	assert.ErrorIs(t, err, domain.ErrVendorTimeout)
	assert.Equal(t, int32(3), f.polls.Load())
}

func TestFetchTrafficNoUsableItems(t *testing.T) {
	f := &fakeActor{statuses: []string{"SUCCEEDED"}, items: `[{"name":"github.com","globalRank":null}]`}
	c := newTestClient(t, f, 5)

	_, err := c.FetchTraffic(context.Background(), []string{"github.com"})
	assert.ErrorIs(t, err, domain.ErrVendorDataInvalid)
}

func TestFetchTrafficRejectsUnexpectedStartStatus(t *testing.T) {
	f := &fakeActor{runCode: http.StatusPaymentRequired}
	c := newTestClient(t, f, 5)

	_, err := c.FetchTraffic(context.Background(), []string{"github.com"})
	assert.ErrorIs(t, err, domain.ErrVendorUnavailable)
}

func TestFetchTrafficWithoutToken(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1"}, nil, nil)
	assert.False(t, c.Configured())
	_, err := c.FetchTraffic(context.Background(), []string{"github.com"})
	assert.ErrorIs(t, err, domain.ErrVendorUnavailable)

	_, err = c.FetchTraffic(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInputInvalid)
}
