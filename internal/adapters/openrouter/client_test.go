package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteintel/internal/domain"
)

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		var req chatReq
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			assert.Equal(t, DefaultModel, req.Model)
			assert.Equal(t, 1000, req.MaxTokens)
			assert.Equal(t, 0.7, req.Temperature)
			assert.Equal(t, []message{{Role: "system", Content: "ctx"}, {Role: "user", Content: "hi"}}, req.Messages)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Direct traffic leads."}}]}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "sk-test", BaseURL: srv.URL, Timeout: time.Second}, nil)
	got, err := c.Complete(context.Background(), "ctx", "hi")
	require.NoError(t, err)
	assert.Equal(t, "Direct traffic leads.", got)
}

func TestCompleteErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server error", http.StatusBadGateway, `{}`, domain.ErrVendorUnavailable},
		{"no choices", http.StatusOK, `{"choices":[]}`, domain.ErrVendorDataInvalid},
		{"not json", http.StatusOK, `oops`, domain.ErrVendorDataInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()
			c := New(Config{APIKey: "k", BaseURL: srv.URL, Model: "m"}, nil)
			_, err := c.Complete(context.Background(), "s", "u")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCompleteWithoutKey(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1"}, nil)
	_, err := c.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, domain.ErrVendorUnavailable)
}
