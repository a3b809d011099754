// Package vendorhttp is the shared request path for vendor API clients:
// bounded bodies, status checks, error classification and metrics.
package vendorhttp

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"siteintel/internal/domain"
	"siteintel/internal/metrics"
)

const (
	maxBody      = 32 << 20
	maxErrorBody = 2048
)

// NewClient returns an http.Client whose timeout bounds each single call.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// Do sends req and returns the body when the status is one of want (any 2xx
// when want is empty). Transport failures and unexpected statuses are wrapped
// as domain.ErrVendorUnavailable.
func Do(client *http.Client, vendor string, req *http.Request, want ...int) ([]byte, error) {
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		metrics.RecordVendor(vendor, metrics.OutcomeError, start)
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrVendorUnavailable, vendor, err)
	}
	defer resp.Body.Close()

	if !statusOK(resp.StatusCode, want) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		metrics.RecordVendor(vendor, metrics.OutcomeError, start)
		return nil, fmt.Errorf("%w: %s: unexpected status %s: %s", domain.ErrVendorUnavailable, vendor, resp.Status, body)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		metrics.RecordVendor(vendor, metrics.OutcomeError, start)
		return nil, fmt.Errorf("%w: %s: read body: %v", domain.ErrVendorUnavailable, vendor, err)
	}
	metrics.RecordVendor(vendor, metrics.OutcomeOK, start)
	return body, nil
}

// Invalid records a payload that failed validation and returns it wrapped
// as domain.ErrVendorDataInvalid.
func Invalid(vendor, format string, args ...any) error {
	metrics.RecordInvalid(vendor)
	return fmt.Errorf("%w: %s: %s", domain.ErrVendorDataInvalid, vendor, fmt.Sprintf(format, args...))
}

func statusOK(code int, want []int) bool {
	if len(want) == 0 {
		return code >= 200 && code < 300
	}
	for _, w := range want {
		if code == w {
			return true
		}
	}
	return false
}
