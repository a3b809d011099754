package trends

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteintel/internal/domain"
	"siteintel/internal/normalize"
	"siteintel/internal/ports"
)

type fakeProvider struct {
	got   ports.TrendsQuery
	calls int
	err   error
}

func (f *fakeProvider) FetchTrends(_ context.Context, q ports.TrendsQuery) (domain.TrendsSummary, error) {
	f.calls++
	f.got = q
	if f.err != nil {
		return domain.TrendsSummary{}, f.err
	}
	analytics := map[string]domain.KeywordAnalytics{}
	for i, k := range q.Keywords {
		dir := normalize.TrendStable
		if i == 0 {
			dir = normalize.TrendIncreasing
		}
		analytics[k] = domain.KeywordAnalytics{Mean: float64(10 * (i + 1)), StdDev: float64(i), TrendDirection: dir}
	}
	return domain.TrendsSummary{Keywords: q.Keywords, Analytics: analytics}, nil
}

func TestTimeframeAndGeo(t *testing.T) {
	assert.Equal(t, "now 7-d", Timeframe("7days"))
	assert.Equal(t, "today 5-y", Timeframe("5years"))
	assert.Equal(t, "today 3-m", Timeframe("today 3-m"))
	assert.Equal(t, DefaultTimeframe, Timeframe(""))
	assert.Equal(t, DefaultTimeframe, Timeframe("forever"))

	assert.Equal(t, "", Geo("worldwide"))
	assert.Equal(t, "GB", Geo("united-kingdom"))
	assert.Equal(t, "SA", Geo("sa"))
	assert.Equal(t, "", Geo("atlantis"))
}

func TestGetTrendsTruncatesToFive(t *testing.T) {
	p := &fakeProvider{}
	svc := New(p, nil)

	_, err := svc.GetTrends(context.Background(), []string{"a", "b", "c", "d", "e", "f"}, "1month", "japan")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, p.got.Keywords)
	assert.Equal(t, "today 1-m", p.got.Timeframe)
	assert.Equal(t, "JP", p.got.Geo)
}

func TestGetTrendsRequiresKeywords(t *testing.T) {
	p := &fakeProvider{}
	_, err := New(p, nil).GetTrends(context.Background(), []string{" "}, "", "")
	assert.ErrorIs(t, err, domain.ErrInputInvalid)
	assert.Zero(t, p.calls)
}

func TestGetTrendsSurfacesVendorError(t *testing.T) {
	p := &fakeProvider{err: fmt.Errorf("%w: all failed", domain.ErrVendorUnavailable)}
	_, err := New(p, nil).GetTrends(context.Background(), []string{"salla"}, "", "")
	assert.ErrorIs(t, err, domain.ErrVendorUnavailable)
}

func TestCompareBounds(t *testing.T) {
	p := &fakeProvider{}
	svc := New(p, nil)

	_, err := svc.Compare(context.Background(), []string{"solo"}, "")
	assert.ErrorIs(t, err, domain.ErrInputInvalid)
	assert.NotErrorIs(t, err, domain.ErrTooManyKeywords)

	_, err = svc.Compare(context.Background(), []string{"a", "b", "c", "d", "e", "f"}, "")
	assert.ErrorIs(t, err, domain.ErrTooManyKeywords)
	assert.ErrorIs(t, err, domain.ErrInputInvalid)
	assert.Zero(t, p.calls)
}

func TestCompareAddsInsights(t *testing.T) {
	p := &fakeProvider{}
	s, err := New(p, nil).Compare(context.Background(), []string{"salla", "zid", "shopify"}, "12months")
	require.NoError(t, err)
	require.NotNil(t, s.Comparison)
	assert.Equal(t, "shopify", s.Comparison.MostPopular)
	assert.Equal(t, "salla", s.Comparison.MostStable)
	assert.Equal(t, "shopify", s.Comparison.MostVolatile)
	assert.Equal(t, []string{"salla"}, s.Comparison.TrendingUp)
	assert.Empty(t, p.got.Geo)
}

func TestVisualReport(t *testing.T) {
	p := &fakeProvider{}
	svc := New(p, nil)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.clock = clockwork.NewFakeClockAt(now)

	report, err := svc.VisualReport(context.Background(), "go, rust,,", "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, p.got.Keywords)
	assert.Equal(t, DefaultTimeframe, p.got.Timeframe)
	assert.Equal(t, "US", p.got.Geo)

	assert.Equal(t, "visual_analysis", report.ReportType)
	assert.Equal(t, now, report.ReportTimestamp)
	assert.Equal(t, []string{"go", "rust"}, report.Keywords)
	assert.Len(t, report.Charts, 3)
	assert.Equal(t, normalize.ChartBar, report.Charts["bar_chart"].Type)
	assert.Equal(t, `Top 15 Regions for "go"`, report.Charts["bar_chart"].Title)
	assert.Equal(t, "Seasonal Patterns", report.Charts["seasonal_chart"].Title)
}

func TestVisualReportNeedsKeywords(t *testing.T) {
	p := &fakeProvider{}
	_, err := New(p, nil).VisualReport(context.Background(), " , ", "7days", "germany")
	assert.ErrorIs(t, err, domain.ErrInputInvalid)
	assert.Zero(t, p.calls)
}
