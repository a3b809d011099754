// Package trends serves keyword interest lookups and comparisons. It is
// stateless and never touches sessions.
package trends

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"

	"siteintel/internal/domain"
	"siteintel/internal/logger"
	"siteintel/internal/normalize"
	"siteintel/internal/ports"
)

const (
	DefaultTimeframe = "today 12-m"
	DefaultReportGeo = "US"

	reportType = "visual_analysis"
)

var timeframes = map[string]string{
	"1hour":    "now 1-H",
	"4hours":   "now 4-H",
	"1day":     "now 1-d",
	"7days":    "now 7-d",
	"1month":   "today 1-m",
	"3months":  "today 3-m",
	"12months": "today 12-m",
	"5years":   "today 5-y",
}

var geographies = map[string]string{
	"worldwide":      "",
	"united-states":  "US",
	"canada":         "CA",
	"united-kingdom": "GB",
	"australia":      "AU",
	"germany":        "DE",
	"france":         "FR",
	"japan":          "JP",
	"india":          "IN",
	"brazil":         "BR",
}

// Timeframe maps a UI timeframe to the vendor's date syntax. Values already
// in vendor syntax pass through; anything else gets the 12 month default.
func Timeframe(v string) string {
	v = strings.TrimSpace(v)
	if tf, ok := timeframes[strings.ToLower(v)]; ok {
		return tf
	}
	if strings.HasPrefix(v, "now ") || strings.HasPrefix(v, "today ") || strings.Contains(v, " ") {
		return v
	}
	return DefaultTimeframe
}

// Geo maps a UI geography to an ISO country code, empty meaning worldwide.
// Two-letter codes pass through.
func Geo(v string) string {
	v = strings.TrimSpace(v)
	if g, ok := geographies[strings.ToLower(v)]; ok {
		return g
	}
	if len(v) == 2 {
		return strings.ToUpper(v)
	}
	return ""
}

type Service struct {
	provider ports.TrendsProvider
	clock    clockwork.Clock
	log      logger.Logger
}

func New(provider ports.TrendsProvider, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		provider: provider,
		clock:    clockwork.NewRealClock(),
		log:      log.With(logger.String("service", "trends")),
	}
}

func nonBlank(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// GetTrends fetches interest data for up to five keywords; extra keywords
// are ignored.
func (s *Service) GetTrends(ctx context.Context, keywords []string, timeframe, geography string) (domain.TrendsSummary, error) {
	keywords = nonBlank(keywords)
	if len(keywords) == 0 {
		return domain.TrendsSummary{}, domain.Invalid("please provide at least one keyword")
	}
	if len(keywords) > normalize.MaxTrendKeywords {
		s.log.Info("truncating keywords", logger.Int("requested", len(keywords)))
		keywords = keywords[:normalize.MaxTrendKeywords]
	}
	return s.provider.FetchTrends(context.WithoutCancel(ctx), ports.TrendsQuery{
		Keywords:  keywords,
		Timeframe: Timeframe(timeframe),
		Geo:       Geo(geography),
	})
}

// Compare fetches worldwide interest for two to five keywords and adds the
// comparison insights.
func (s *Service) Compare(ctx context.Context, keywords []string, timeframe string) (domain.TrendsSummary, error) {
	keywords = nonBlank(keywords)
	switch {
	case len(keywords) < 2:
		return domain.TrendsSummary{}, domain.Invalid("please provide at least 2 keywords to compare")
	case len(keywords) > normalize.MaxTrendKeywords:
		return domain.TrendsSummary{}, domain.ErrTooManyKeywords
	}
	summary, err := s.provider.FetchTrends(context.WithoutCancel(ctx), ports.TrendsQuery{
		Keywords:  keywords,
		Timeframe: Timeframe(timeframe),
	})
	if err != nil {
		return domain.TrendsSummary{}, err
	}
	summary.Comparison = normalize.Compare(summary.Analytics, summary.Keywords)
	return summary, nil
}

// VisualReport fetches interest for a comma separated keyword list and adds
// line, top region and seasonal chart series. Geography defaults to the
// United States rather than worldwide.
func (s *Service) VisualReport(ctx context.Context, query, timeframe, geography string) (domain.TrendsReport, error) {
	if strings.TrimSpace(geography) == "" {
		geography = DefaultReportGeo
	}
	summary, err := s.GetTrends(ctx, strings.Split(query, ","), timeframe, geography)
	if err != nil {
		return domain.TrendsReport{}, err
	}
	s.log.Debug("building visual report", logger.Strings("keywords", summary.Keywords))
	return domain.TrendsReport{
		TrendsSummary:   summary,
		ReportType:      reportType,
		ReportTimestamp: s.clock.Now().UTC(),
		Charts: map[string]domain.Chart{
			"line_chart":     normalize.LineChart(summary.InterestOverTime, summary.Keywords, summary.Timeframe),
			"bar_chart":      normalize.RegionBarChart(summary.InterestByRegion, summary.Keywords),
			"seasonal_chart": normalize.SeasonalChart(summary.InterestOverTime, summary.Keywords),
		},
	}, nil
}
