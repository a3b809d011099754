package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"siteintel/internal/domain"
)

const (
	// MaxTrendKeywords is the most keywords the trends vendor accepts per query.
	MaxTrendKeywords = 5

	recentWindow     = 7
	stableBandPct    = 5.0
	suggestionsLimit = 10
	relatedPerList   = 5
)

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// CleanKeywords truncates to the vendor limit and strips domain decorations
// ("www.salla.com" -> "salla"). Blank entries are dropped.
func CleanKeywords(raw []string) []string {
	if len(raw) > MaxTrendKeywords {
		raw = raw[:MaxTrendKeywords]
	}
	out := make([]string, 0, len(raw))
	for _, k := range raw {
		k = strings.TrimSpace(k)
		k = strings.TrimPrefix(strings.TrimPrefix(k, "https://"), "http://")
		k = strings.TrimPrefix(k, "www.")
		for _, suffix := range []string{".com", ".org", ".net"} {
			k = strings.TrimSuffix(k, suffix)
		}
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

type serpValue struct {
	Query          string `json:"query"`
	Value          any    `json:"value"`
	ExtractedValue any    `json:"extracted_value"`
}

// value prefers the vendor's pre-parsed number and falls back to the label.
func (v serpValue) value() float64 {
	if v.ExtractedValue != nil {
		return Number(v.ExtractedValue)
	}
	return Number(v.Value)
}

type serpError struct {
	Error string `json:"error"`
}

func decodeSerp(body []byte, dst any) error {
	var e serpError
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return fmt.Errorf("%w: serpapi: %s", domain.ErrVendorDataInvalid, e.Error)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: serpapi: %v", domain.ErrVendorDataInvalid, err)
	}
	return nil
}

// InterestOverTime parses a TIMESERIES response into timestamp -> keyword ->
// value. Keys are RFC 3339 in UTC so lexical order is chronological, and
// hourly points from short timeframes stay distinct.
func InterestOverTime(body []byte) (map[string]domain.TimeseriesPoint, error) {
	var resp struct {
		InterestOverTime struct {
			TimelineData []struct {
				Date      string      `json:"date"`
				Timestamp string      `json:"timestamp"`
				Values    []serpValue `json:"values"`
			} `json:"timeline_data"`
		} `json:"interest_over_time"`
	}
	if err := decodeSerp(body, &resp); err != nil {
		return nil, err
	}
	out := make(map[string]domain.TimeseriesPoint, len(resp.InterestOverTime.TimelineData))
	for _, row := range resp.InterestOverTime.TimelineData {
		key := row.Date
		if secs, err := strconv.ParseInt(row.Timestamp, 10, 64); err == nil {
			key = time.Unix(secs, 0).UTC().Format(time.RFC3339)
		}
		point := make(domain.TimeseriesPoint, len(row.Values))
		for _, v := range row.Values {
			point[v.Query] = v.value()
		}
		out[key] = point
	}
	return out, nil
}

// InterestByRegion parses a GEO_MAP or GEO_MAP_0 response into
// region -> keyword -> value, dropping regions where every keyword is zero.
// Single-keyword responses carry no query label, so keywords[0] is used.
func InterestByRegion(body []byte, keywords []string) (map[string]domain.TimeseriesPoint, error) {
	var resp struct {
		Compared []struct {
			Location string      `json:"location"`
			Values   []serpValue `json:"values"`
		} `json:"compared_breakdown_by_region"`
		Single []struct {
			Location       string `json:"location"`
			Value          any    `json:"value"`
			ExtractedValue any    `json:"extracted_value"`
		} `json:"interest_by_region"`
	}
	if err := decodeSerp(body, &resp); err != nil {
		return nil, err
	}
	out := make(map[string]domain.TimeseriesPoint)
	for _, r := range resp.Compared {
		point := make(domain.TimeseriesPoint, len(r.Values))
		for _, v := range r.Values {
			point[v.Query] = v.value()
		}
		out[r.Location] = point
	}
	if len(keywords) > 0 {
		for _, r := range resp.Single {
			v := serpValue{Value: r.Value, ExtractedValue: r.ExtractedValue}
			out[r.Location] = domain.TimeseriesPoint{keywords[0]: v.value()}
		}
	}
	return DropZeroRegions(out), nil
}

// DropZeroRegions removes regions whose every value is zero.
func DropZeroRegions(regions map[string]domain.TimeseriesPoint) map[string]domain.TimeseriesPoint {
	for region, point := range regions {
		nonZero := false
		for _, v := range point {
			if v != 0 {
				nonZero = true
				break
			}
		}
		if !nonZero {
			delete(regions, region)
		}
	}
	return regions
}

// RelatedQueries parses a RELATED_QUERIES response for one keyword.
func RelatedQueries(body []byte) (domain.RelatedSet, error) {
	var resp struct {
		RelatedQueries struct {
			Top    []serpValue `json:"top"`
			Rising []serpValue `json:"rising"`
		} `json:"related_queries"`
	}
	if err := decodeSerp(body, &resp); err != nil {
		return domain.RelatedSet{}, err
	}
	conv := func(in []serpValue) []domain.RelatedEntry {
		out := make([]domain.RelatedEntry, 0, len(in))
		for _, v := range in {
			if v.Query != "" {
				out = append(out, domain.RelatedEntry{Query: v.Query, Value: v.value()})
			}
		}
		return out
	}
	return domain.RelatedSet{Top: conv(resp.RelatedQueries.Top), Rising: conv(resp.RelatedQueries.Rising)}, nil
}

// RelatedTopics parses a RELATED_TOPICS response for one keyword.
func RelatedTopics(body []byte) (domain.RelatedSet, error) {
	type topicValue struct {
		Topic struct {
			Title string `json:"title"`
			Type  string `json:"type"`
		} `json:"topic"`
		Value          any `json:"value"`
		ExtractedValue any `json:"extracted_value"`
	}
	var resp struct {
		RelatedTopics struct {
			Top    []topicValue `json:"top"`
			Rising []topicValue `json:"rising"`
		} `json:"related_topics"`
	}
	if err := decodeSerp(body, &resp); err != nil {
		return domain.RelatedSet{}, err
	}
	conv := func(in []topicValue) []domain.RelatedEntry {
		out := make([]domain.RelatedEntry, 0, len(in))
		for _, t := range in {
			if t.Topic.Title == "" {
				continue
			}
			v := serpValue{Value: t.Value, ExtractedValue: t.ExtractedValue}
			out = append(out, domain.RelatedEntry{Query: t.Topic.Title, Value: v.value(), Type: t.Topic.Type})
		}
		return out
	}
	return domain.RelatedSet{Top: conv(resp.RelatedTopics.Top), Rising: conv(resp.RelatedTopics.Rising)}, nil
}

// Series extracts one keyword's values in chronological order. Dates that
// carry no value for the keyword are skipped.
func Series(timeline map[string]domain.TimeseriesPoint, keyword string) (dates []string, values []float64) {
	for d, point := range timeline {
		if _, ok := point[keyword]; ok {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	values = make([]float64, len(dates))
	for i, d := range dates {
		values[i] = timeline[d][keyword]
	}
	return dates, values
}

// TrendAnalytics derives per-keyword statistics from the interest timeline.
// Keywords without any data points are omitted.
func TrendAnalytics(timeline map[string]domain.TimeseriesPoint, keywords []string) map[string]domain.KeywordAnalytics {
	out := make(map[string]domain.KeywordAnalytics, len(keywords))
	for _, k := range keywords {
		dates, values := Series(timeline, k)
		if len(values) == 0 {
			continue
		}
		a := domain.KeywordAnalytics{
			Mean:   round2(mean(values)),
			Max:    values[0],
			Min:    values[0],
			StdDev: round2(sampleStdDev(values)),
		}
		for _, v := range values {
			a.Max = math.Max(a.Max, v)
			a.Min = math.Min(a.Min, v)
		}
		a.TrendDirection, a.ChangePercent = direction(values)
		a.PeakMonth = peakMonth(dates, values)
		out[k] = a
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var ss float64
	for _, v := range values {
		ss += (v - m) * (v - m)
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// direction compares the mean of the last seven points against the mean of
// everything before them.
func direction(values []float64) (string, float64) {
	if len(values) <= recentWindow {
		return TrendStable, 0
	}
	split := len(values) - recentWindow
	older, recent := mean(values[:split]), mean(values[split:])
	if older == 0 {
		if recent > 0 {
			return TrendIncreasing, 100
		}
		return TrendStable, 0
	}
	change := round2((recent - older) / older * 100)
	switch {
	case change > stableBandPct:
		return TrendIncreasing, change
	case change < -stableBandPct:
		return TrendDecreasing, change
	default:
		return TrendStable, change
	}
}

// peakMonth returns the calendar month with the highest average interest.
// Keys that are neither RFC 3339 timestamps nor ISO dates are ignored.
func peakMonth(dates []string, values []float64) string {
	var sums, counts [13]float64
	for i, d := range dates {
		t, ok := parseTimelineKey(d)
		if !ok {
			continue
		}
		sums[t.Month()] += values[i]
		counts[t.Month()]++
	}
	best, bestAvg := 0, -1.0
	for m := 1; m <= 12; m++ {
		if counts[m] == 0 {
			continue
		}
		if avg := sums[m] / counts[m]; avg > bestAvg {
			best, bestAvg = m, avg
		}
	}
	if best == 0 {
		return ""
	}
	return time.Month(best).String()
}

// MarketShare normalizes average interest so the shares sum to 100.
func MarketShare(analytics map[string]domain.KeywordAnalytics, keywords []string) map[string]float64 {
	out := make(map[string]float64, len(keywords))
	var total float64
	for _, k := range keywords {
		total += analytics[k].Mean
	}
	for _, k := range keywords {
		a, ok := analytics[k]
		if !ok {
			continue
		}
		if total == 0 {
			out[k] = 0
			continue
		}
		out[k] = round2(a.Mean / total * 100)
	}
	return out
}

// Suggestions collects related keyword ideas from the leading rising and top
// entries of each keyword's related queries and topics. Inputs are excluded
// and results de-duplicated case-insensitively.
func Suggestions(queries, topics map[string]domain.RelatedSet, keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		seen[strings.ToLower(k)] = true
	}
	out := make([]string, 0, suggestionsLimit)
	add := func(entries []domain.RelatedEntry) {
		for i, e := range entries {
			if i >= relatedPerList || len(out) >= suggestionsLimit {
				return
			}
			key := strings.ToLower(strings.TrimSpace(e.Query))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, strings.TrimSpace(e.Query))
		}
	}
	for _, k := range keywords {
		add(queries[k].Rising)
		add(queries[k].Top)
		add(topics[k].Rising)
		add(topics[k].Top)
	}
	return out
}

// Compare summarizes which keyword leads on popularity, stability and momentum.
// Ties go to the earlier keyword.
func Compare(analytics map[string]domain.KeywordAnalytics, keywords []string) *domain.Comparison {
	c := &domain.Comparison{TrendingUp: []string{}, TrendingDown: []string{}}
	first := true
	var popular, stable, volatile domain.KeywordAnalytics
	for _, k := range keywords {
		a, ok := analytics[k]
		if !ok {
			continue
		}
		if first {
			c.MostPopular, c.MostStable, c.MostVolatile = k, k, k
			popular, stable, volatile = a, a, a
			first = false
		} else {
			if a.Mean > popular.Mean {
				c.MostPopular, popular = k, a
			}
			if a.StdDev < stable.StdDev {
				c.MostStable, stable = k, a
			}
			if a.StdDev > volatile.StdDev {
				c.MostVolatile, volatile = k, a
			}
		}
		switch a.TrendDirection {
		case TrendIncreasing:
			c.TrendingUp = append(c.TrendingUp, k)
		case TrendDecreasing:
			c.TrendingDown = append(c.TrendingDown, k)
		}
	}
	return c
}

func parseTimelineKey(key string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, key); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, key); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
