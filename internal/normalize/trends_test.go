package normalize

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteintel/internal/domain"
)

func TestCleanKeywords(t *testing.T) {
	got := CleanKeywords([]string{"www.salla.com", " mapp.sa ", "", "wikipedia.org", "example.net", "five", "six"})
	// only the first five inputs are considered, and the blank one is dropped
	assert.Equal(t, []string{"salla", "mapp.sa", "wikipedia", "example"}, got)
}

func TestInterestOverTime(t *testing.T) {
	body := `{"interest_over_time":{"timeline_data":[
		{"date":"Jan 1, 2024","timestamp":"1704067200","values":[{"query":"react","value":"55","extracted_value":55},{"query":"vue","value":"<1","extracted_value":0}]},
		{"date":"Jan 8, 2024","timestamp":"1704672000","values":[{"query":"react","value":"60"},{"query":"vue","value":"3"}]}
	]}}`
	got, err := InterestOverTime([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, domain.TimeseriesPoint{"react": 55, "vue": 0}, got["2024-01-01T00:00:00Z"])
	assert.Equal(t, domain.TimeseriesPoint{"react": 60, "vue": 3}, got["2024-01-08T00:00:00Z"])

	_, err = InterestOverTime([]byte(`{"error":"Invalid API key"}`))
	assert.ErrorIs(t, err, domain.ErrVendorDataInvalid)
}

func TestInterestOverTimeKeepsHourlyPoints(t *testing.T) {
	body := `{"interest_over_time":{"timeline_data":[
		{"date":"Jan 1, 2024 at 9:00 AM","timestamp":"1704099600","values":[{"query":"go","extracted_value":40}]},
		{"date":"Jan 1, 2024 at 10:00 AM","timestamp":"1704103200","values":[{"query":"go","extracted_value":65}]},
		{"date":"Jan 1, 2024 at 11:00 AM","timestamp":"1704106800","values":[{"query":"go","extracted_value":90}]}
	]}}`
	got, err := InterestOverTime([]byte(body))
	require.NoError(t, err)
	require.Len(t, got, 3)

	dates, values := Series(got, "go")
	assert.Equal(t, []string{"2024-01-01T09:00:00Z", "2024-01-01T10:00:00Z", "2024-01-01T11:00:00Z"}, dates)
	assert.Equal(t, []float64{40, 65, 90}, values)
}

func TestTrendAnalyticsOnHourlySeries(t *testing.T) {
	timeline := map[string]domain.TimeseriesPoint{}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 24; i++ {
		v := 10.0
		if i >= 17 {
			v = 30
		}
		timeline[start.Add(time.Duration(i)*time.Hour).Format(time.RFC3339)] = domain.TimeseriesPoint{"go": v}
	}
	got := TrendAnalytics(timeline, []string{"go"})
	assert.Equal(t, TrendIncreasing, got["go"].TrendDirection)
	assert.Equal(t, 200.0, got["go"].ChangePercent)
	assert.Equal(t, "January", got["go"].PeakMonth)
}

func TestInterestByRegionDropsAllZero(t *testing.T) {
	body := `{"compared_breakdown_by_region":[
		{"location":"Saudi Arabia","values":[{"query":"react","extracted_value":80},{"query":"vue","extracted_value":0}]},
		{"location":"XX","values":[{"query":"react","extracted_value":0},{"query":"vue","value":"0"}]}
	]}`
	got, err := InterestByRegion([]byte(body), []string{"react", "vue"})
	require.NoError(t, err)
	assert.Contains(t, got, "Saudi Arabia")
	assert.NotContains(t, got, "XX")
}

func TestInterestByRegionSingleKeyword(t *testing.T) {
	body := `{"interest_by_region":[{"location":"Egypt","value":"100","extracted_value":100},{"location":"XX","value":"0"}]}`
	got, err := InterestByRegion([]byte(body), []string{"salla"})
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.TimeseriesPoint{"Egypt": {"salla": 100}}, got)
}

func TestRelatedQueriesAndTopics(t *testing.T) {
	q, err := RelatedQueries([]byte(`{"related_queries":{"rising":[{"query":"react 19","value":"Breakout"},{"query":"next js","value":"+250%","extracted_value":250}],"top":[{"query":"react js","value":"100","extracted_value":100}]}}`))
	require.NoError(t, err)
	assert.Equal(t, []domain.RelatedEntry{{Query: "react 19", Value: 5000}, {Query: "next js", Value: 250}}, q.Rising)
	assert.Equal(t, []domain.RelatedEntry{{Query: "react js", Value: 100}}, q.Top)

	topics, err := RelatedTopics([]byte(`{"related_topics":{"top":[{"topic":{"title":"JavaScript","type":"Programming language"},"value":"100","extracted_value":100}],"rising":[]}}`))
	require.NoError(t, err)
	assert.Equal(t, []domain.RelatedEntry{{Query: "JavaScript", Value: 100, Type: "Programming language"}}, topics.Top)
	assert.Empty(t, topics.Rising)
}

// weekly builds a timeline starting 2024-01-01 from per-keyword values.
func weekly(series map[string][]float64) map[string]domain.TimeseriesPoint {
	out := map[string]domain.TimeseriesPoint{}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for k, values := range series {
		for i, v := range values {
			d := start.AddDate(0, 0, 7*i).Format(time.RFC3339)
			if out[d] == nil {
				out[d] = domain.TimeseriesPoint{}
			}
			out[d][k] = v
		}
	}
	return out
}

func TestTrendAnalytics(t *testing.T) {
	timeline := weekly(map[string][]float64{
		"up":   {10, 10, 10, 10, 10, 10, 10, 20, 20, 20, 20, 20, 20, 20},
		"down": {50, 50, 50, 50, 50, 50, 50, 30, 30, 30, 30, 30, 30, 30},
		"flat": {40, 41, 40, 41, 40, 41, 40, 41, 40, 41, 40, 41, 40, 41},
	})
	got := TrendAnalytics(timeline, []string{"up", "down", "flat", "missing"})

	require.Len(t, got, 3)
	assert.Equal(t, TrendIncreasing, got["up"].TrendDirection)
	assert.Equal(t, 100.0, got["up"].ChangePercent)
	assert.Equal(t, 15.0, got["up"].Mean)
	assert.Equal(t, 20.0, got["up"].Max)
	assert.Equal(t, 10.0, got["up"].Min)
	assert.Equal(t, TrendDecreasing, got["down"].TrendDirection)
	assert.Equal(t, -40.0, got["down"].ChangePercent)
	assert.Equal(t, TrendStable, got["flat"].TrendDirection)
	assert.Equal(t, 40.0, got["flat"].Min)

	// "up" is at 20 only from mid February onward
	assert.Equal(t, "March", got["up"].PeakMonth)
}

func TestTrendAnalyticsShortSeriesIsStable(t *testing.T) {
	got := TrendAnalytics(weekly(map[string][]float64{"k": {1, 2, 3}}), []string{"k"})
	assert.Equal(t, TrendStable, got["k"].TrendDirection)
	assert.Equal(t, 1.0, got["k"].StdDev)
}

func TestMarketShareSumsTo100(t *testing.T) {
	a := map[string]domain.KeywordAnalytics{"a": {Mean: 30}, "b": {Mean: 10}}
	share := MarketShare(a, []string{"a", "b"})
	assert.Equal(t, map[string]float64{"a": 75, "b": 25}, share)

	zero := MarketShare(map[string]domain.KeywordAnalytics{"a": {}}, []string{"a"})
	assert.Equal(t, map[string]float64{"a": 0}, zero)
}

func TestSuggestions(t *testing.T) {
	queries := map[string]domain.RelatedSet{
		"react": {
			Rising: []domain.RelatedEntry{{Query: "React 19"}, {Query: "vue"}, {Query: "next js"}},
			Top:    []domain.RelatedEntry{{Query: "react 19"}, {Query: "react native"}},
		},
	}
	topics := map[string]domain.RelatedSet{
		"vue": {Top: []domain.RelatedEntry{{Query: "Nuxt"}}},
	}
	got := Suggestions(queries, topics, []string{"react", "vue"})
	assert.Equal(t, []string{"React 19", "next js", "react native", "Nuxt"}, got)

	var many []domain.RelatedEntry
	for i := 0; i < 5; i++ {
		many = append(many, domain.RelatedEntry{Query: fmt.Sprintf("idea %d", i)})
	}
	lots := map[string]domain.RelatedSet{}
	for _, k := range []string{"a", "b", "c"} {
		entries := make([]domain.RelatedEntry, len(many))
		for i, e := range many {
			entries[i] = domain.RelatedEntry{Query: k + " " + e.Query}
		}
		lots[k] = domain.RelatedSet{Top: entries}
	}
	got = Suggestions(lots, nil, []string{"a", "b", "c"})
	assert.Len(t, got, 10)
	assert.True(t, strings.HasPrefix(got[9], "b "))
}

func TestCompare(t *testing.T) {
	a := map[string]domain.KeywordAnalytics{
		"a": {Mean: 30, StdDev: 2, TrendDirection: TrendIncreasing},
		"b": {Mean: 50, StdDev: 9, TrendDirection: TrendDecreasing},
		"c": {Mean: 50, StdDev: 1, TrendDirection: TrendStable},
	}
	c := Compare(a, []string{"a", "b", "c"})
	assert.Equal(t, "b", c.MostPopular)
	assert.Equal(t, "c", c.MostStable)
	assert.Equal(t, "b", c.MostVolatile)
	assert.Equal(t, []string{"a"}, c.TrendingUp)
	assert.Equal(t, []string{"b"}, c.TrendingDown)
}
