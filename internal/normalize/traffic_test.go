package normalize

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteintel/internal/domain"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{nil, 0},
		{42.5, 42.5},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{7, 7},
		{json.Number("12"), 12},
		{"<1", 0},
		{"Breakout", 5000},
		{"+250%", 250},
		{"1,200", 1200},
		{" 33 ", 33},
		{"n/a", 0},
		{true, 1},
		{[]int{1}, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Number(tc.in), "%#v", tc.in)
	}
	assert.Nil(t, OptionalInt(nil))
	assert.Nil(t, OptionalInt(0.0))
	require.NotNil(t, OptionalInt("15"))
	assert.Equal(t, 15, *OptionalInt("15"))
}

const linkedinItem = `{
	"name": "linkedin.com",
	"globalRank": 27,
	"countryRank": "15",
	"categoryRank": null,
	"companyName": "LinkedIn Corporation",
	"companyYearFounded": 2003,
	"totalVisits": 2500000000,
	"avgVisitDuration": "8:45",
	"pagesPerVisit": 4.2,
	"bounceRate": 0.35,
	"trafficSources": {"directVisitsShare": 0.45, "organicSearchVisitsShare": "0.35", "adsVisitsShare": null},
	"topCountries": [{"countryAlpha2Code": "US", "visitsShare": 0.42, "visitsShareChange": 0.02}],
	"topKeywords": [{"name": "linkedin", "volume": 50000000, "estimatedValue": 45000000, "cpc": 2.5}],
	"socialNetworkDistribution": [{"name": "Facebook", "visitsShare": 0.35}],
	"topSimilarityCompetitors": [{"domain": "indeed.com", "visitsTotalCount": 1800000000, "affinity": 0.85, "categoryRank": 2}],
	"organicTraffic": 875000000,
	"paidTraffic": 50000000
}`

func TestTrafficProfile(t *testing.T) {
	items, err := TrafficItems([]byte("[" + linkedinItem + "]"))
	require.NoError(t, err)
	require.Len(t, items, 1)

	p, err := TrafficProfile(items[0])
	require.NoError(t, err)
	assert.Equal(t, 27, p.GlobalRank)
	require.NotNil(t, p.CountryRank)
	assert.Equal(t, 15, *p.CountryRank)
	assert.Nil(t, p.CategoryRank)
	assert.Nil(t, p.CompanyEmployeesMax)
	assert.Equal(t, int64(2500000000), p.TotalVisits)
	assert.Equal(t, "8:45", p.AvgVisitDuration)
	assert.Equal(t, 0.35, p.TrafficSources.OrganicSearch)
	assert.Equal(t, 0.0, p.TrafficSources.Ads)
	assert.Equal(t, "US", p.TopCountries[0].CountryCode)
	assert.Equal(t, "indeed.com", p.Competitors[0].Domain)
	require.NotNil(t, p.Competitors[0].CategoryRank)
	assert.Equal(t, 2, *p.Competitors[0].CategoryRank)
}

func TestTrafficProfileRejectsInvalid(t *testing.T) {
	_, err := TrafficProfile(TrafficItem{Name: "norank.com", BounceRate: 0.3})
	assert.ErrorIs(t, err, domain.ErrVendorDataInvalid)

	_, err = TrafficProfile(TrafficItem{Name: "bad.com", GlobalRank: 10.0, BounceRate: 1.4})
	assert.ErrorIs(t, err, domain.ErrVendorDataInvalid)

	_, err = TrafficItems([]byte(`{"not":"a list"}`))
	assert.ErrorIs(t, err, domain.ErrVendorDataInvalid)
}

func TestVisitDuration(t *testing.T) {
	assert.Equal(t, "2:05", visitDuration(125.0))
	assert.Equal(t, "1:00:01", visitDuration("3601"))
	assert.Equal(t, "12:30", visitDuration("12:30"))
	assert.Equal(t, "0:00", visitDuration(nil))
}

func TestMatchDomain(t *testing.T) {
	requested := []string{"linkedin.com", "github.com"}

	got, ok := MatchDomain(TrafficItem{Name: "github.com"}, requested)
	require.True(t, ok)
	assert.Equal(t, "github.com", got)

	got, ok = MatchDomain(TrafficItem{URL: "https://www.linkedin.com/"}, requested)
	require.True(t, ok)
	assert.Equal(t, "linkedin.com", got)

	got, ok = MatchDomain(TrafficItem{Name: "LinkedIn"}, requested)
	require.True(t, ok)
	assert.Equal(t, "linkedin.com", got)

	_, ok = MatchDomain(TrafficItem{Name: "medium.com"}, requested)
	assert.False(t, ok)
}
