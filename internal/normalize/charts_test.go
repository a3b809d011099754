package normalize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteintel/internal/domain"
)

func TestLineChartIsChronological(t *testing.T) {
	timeline := map[string]domain.TimeseriesPoint{
		"2024-01-08T00:00:00Z": {"go": 60},
		"2024-01-01T00:00:00Z": {"go": 50},
		"2024-01-15T00:00:00Z": {"go": 70},
	}
	c := LineChart(timeline, []string{"go", "rust"}, "today 3-m")
	assert.Equal(t, ChartLine, c.Type)
	assert.Equal(t, "Search Interest: go, rust (today 3-m)", c.Title)
	require.Len(t, c.Data, 3)
	assert.Equal(t, "2024-01-01T00:00:00Z", c.Data[0].Label)
	assert.Equal(t, 70.0, c.Data[2].Values["go"])
}

func TestRegionBarChartKeepsTopFifteen(t *testing.T) {
	regions := map[string]domain.TimeseriesPoint{}
	for i := 0; i < 20; i++ {
		regions[fmt.Sprintf("Region %02d", i)] = domain.TimeseriesPoint{"go": float64(i), "rust": 100}
	}
	c := RegionBarChart(regions, []string{"go", "rust"})
	assert.Equal(t, `Top 15 Regions for "go"`, c.Title)
	require.Len(t, c.Data, TopRegionsCharted)
	assert.Equal(t, "Region 19", c.Data[0].Label)
	assert.Equal(t, "Region 05", c.Data[14].Label)
}

func TestRegionBarChartTiesByName(t *testing.T) {
	c := RegionBarChart(map[string]domain.TimeseriesPoint{
		"Texas":   {"go": 40},
		"Alabama": {"go": 40},
	}, []string{"go"})
	require.Len(t, c.Data, 2)
	assert.Equal(t, "Alabama", c.Data[0].Label)
}

func TestSeasonalChartAveragesAcrossYears(t *testing.T) {
	timeline := map[string]domain.TimeseriesPoint{
		"2023-01-01T00:00:00Z": {"go": 10, "rust": 4},
		"2024-01-07T00:00:00Z": {"go": 30},
		"2024-03-03T00:00:00Z": {"go": 50, "rust": 8},
		"Mar 3, 2024":          {"go": 99},
	}
	c := SeasonalChart(timeline, []string{"go", "rust"})
	assert.Equal(t, "Seasonal Patterns", c.Title)
	require.Len(t, c.Data, 2)
	assert.Equal(t, domain.ChartPoint{Label: "January", Values: map[string]float64{"go": 20, "rust": 4}}, c.Data[0])
	assert.Equal(t, domain.ChartPoint{Label: "March", Values: map[string]float64{"go": 50, "rust": 8}}, c.Data[1])
}

func TestSeasonalChartEmpty(t *testing.T) {
	c := SeasonalChart(nil, []string{"go"})
	assert.NotNil(t, c.Data)
	assert.Empty(t, c.Data)
}
