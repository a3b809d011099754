package normalize

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"siteintel/internal/domain"
)

const (
	ChartLine     = "line"
	ChartBar      = "bar"
	ChartSeasonal = "area"

	TopRegionsCharted = 15
)

// LineChart lays the interest timeline out in chronological order.
func LineChart(timeline map[string]domain.TimeseriesPoint, keywords []string, timeframe string) domain.Chart {
	keys := make([]string, 0, len(timeline))
	for k := range timeline {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	data := make([]domain.ChartPoint, 0, len(keys))
	for _, k := range keys {
		data = append(data, domain.ChartPoint{Label: k, Values: timeline[k]})
	}
	return domain.Chart{
		Type:  ChartLine,
		Title: fmt.Sprintf("Search Interest: %s (%s)", strings.Join(keywords, ", "), timeframe),
		Data:  data,
	}
}

// RegionBarChart ranks regions by the first keyword's interest and keeps the
// top TopRegionsCharted. Ties are broken by region name.
func RegionBarChart(regions map[string]domain.TimeseriesPoint, keywords []string) domain.Chart {
	lead := ""
	if len(keywords) > 0 {
		lead = keywords[0]
	}
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := regions[names[i]][lead], regions[names[j]][lead]
		if a != b {
			return a > b
		}
		return names[i] < names[j]
	})
	if len(names) > TopRegionsCharted {
		names = names[:TopRegionsCharted]
	}
	data := make([]domain.ChartPoint, 0, len(names))
	for _, name := range names {
		data = append(data, domain.ChartPoint{Label: name, Values: regions[name]})
	}
	return domain.Chart{
		Type:  ChartBar,
		Title: fmt.Sprintf("Top %d Regions for %q", TopRegionsCharted, lead),
		Data:  data,
	}
}

// SeasonalChart averages each keyword's interest per calendar month across
// all years in the timeline. Months without data are left out.
func SeasonalChart(timeline map[string]domain.TimeseriesPoint, keywords []string) domain.Chart {
	type acc struct{ sum, n float64 }
	var months [13]map[string]*acc
	for key, point := range timeline {
		t, ok := parseTimelineKey(key)
		if !ok {
			continue
		}
		m := t.Month()
		if months[m] == nil {
			months[m] = make(map[string]*acc, len(keywords))
		}
		for _, k := range keywords {
			v, ok := point[k]
			if !ok {
				continue
			}
			a := months[m][k]
			if a == nil {
				a = &acc{}
				months[m][k] = a
			}
			a.sum += v
			a.n++
		}
	}
	data := []domain.ChartPoint{}
	for m := 1; m <= 12; m++ {
		if len(months[m]) == 0 {
			continue
		}
		values := make(map[string]float64, len(months[m]))
		for k, a := range months[m] {
			values[k] = round2(a.sum / a.n)
		}
		data = append(data, domain.ChartPoint{Label: time.Month(m).String(), Values: values})
	}
	return domain.Chart{Type: ChartSeasonal, Title: "Seasonal Patterns", Data: data}
}
