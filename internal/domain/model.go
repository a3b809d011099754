package domain

import "time"

// Core domain models. JSON tags follow the public API and the persisted
// session blobs; keep them stable, stored sessions are decoded with them.

type SessionState string

const (
	StateCreated      SessionState = "CREATED"
	StateTrafficReady SessionState = "TRAFFIC_READY"
	StateStackReady   SessionState = "STACK_READY"
)

// HasTraffic reports whether stage 1 output is present.
func (s SessionState) HasTraffic() bool {
	return s == StateTrafficReady || s == StateStackReady
}

type TrafficSources struct {
	Direct         float64 `json:"directVisitsShare"`
	OrganicSearch  float64 `json:"organicSearchVisitsShare"`
	Referral       float64 `json:"referralVisitsShare"`
	SocialNetworks float64 `json:"socialNetworksVisitsShare"`
	Mail           float64 `json:"mailVisitsShare"`
	PaidSearch     float64 `json:"paidSearchVisitsShare"`
	Ads            float64 `json:"adsVisitsShare"`
}

type TopCountry struct {
	CountryCode       string  `json:"countryAlpha2Code"`
	VisitsShare       float64 `json:"visitsShare"`
	VisitsShareChange float64 `json:"visitsShareChange"`
}

type TopKeyword struct {
	Name           string  `json:"name"`
	Volume         int64   `json:"volume"`
	EstimatedValue int64   `json:"estimatedValue"`
	CPC            float64 `json:"cpc"`
}

type SocialShare struct {
	Name        string  `json:"name"`
	VisitsShare float64 `json:"visitsShare"`
}

type Competitor struct {
	Domain       string  `json:"domain"`
	VisitsTotal  int64   `json:"visitsTotalCount"`
	Affinity     float64 `json:"affinity"`
	CategoryRank *int    `json:"categoryRank,omitempty"`
}

// TrafficProfile is the stage 1 record for one domain. Only TechStack is
// attached after creation.
type TrafficProfile struct {
	Domain              string            `json:"domain"`
	Name                string            `json:"name"`
	GlobalRank          int               `json:"globalRank"`
	CountryRank         *int              `json:"countryRank,omitempty"`
	CategoryRank        *int              `json:"categoryRank,omitempty"`
	CompanyName         string            `json:"companyName,omitempty"`
	CompanyYearFounded  *int              `json:"companyYearFounded,omitempty"`
	CompanyEmployeesMin *int              `json:"companyEmployeesMin,omitempty"`
	CompanyEmployeesMax *int              `json:"companyEmployeesMax,omitempty"`
	TotalVisits         int64             `json:"totalVisits"`
	AvgVisitDuration    string            `json:"avgVisitDuration"`
	PagesPerVisit       float64           `json:"pagesPerVisit"`
	BounceRate          float64           `json:"bounceRate"`
	TrafficSources      TrafficSources    `json:"trafficSources"`
	TopCountries        []TopCountry      `json:"topCountries"`
	TopKeywords         []TopKeyword      `json:"topKeywords"`
	SocialNetworks      []SocialShare     `json:"socialNetworkDistribution"`
	Competitors         []Competitor      `json:"topSimilarityCompetitors"`
	OrganicTraffic      float64           `json:"organicTraffic"`
	PaidTraffic         float64           `json:"paidTraffic"`
	TechStack           *TechStackProfile `json:"techStack,omitempty"`
}

type Technology struct {
	Name       string  `json:"name"`
	Tag        string  `json:"tag"`
	Version    *string `json:"version,omitempty"`
	Popularity *int    `json:"popularity,omitempty"`
}

type StackSource string

const (
	StackFromVendor   StackSource = "vendor"
	StackFromFallback StackSource = "fallback"
	StackEmpty        StackSource = "empty"
)

type TechStackProfile struct {
	Domain       string       `json:"domain"`
	Name         string       `json:"name,omitempty"`
	Technologies []Technology `json:"technologies"`
	Source       StackSource  `json:"source"`
}

type ChatEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
}

// AnalysisSession is the aggregate root persisted per stage 1 call.
type AnalysisSession struct {
	ID         string             `json:"id"`
	UserID     string             `json:"userId"`
	Domains    []string           `json:"domains"`
	State      SessionState       `json:"state"`
	Traffic    []TrafficProfile   `json:"traffic"`
	TechStacks []TechStackProfile `json:"techStacks"`
	Chat       []ChatEntry        `json:"chat"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// SessionUpdate carries the fields a stage mutates; nil fields are left
// untouched. AppendChat entries are appended to the transcript.
type SessionUpdate struct {
	State      *SessionState
	Traffic    []TrafficProfile
	TechStacks []TechStackProfile
	AppendChat []ChatEntry
}

type TimeseriesPoint map[string]float64

type RelatedEntry struct {
	Query string  `json:"query"`
	Value float64 `json:"value"`
	Type  string  `json:"type,omitempty"`
}

type RelatedSet struct {
	Top    []RelatedEntry `json:"top"`
	Rising []RelatedEntry `json:"rising"`
}

type KeywordAnalytics struct {
	Mean           float64 `json:"averageInterest"`
	Max            float64 `json:"maxInterest"`
	Min            float64 `json:"minInterest"`
	StdDev         float64 `json:"volatility"`
	TrendDirection string  `json:"trendDirection"`
	ChangePercent  float64 `json:"changePercent"`
	PeakMonth      string  `json:"peakMonth,omitempty"`
}

type Comparison struct {
	MostPopular  string   `json:"mostPopular"`
	MostStable   string   `json:"mostStable"`
	MostVolatile string   `json:"mostVolatile"`
	TrendingUp   []string `json:"trendingUp"`
	TrendingDown []string `json:"trendingDown"`
}

// TrendsSummary is built per request and returned directly; it is never
// stored in a session.
type TrendsSummary struct {
	Keywords         []string                    `json:"keywords"`
	OriginalKeywords []string                    `json:"originalKeywords"`
	Timeframe        string                      `json:"timeframe"`
	Geo              string                      `json:"geo"`
	FetchedAt        time.Time                   `json:"fetchedAt"`
	InterestOverTime map[string]TimeseriesPoint  `json:"interestOverTime"`
	InterestByRegion map[string]TimeseriesPoint  `json:"interestByRegion"`
	RelatedQueries   map[string]RelatedSet       `json:"relatedQueries"`
	RelatedTopics    map[string]RelatedSet       `json:"relatedTopics"`
	Analytics        map[string]KeywordAnalytics `json:"analytics"`
	MarketShare      map[string]float64          `json:"marketShare"`
	Suggestions      []string                    `json:"suggestions"`
	Comparison       *Comparison                 `json:"comparison,omitempty"`
}

type ChartPoint struct {
	Label  string             `json:"label"`
	Values map[string]float64 `json:"values"`
}

type Chart struct {
	Type  string       `json:"type"`
	Title string       `json:"title"`
	Data  []ChartPoint `json:"data"`
}

// TrendsReport is a TrendsSummary with chart-ready series attached.
type TrendsReport struct {
	TrendsSummary
	ReportType      string           `json:"reportType"`
	ReportTimestamp time.Time        `json:"reportTimestamp"`
	Charts          map[string]Chart `json:"chartConfigurations"`
}

type MonthlySearch struct {
	Year   int   `json:"year"`
	Month  int   `json:"month"`
	Volume int64 `json:"searchVolume"`
}

type KeywordVolume struct {
	Keyword          string          `json:"keyword"`
	SearchVolume     int64           `json:"searchVolume"`
	CPC              float64         `json:"cpc"`
	Competition      string          `json:"competition,omitempty"`
	CompetitionIndex int             `json:"competitionIndex"`
	MonthlySearches  []MonthlySearch `json:"monthlySearches"`
}

// AdTrafficEstimate is the projected paid traffic for one keyword at a bid.
type AdTrafficEstimate struct {
	Keyword      string  `json:"keyword"`
	Match        string  `json:"match"`
	DateInterval string  `json:"dateInterval"`
	Bid          float64 `json:"bid"`
	Impressions  float64 `json:"impressions"`
	CTR          float64 `json:"ctr"`
	AverageCPC   float64 `json:"averageCpc"`
	Cost         float64 `json:"cost"`
	Clicks       float64 `json:"clicks"`
}

// FallbackPolicy selects what a stage does when its vendor cannot deliver.
type FallbackPolicy string

const (
	PolicyStrict      FallbackPolicy = "strict"
	PolicyPlaceholder FallbackPolicy = "placeholder"
)
