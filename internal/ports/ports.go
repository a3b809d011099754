package ports

import (
	"context"

	"siteintel/internal/domain"
)

// TrafficProvider runs the stage 1 vendor job for a batch of domains.
type TrafficProvider interface {
	FetchTraffic(ctx context.Context, domains []string) ([]domain.TrafficProfile, error)
}

// TechStackProvider never fails; degraded lookups come back as fallback or
// empty profiles.
type TechStackProvider interface {
	FetchStack(ctx context.Context, domain string) domain.TechStackProfile
}

type TrendsQuery struct {
	Keywords  []string
	Timeframe string // vendor timeframe, e.g. "today 12-m"
	Geo       string // ISO country code, empty for worldwide
}

type TrendsProvider interface {
	FetchTrends(ctx context.Context, q TrendsQuery) (domain.TrendsSummary, error)
}

type KeywordQuery struct {
	Keywords     []string
	LanguageCode string
	Location     string
}

// SiteKeywordQuery asks for keywords relevant to a site or a single page.
type SiteKeywordQuery struct {
	Target       string
	TargetType   string // "site" or "page"
	LanguageCode string
	Location     string
}

type AdTrafficQuery struct {
	Keywords     []string
	Bid          float64
	Match        string // exact, broad or phrase
	DateInterval string // next_week, next_month or next_quarter
	LanguageCode string
	Location     string
}

type KeywordProvider interface {
	SearchVolume(ctx context.Context, q KeywordQuery) ([]domain.KeywordVolume, error)
	KeywordsForSite(ctx context.Context, q SiteKeywordQuery) ([]domain.KeywordVolume, error)
	// KeywordsForKeywords expands seed keywords into related ideas.
	KeywordsForKeywords(ctx context.Context, q KeywordQuery) ([]domain.KeywordVolume, error)
	AdTraffic(ctx context.Context, q AdTrafficQuery) ([]domain.AdTrafficEstimate, error)
}

// ChatCompleter produces one assistant reply for a system prompt and a user message.
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Configured is implemented by adapters that can report whether credentials are set.
type Configured interface {
	Configured() bool
}
