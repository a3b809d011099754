// Package keywords looks up Google Ads keyword data: search volume, keyword
// ideas for a site or seed list, and paid traffic estimates.
package keywords

import (
	"context"
	"strings"

	"siteintel/internal/domain"
	"siteintel/internal/logger"
	"siteintel/internal/ports"
)

const (
	MaxKeywords     = 1000
	MaxSeedKeywords = 20
	DefaultLanguage = "en"
	DefaultLocation = "United States"

	TargetSite = "site"
	TargetPage = "page"

	DefaultDateInterval = "next_month"
)

var (
	matchTypes    = map[string]bool{"exact": true, "broad": true, "phrase": true}
	dateIntervals = map[string]bool{"next_week": true, "next_month": true, "next_quarter": true}
)

type Service struct {
	provider ports.KeywordProvider
	log      logger.Logger
}

func New(provider ports.KeywordProvider, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{provider: provider, log: log.With(logger.String("service", "keywords"))}
}

func (s *Service) SearchVolume(ctx context.Context, keywords []string, language, location string) ([]domain.KeywordVolume, error) {
	clean, err := cleanKeywords(keywords, MaxKeywords)
	if err != nil {
		return nil, err
	}
	language, location = locale(language, location)
	out, err := s.provider.SearchVolume(context.WithoutCancel(ctx), ports.KeywordQuery{
		Keywords:     clean,
		LanguageCode: language,
		Location:     location,
	})
	if err != nil {
		s.log.Warn("search volume lookup failed", logger.Int("keywords", len(clean)), logger.Error(err))
		return nil, err
	}
	return out, nil
}

// KeywordsForSite returns keyword ideas for a whole domain (targetType
// "site") or a single URL ("page", the default).
func (s *Service) KeywordsForSite(ctx context.Context, target, targetType, language, location string) ([]domain.KeywordVolume, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, domain.Invalid("please provide a target site or page")
	}
	switch targetType = strings.ToLower(strings.TrimSpace(targetType)); targetType {
	case "":
		targetType = TargetPage
	case TargetPage:
	case TargetSite:
		host, err := domain.NormalizeDomain(target)
		if err != nil {
			return nil, err
		}
		target = host
	default:
		return nil, domain.Invalid("target_type must be %q or %q", TargetSite, TargetPage)
	}
	language, location = locale(language, location)
	out, err := s.provider.KeywordsForSite(context.WithoutCancel(ctx), ports.SiteKeywordQuery{
		Target:       target,
		TargetType:   targetType,
		LanguageCode: language,
		Location:     location,
	})
	if err != nil {
		s.log.Warn("site keywords lookup failed", logger.String("target", target), logger.Error(err))
		return nil, err
	}
	return out, nil
}

func (s *Service) KeywordsForKeywords(ctx context.Context, seeds []string, language, location string) ([]domain.KeywordVolume, error) {
	clean, err := cleanKeywords(seeds, MaxSeedKeywords)
	if err != nil {
		return nil, err
	}
	language, location = locale(language, location)
	out, err := s.provider.KeywordsForKeywords(context.WithoutCancel(ctx), ports.KeywordQuery{
		Keywords:     clean,
		LanguageCode: language,
		Location:     location,
	})
	if err != nil {
		s.log.Warn("keyword ideas lookup failed", logger.Strings("seeds", clean), logger.Error(err))
		return nil, err
	}
	return out, nil
}

type AdTrafficRequest struct {
	Keywords     []string
	Bid          float64
	Match        string
	DateInterval string
	Language     string
	Location     string
}

func (s *Service) AdTraffic(ctx context.Context, req AdTrafficRequest) ([]domain.AdTrafficEstimate, error) {
	clean, err := cleanKeywords(req.Keywords, MaxKeywords)
	if err != nil {
		return nil, err
	}
	if req.Bid <= 0 {
		return nil, domain.Invalid("bid must be greater than zero")
	}
	match := strings.ToLower(strings.TrimSpace(req.Match))
	if !matchTypes[match] {
		return nil, domain.Invalid("match must be one of exact, broad or phrase")
	}
	interval := strings.ToLower(strings.TrimSpace(req.DateInterval))
	if interval == "" {
		interval = DefaultDateInterval
	}
	if !dateIntervals[interval] {
		return nil, domain.Invalid("date_interval must be one of next_week, next_month or next_quarter")
	}
	language, location := locale(req.Language, req.Location)
	out, err := s.provider.AdTraffic(context.WithoutCancel(ctx), ports.AdTrafficQuery{
		Keywords:     clean,
		Bid:          req.Bid,
		Match:        match,
		DateInterval: interval,
		LanguageCode: language,
		Location:     location,
	})
	if err != nil {
		s.log.Warn("ad traffic estimate failed",
			logger.Int("keywords", len(clean)), logger.Float64("bid", req.Bid), logger.Error(err))
		return nil, err
	}
	return out, nil
}

func cleanKeywords(keywords []string, limit int) ([]string, error) {
	clean := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			clean = append(clean, k)
		}
	}
	switch {
	case len(clean) == 0:
		return nil, domain.Invalid("please provide at least one keyword")
	case len(clean) > limit:
		return nil, domain.ErrTooManyKeywords
	}
	return clean, nil
}

func locale(language, location string) (string, string) {
	if language = strings.TrimSpace(language); language == "" {
		language = DefaultLanguage
	}
	if location = strings.TrimSpace(location); location == "" {
		location = DefaultLocation
	}
	return language, location
}
