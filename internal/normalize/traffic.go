package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"siteintel/internal/domain"
)

// TrafficItem is one Apify SimilarWeb dataset item. Numeric fields are left
// as any because the actor emits numbers, numeric strings and nulls.
type TrafficItem struct {
	Name                string         `json:"name"`
	URL                 string         `json:"url"`
	Domain              string         `json:"domain"`
	GlobalRank          any            `json:"globalRank"`
	CountryRank         any            `json:"countryRank"`
	CategoryRank        any            `json:"categoryRank"`
	CompanyName         string         `json:"companyName"`
	CompanyYearFounded  any            `json:"companyYearFounded"`
	CompanyEmployeesMin any            `json:"companyEmployeesMin"`
	CompanyEmployeesMax any            `json:"companyEmployeesMax"`
	TotalVisits         any            `json:"totalVisits"`
	AvgVisitDuration    any            `json:"avgVisitDuration"`
	PagesPerVisit       any            `json:"pagesPerVisit"`
	BounceRate          any            `json:"bounceRate"`
	TrafficSources      map[string]any `json:"trafficSources"`
	TopCountries []struct {
		CountryAlpha2Code string `json:"countryAlpha2Code"`
		VisitsShare       any    `json:"visitsShare"`
		VisitsShareChange any    `json:"visitsShareChange"`
	} `json:"topCountries"`
	TopKeywords []struct {
		Name           string `json:"name"`
		Volume         any    `json:"volume"`
		EstimatedValue any    `json:"estimatedValue"`
		CPC            any    `json:"cpc"`
	} `json:"topKeywords"`
	SocialNetworkDistribution []struct {
		Name        string `json:"name"`
		VisitsShare any    `json:"visitsShare"`
	} `json:"socialNetworkDistribution"`
	TopSimilarityCompetitors []struct {
		Domain           string `json:"domain"`
		VisitsTotalCount any    `json:"visitsTotalCount"`
		Affinity         any    `json:"affinity"`
		CategoryRank     any    `json:"categoryRank"`
	} `json:"topSimilarityCompetitors"`
	OrganicTraffic any `json:"organicTraffic"`
	PaidTraffic    any `json:"paidTraffic"`
}

// TrafficItems decodes a dataset items body.
func TrafficItems(body []byte) ([]TrafficItem, error) {
	var items []TrafficItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: apify dataset: %v", domain.ErrVendorDataInvalid, err)
	}
	return items, nil
}

// TrafficProfile validates one item and converts it. Items without a usable
// global rank or with a bounce rate outside [0,1] are rejected with
// domain.ErrVendorDataInvalid.
func TrafficProfile(item TrafficItem) (domain.TrafficProfile, error) {
	rank := int(Number(item.GlobalRank))
	if rank < 1 {
		return domain.TrafficProfile{}, fmt.Errorf("%w: %q has no global rank", domain.ErrVendorDataInvalid, item.Name)
	}
	bounce := Number(item.BounceRate)
	if bounce < 0 || bounce > 1 {
		return domain.TrafficProfile{}, fmt.Errorf("%w: %q bounce rate %v out of range", domain.ErrVendorDataInvalid, item.Name, bounce)
	}

	p := domain.TrafficProfile{
		Name:                item.Name,
		GlobalRank:          rank,
		CountryRank:         OptionalInt(item.CountryRank),
		CategoryRank:        OptionalInt(item.CategoryRank),
		CompanyName:         item.CompanyName,
		CompanyYearFounded:  OptionalInt(item.CompanyYearFounded),
		CompanyEmployeesMin: OptionalInt(item.CompanyEmployeesMin),
		CompanyEmployeesMax: OptionalInt(item.CompanyEmployeesMax),
		TotalVisits:         Int(item.TotalVisits),
		AvgVisitDuration:    visitDuration(item.AvgVisitDuration),
		PagesPerVisit:       Number(item.PagesPerVisit),
		BounceRate:          bounce,
		TrafficSources: domain.TrafficSources{
			Direct:         Number(item.TrafficSources["directVisitsShare"]),
			OrganicSearch:  Number(item.TrafficSources["organicSearchVisitsShare"]),
			Referral:       Number(item.TrafficSources["referralVisitsShare"]),
			SocialNetworks: Number(item.TrafficSources["socialNetworksVisitsShare"]),
			Mail:           Number(item.TrafficSources["mailVisitsShare"]),
			PaidSearch:     Number(item.TrafficSources["paidSearchVisitsShare"]),
			Ads:            Number(item.TrafficSources["adsVisitsShare"]),
		},
		TopCountries:   []domain.TopCountry{},
		TopKeywords:    []domain.TopKeyword{},
		SocialNetworks: []domain.SocialShare{},
		Competitors:    []domain.Competitor{},
		OrganicTraffic: Number(item.OrganicTraffic),
		PaidTraffic:    Number(item.PaidTraffic),
	}
	for _, c := range item.TopCountries {
		p.TopCountries = append(p.TopCountries, domain.TopCountry{
			CountryCode:       c.CountryAlpha2Code,
			VisitsShare:       Number(c.VisitsShare),
			VisitsShareChange: Number(c.VisitsShareChange),
		})
	}
	for _, k := range item.TopKeywords {
		p.TopKeywords = append(p.TopKeywords, domain.TopKeyword{
			Name:           k.Name,
			Volume:         Int(k.Volume),
			EstimatedValue: Int(k.EstimatedValue),
			CPC:            Number(k.CPC),
		})
	}
	for _, s := range item.SocialNetworkDistribution {
		p.SocialNetworks = append(p.SocialNetworks, domain.SocialShare{Name: s.Name, VisitsShare: Number(s.VisitsShare)})
	}
	for _, c := range item.TopSimilarityCompetitors {
		p.Competitors = append(p.Competitors, domain.Competitor{
			Domain:       c.Domain,
			VisitsTotal:  Int(c.VisitsTotalCount),
			Affinity:     Number(c.Affinity),
			CategoryRank: OptionalInt(c.CategoryRank),
		})
	}
	return p, nil
}

// visitDuration keeps the vendor's "mm:ss" strings and formats bare seconds.
func visitDuration(v any) string {
	if s, ok := v.(string); ok {
		if strings.Contains(s, ":") {
			return strings.TrimSpace(s)
		}
	}
	secs := int(Number(v))
	if secs <= 0 {
		return "0:00"
	}
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// MatchDomain resolves which requested domain an item describes. Items are
// matched on their domain, url or name field, then on the name against the
// first label of each requested domain ("LinkedIn" -> "linkedin.com").
func MatchDomain(item TrafficItem, requested []string) (string, bool) {
	for _, cand := range []string{item.Domain, item.URL, item.Name} {
		if cand == "" {
			continue
		}
		host, err := domain.NormalizeDomain(cand)
		if err != nil {
			continue
		}
		for _, r := range requested {
			if r == host {
				return r, true
			}
		}
	}
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(item.Name), " ", ""))
	if name == "" {
		return "", false
	}
	for _, r := range requested {
		if label, _, _ := strings.Cut(r, "."); label == name {
			return r, true
		}
	}
	return "", false
}
