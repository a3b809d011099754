package fixtures

import (
	"strings"

	"siteintel/internal/domain"
)

func intp(v int) *int { return &v }

func knownTraffic(host string) (domain.TrafficProfile, bool) {
	switch host {
	case "linkedin.com":
		return domain.TrafficProfile{
			Domain: host, Name: "LinkedIn",
			GlobalRank: 27, CountryRank: intp(15), CategoryRank: intp(1),
			CompanyName: "LinkedIn Corporation", CompanyYearFounded: intp(2003),
			CompanyEmployeesMin: intp(10000), CompanyEmployeesMax: intp(50000),
			TotalVisits: 2500000000, AvgVisitDuration: "8:45", PagesPerVisit: 4.2, BounceRate: 0.35,
			TrafficSources: domain.TrafficSources{
				Direct: 0.45, OrganicSearch: 0.35, Referral: 0.10, SocialNetworks: 0.05, Mail: 0.03, PaidSearch: 0.02,
			},
			TopCountries: []domain.TopCountry{
				{CountryCode: "US", VisitsShare: 0.42, VisitsShareChange: 0.02},
				{CountryCode: "IN", VisitsShare: 0.15, VisitsShareChange: 0.05},
				{CountryCode: "GB", VisitsShare: 0.08, VisitsShareChange: -0.01},
			},
			TopKeywords: []domain.TopKeyword{
				{Name: "linkedin", Volume: 50000000, EstimatedValue: 45000000, CPC: 2.50},
				{Name: "linkedin login", Volume: 25000000, EstimatedValue: 20000000, CPC: 1.80},
				{Name: "jobs", Volume: 15000000, EstimatedValue: 12000000, CPC: 3.20},
			},
			SocialNetworks: []domain.SocialShare{
				{Name: "Facebook", VisitsShare: 0.35}, {Name: "Twitter", VisitsShare: 0.25}, {Name: "Instagram", VisitsShare: 0.20},
			},
			Competitors: []domain.Competitor{
				{Domain: "indeed.com", VisitsTotal: 1800000000, Affinity: 0.85, CategoryRank: intp(2)},
				{Domain: "glassdoor.com", VisitsTotal: 500000000, Affinity: 0.75, CategoryRank: intp(5)},
			},
			OrganicTraffic: 875000000, PaidTraffic: 50000000,
		}, true
	case "github.com":
		return domain.TrafficProfile{
			Domain: host, Name: "GitHub",
			GlobalRank: 64, CountryRank: intp(35), CategoryRank: intp(2),
			CompanyName: "GitHub Inc.", CompanyYearFounded: intp(2008),
			CompanyEmployeesMin: intp(1000), CompanyEmployeesMax: intp(5000),
			TotalVisits: 1200000000, AvgVisitDuration: "12:30", PagesPerVisit: 6.8, BounceRate: 0.28,
			TrafficSources: domain.TrafficSources{
				Direct: 0.55, OrganicSearch: 0.30, Referral: 0.12, SocialNetworks: 0.02, Mail: 0.01,
			},
			TopCountries: []domain.TopCountry{
				{CountryCode: "US", VisitsShare: 0.38, VisitsShareChange: 0.01},
				{CountryCode: "CN", VisitsShare: 0.12, VisitsShareChange: 0.03},
				{CountryCode: "IN", VisitsShare: 0.11, VisitsShareChange: 0.04},
			},
			TopKeywords: []domain.TopKeyword{
				{Name: "github", Volume: 30000000, EstimatedValue: 25000000, CPC: 1.20},
				{Name: "git", Volume: 20000000, EstimatedValue: 15000000, CPC: 0.80},
				{Name: "open source", Volume: 8000000, EstimatedValue: 6000000, CPC: 1.50},
			},
			SocialNetworks: []domain.SocialShare{
				{Name: "Twitter", VisitsShare: 0.45}, {Name: "Reddit", VisitsShare: 0.30}, {Name: "LinkedIn", VisitsShare: 0.15},
			},
			Competitors: []domain.Competitor{
				{Domain: "gitlab.com", VisitsTotal: 150000000, Affinity: 0.90, CategoryRank: intp(3)},
				{Domain: "stackoverflow.com", VisitsTotal: 800000000, Affinity: 0.70, CategoryRank: intp(1)},
			},
			OrganicTraffic: 360000000, PaidTraffic: 0,
		}, true
	}
	return domain.TrafficProfile{}, false
}

// placeholder is the generic record for hosts without a fixed profile.
func placeholder(host string) domain.TrafficProfile {
	label, _, _ := strings.Cut(host, ".")
	name := host
	if label != "" {
		name = strings.ToUpper(label[:1]) + label[1:]
	}
	return domain.TrafficProfile{
		Domain:           host,
		Name:             name,
		GlobalRank:       100000,
		TotalVisits:      50000,
		AvgVisitDuration: "2:30",
		PagesPerVisit:    2.5,
		BounceRate:       0.55,
		TrafficSources: domain.TrafficSources{
			Direct: 0.40, OrganicSearch: 0.35, Referral: 0.10, SocialNetworks: 0.10, Mail: 0.03, PaidSearch: 0.02,
		},
		TopCountries:   []domain.TopCountry{},
		TopKeywords:    []domain.TopKeyword{},
		SocialNetworks: []domain.SocialShare{},
		Competitors:    []domain.Competitor{},
		OrganicTraffic: 17500,
	}
}

// TrafficProfiles returns one deterministic placeholder per requested domain,
// in request order.
func TrafficProfiles(hosts []string) []domain.TrafficProfile {
	out := make([]domain.TrafficProfile, 0, len(hosts))
	for _, h := range hosts {
		if p, ok := knownTraffic(h); ok {
			out = append(out, p)
			continue
		}
		out = append(out, placeholder(h))
	}
	return out
}
