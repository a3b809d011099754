package chat

import (
	"fmt"
	"strconv"
	"strings"

	"siteintel/internal/domain"
)

const (
	// MaxContextChars bounds the analysis block handed to the model.
	MaxContextChars = 12000
	truncatedMarker = "\n[context truncated]"

	maxTechnologies = 10
	maxCompetitors  = 5
	maxCountries    = 5
	maxKeywords     = 5
)

// Context is the analysis data a chat answer is grounded on. Stacks fill in
// technologies for profiles that carry no attached TechStack.
type Context struct {
	Profiles []domain.TrafficProfile
	Stacks   []domain.TechStackProfile
}

func (c Context) Empty() bool { return len(c.Profiles) == 0 && len(c.Stacks) == 0 }

// BuildContext renders one block per domain and bounds the result to
// MaxContextChars.
func BuildContext(c Context) string {
	stacks := make(map[string]*domain.TechStackProfile, len(c.Stacks))
	for i := range c.Stacks {
		stacks[c.Stacks[i].Domain] = &c.Stacks[i]
	}

	var b strings.Builder
	seen := make(map[string]bool, len(c.Profiles))
	for _, p := range c.Profiles {
		stack := p.TechStack
		if stack == nil {
			stack = stacks[p.Domain]
		}
		seen[p.Domain] = true
		writeProfile(&b, p, stack)
	}
	for _, st := range c.Stacks {
		if seen[st.Domain] {
			continue
		}
		fmt.Fprintf(&b, "\nWebsite: %s\nTop Technologies:\n%s\n", st.Domain, formatTechnologies(&st))
	}
	return bound(b.String())
}

func writeProfile(b *strings.Builder, p domain.TrafficProfile, stack *domain.TechStackProfile) {
	name := p.Name
	if name == "" {
		name = p.Domain
	}
	fmt.Fprintf(b, "\nWebsite: %s (%s)\n", name, p.Domain)
	fmt.Fprintf(b, "- Global Rank: #%d\n", p.GlobalRank)
	fmt.Fprintf(b, "- Monthly Visits: %s\n", Abbreviate(float64(p.TotalVisits)))
	fmt.Fprintf(b, "- Bounce Rate: %.1f%%\n", p.BounceRate*100)
	fmt.Fprintf(b, "- Avg Visit Duration: %s\n", orNA(p.AvgVisitDuration))
	fmt.Fprintf(b, "- Pages per Visit: %.2f\n", p.PagesPerVisit)
	founded := "N/A"
	if p.CompanyYearFounded != nil {
		founded = strconv.Itoa(*p.CompanyYearFounded)
	}
	fmt.Fprintf(b, "- Company: %s (Founded: %s)\n", orNA(p.CompanyName), founded)

	b.WriteString("\nTraffic Sources:\n")
	b.WriteString(formatSources(p.TrafficSources))
	b.WriteString("\n\nTop Technologies:\n")
	b.WriteString(formatTechnologies(stack))
	b.WriteString("\n\nTop Competitors:\n")
	b.WriteString(formatCompetitors(p.Competitors))
	b.WriteString("\n\nTop Countries:\n")
	b.WriteString(formatCountries(p.TopCountries))
	b.WriteString("\n\nTop Keywords:\n")
	b.WriteString(formatKeywords(p.TopKeywords))
	b.WriteString("\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Abbreviate renders large counts with K/M/B suffixes.
func Abbreviate(v float64) string {
	switch {
	case v >= 1e9:
		return strconv.FormatFloat(v/1e9, 'f', 1, 64) + "B"
	case v >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', 1, 64) + "M"
	case v >= 1e3:
		return strconv.FormatFloat(v/1e3, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
}

// percent accepts shares either as fractions or as percentages.
func percent(v float64) float64 {
	if v <= 1 {
		return v * 100
	}
	return v
}

func formatSources(s domain.TrafficSources) string {
	rows := []struct {
		label string
		v     float64
	}{
		{"Direct", s.Direct},
		{"Organic Search", s.OrganicSearch},
		{"Referral", s.Referral},
		{"Social Networks", s.SocialNetworks},
		{"Mail", s.Mail},
		{"Paid Search", s.PaidSearch},
		{"Ads", s.Ads},
	}
	var lines []string
	for _, r := range rows {
		if r.v > 0 {
			lines = append(lines, fmt.Sprintf("- %s: %.1f%%", r.label, percent(r.v)))
		}
	}
	if len(lines) == 0 {
		return "No traffic source data available"
	}
	return strings.Join(lines, "\n")
}

func formatTechnologies(st *domain.TechStackProfile) string {
	if st == nil {
		return "No technology data available"
	}
	if len(st.Technologies) == 0 {
		return "No technologies found"
	}
	techs := st.Technologies
	if len(techs) > maxTechnologies {
		techs = techs[:maxTechnologies]
	}
	var order []string
	byTag := map[string][]string{}
	for _, t := range techs {
		tag := t.Tag
		if tag == "" {
			tag = "Other"
		}
		if _, ok := byTag[tag]; !ok {
			order = append(order, tag)
		}
		byTag[tag] = append(byTag[tag], t.Name)
	}
	lines := make([]string, 0, len(order))
	for _, tag := range order {
		lines = append(lines, fmt.Sprintf("- %s: %s", tag, strings.Join(byTag[tag], ", ")))
	}
	return strings.Join(lines, "\n")
}

func formatCompetitors(cs []domain.Competitor) string {
	if len(cs) == 0 {
		return "No competitor data available"
	}
	if len(cs) > maxCompetitors {
		cs = cs[:maxCompetitors]
	}
	lines := make([]string, 0, len(cs))
	for _, c := range cs {
		lines = append(lines, fmt.Sprintf("- %s: %s visits, %.0f%% affinity", c.Domain, Abbreviate(float64(c.VisitsTotal)), c.Affinity*100))
	}
	return strings.Join(lines, "\n")
}

func formatCountries(cs []domain.TopCountry) string {
	if len(cs) == 0 {
		return "No geographic data available"
	}
	if len(cs) > maxCountries {
		cs = cs[:maxCountries]
	}
	lines := make([]string, 0, len(cs))
	for _, c := range cs {
		lines = append(lines, fmt.Sprintf("- %s: %.1f%%", c.CountryCode, percent(c.VisitsShare)))
	}
	return strings.Join(lines, "\n")
}

func formatKeywords(ks []domain.TopKeyword) string {
	if len(ks) == 0 {
		return "No keyword data available"
	}
	if len(ks) > maxKeywords {
		ks = ks[:maxKeywords]
	}
	lines := make([]string, 0, len(ks))
	for _, k := range ks {
		lines = append(lines, fmt.Sprintf("- %s: %s searches", k.Name, Abbreviate(float64(k.Volume))))
	}
	return strings.Join(lines, "\n")
}

func bound(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= MaxContextChars {
		return s
	}
	cut := MaxContextChars - len(truncatedMarker)
	return strings.ToValidUTF8(s[:cut], "") + truncatedMarker
}
