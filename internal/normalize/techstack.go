package normalize

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"siteintel/internal/domain"
)

// MaxTechnologies caps the technologies kept per profile.
const MaxTechnologies = 20

var shortAllowList = map[string]bool{
	"ssl": true, "php": true, "api": true, "cdn": true, "spf": true, "dns": true,
	"aws": true, "css": true, "html": true, "js": true, "seo": true,
}

// genericTerms are BuiltWith labels that describe a capability rather than a
// product. They are matched as whole words so "link" does not drop "LinkedIn".
var genericTerms = regexp.MustCompile(`(?i)\b(?:` + strings.Join([]string{
	"top", "dataset", "inferred", "support", "compatible", "link", "embed",
	"conversion tracking", "certified", "metrics", "tracking", "schema",
	"banner", "opt-out", "challenge", "automatic", "none", "year", "signal",
	"mechanism", "default", "history", "discovery", "clips", "profiles",
	"site accelerator", "scaleable", "crawl", "directory", "revenue",
	"indexed", "lookup", "trust", "attributes", "meta", "ping", "standard",
}, "|") + `)\b`)

var versionToken = regexp.MustCompile(`(?i)^v?\d+(?:[.\-_]\d+)*[a-z]?$`)

type alias struct {
	contains  string
	canonical string
}

// Checked in order; the first match wins. "analytics" is handled separately.
var aliases = []alias{
	{"jquery", "jQuery"},
	{"bootstrap", "Bootstrap"},
	{"cloudflare", "Cloudflare"},
	{"wordpress", "WordPress"},
	{"laravel", "Laravel"},
	{"facebook", "Facebook"},
	{"nginx", "Nginx"},
	{"apache", "Apache"},
	{"php", "PHP"},
	{"mysql", "MySQL"},
}

// CleanTechnologyName canonicalizes a raw vendor label. ok is false when the
// label should be dropped.
func CleanTechnologyName(raw string) (name string, ok bool) {
	name = strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return "", false
	}
	lower := strings.ToLower(name)
	if genericTerms.MatchString(lower) {
		return "", false
	}
	if len(name) < 3 && !shortAllowList[lower] {
		return "", false
	}

	if strings.Contains(lower, "analytics") {
		if strings.Contains(lower, "google") {
			return "Google Analytics", true
		}
		return "Analytics", true
	}
	for _, a := range aliases {
		if strings.Contains(lower, a.contains) {
			return a.canonical, true
		}
	}

	words := strings.Fields(name)
	for len(words) > 1 && versionToken.MatchString(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	name = strings.Join(words, " ")
	if isDigits(name) {
		return "", false
	}
	return name, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return false
		}
	}
	return s != ""
}

type category struct {
	name     string
	keywords []string
}

// Order matters: "javascript" must hit the framework bucket before "java"
// reaches programming languages.
var categories = []category{
	{"JavaScript Frameworks & Libraries", []string{"jquery", "react", "angular", "vue", "bootstrap", "javascript"}},
	{"Analytics & Tracking", []string{"analytics", "tracking", "metrics", "tag manager"}},
	{"Content Delivery Network", []string{"cloudflare", "cdn", "fastly", "cloudfront"}},
	{"Web Servers", []string{"nginx", "apache", "iis", "server"}},
	{"Programming Languages", []string{"php", "python", "java", "node", "ruby", "perl"}},
	{"Databases", []string{"mysql", "postgres", "mongodb", "database"}},
	{"Content Management", []string{"wordpress", "drupal", "cms", "content"}},
	{"Security", []string{"ssl", "https", "security", "certificate"}},
	{"Social Media", []string{"facebook", "twitter", "linkedin", "social"}},
	{"Email Services", []string{"mail", "email", "smtp"}},
	{"Cloud Services", []string{"aws", "azure", "cloud", "hosting"}},
}

const defaultCategory = "Web Technologies"

// Categorize guesses a category tag from a technology name.
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, c := range categories {
		for _, k := range c.keywords {
			if strings.Contains(lower, k) {
				return c.name
			}
		}
	}
	return defaultCategory
}

// popularity is a hand-maintained heuristic, not measured adoption data.
var popularity = map[string]int{
	"javascript": 95, "html": 98, "css": 95, "php": 78, "mysql": 75,
	"jquery": 65, "bootstrap": 70, "nginx": 85, "apache": 60, "cloudflare": 80,
	"google analytics": 95, "wordpress": 80, "laravel": 65, "react": 88,
	"node": 82, "python": 85, "java": 70, "ruby": 60, "angular": 72,
	"vue": 58, "mongodb": 68, "postgresql": 75, "redis": 65, "docker": 75,
	"kubernetes": 60, "aws": 75, "azure": 65, "github": 85, "gitlab": 60,
}

const defaultPopularity = 50

// Popularity returns the heuristic 0-100 score for a technology name.
func Popularity(name string) int {
	if p, ok := popularity[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return defaultPopularity
}

// builtWithResponse mirrors the parts of the BuiltWith v20 lookup payload we read.
type builtWithResponse struct {
	Results []struct {
		Result struct {
			Paths []struct {
				Technologies []builtWithBucket `json:"Technologies"`
			} `json:"Paths"`
		} `json:"Result"`
		Technologies []builtWithBucket `json:"Technologies"`
	} `json:"Results"`
	Errors []struct {
		Message string `json:"Message"`
	} `json:"Errors"`
}

// builtWithBucket is either a category grouping or a leaf technology; the
// vendor has shipped both shapes in the same position.
type builtWithBucket struct {
	Name         string            `json:"Name"`
	Tag          string            `json:"Tag"`
	Category     string            `json:"Category"`
	Version      string            `json:"Version"`
	Technologies []builtWithBucket `json:"Technologies"`
	Categories   []json.RawMessage `json:"Categories"`
}

type rawTech struct {
	name, tag, version string
}

// TechStack parses a BuiltWith lookup body into a profile. It returns
// domain.ErrVendorDataInvalid when the body is not the expected shape or the
// vendor reported errors; an empty technology list is not an error here.
func TechStack(host string, body []byte) (domain.TechStackProfile, error) {
	var resp builtWithResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.TechStackProfile{}, fmt.Errorf("%w: builtwith: %v", domain.ErrVendorDataInvalid, err)
	}
	if len(resp.Errors) > 0 && len(resp.Results) == 0 {
		return domain.TechStackProfile{}, fmt.Errorf("%w: builtwith: %s", domain.ErrVendorDataInvalid, resp.Errors[0].Message)
	}

	var raws []rawTech
	if len(resp.Results) > 0 {
		r := resp.Results[0]
		for _, path := range r.Result.Paths {
			for _, b := range path.Technologies {
				raws = append(raws, flattenBucket(b)...)
			}
		}
		if len(raws) == 0 {
			for _, b := range r.Technologies {
				raws = append(raws, flattenBucket(b)...)
			}
		}
	}

	return domain.TechStackProfile{
		Domain:       host,
		Technologies: buildTechnologies(raws),
		Source:       domain.StackFromVendor,
	}, nil
}

func flattenBucket(b builtWithBucket) []rawTech {
	var out []rawTech
	grouping := len(b.Technologies) > 0
	for _, t := range b.Technologies {
		out = append(out, rawTech{name: t.Name, tag: b.Name, version: t.Version})
	}
	for _, c := range b.Categories {
		var sub struct {
			Technologies []builtWithBucket `json:"Technologies"`
		}
		// Leaf technologies carry Categories as plain strings; skip those.
		if json.Unmarshal(c, &sub) != nil {
			continue
		}
		grouping = true
		for _, t := range sub.Technologies {
			out = append(out, rawTech{name: t.Name, tag: b.Name, version: t.Version})
		}
	}
	if !grouping && b.Name != "" {
		tag := b.Tag
		if tag == "" {
			tag = b.Category
		}
		out = append(out, rawTech{name: b.Name, tag: tag, version: b.Version})
	}
	return out
}

// buildTechnologies cleans, de-duplicates (case-insensitively) and caps raw
// entries, preserving first-seen order.
func buildTechnologies(raws []rawTech) []domain.Technology {
	seen := make(map[string]bool)
	out := make([]domain.Technology, 0, min(len(raws), MaxTechnologies))
	for _, r := range raws {
		if len(out) >= MaxTechnologies {
			break
		}
		name, ok := CleanTechnologyName(r.name)
		if !ok {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		tag := strings.TrimSpace(r.tag)
		if tag == "" || strings.EqualFold(tag, "other") {
			tag = Categorize(name)
		}
		pop := Popularity(name)
		t := domain.Technology{Name: name, Tag: tag, Popularity: &pop}
		if v := strings.TrimSpace(r.version); v != "" {
			t.Version = &v
		}
		out = append(out, t)
	}
	return out
}
