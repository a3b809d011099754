package normalize

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteintel/internal/domain"
)

func TestCleanTechnologyName(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"", "", false},
		{"   ", "", false},
		{"ssl", "ssl", true},
		{"js", "js", true},
		{"ab", "", false},
		{"Vue", "Vue", true},
		{"2024", "", false},
		{"Conversion Tracking", "", false},
		{"Schema.org", "", false},
		{"Default", "", false},
		{"LinkedIn Insight Tag", "LinkedIn Insight Tag", true},
		{"jQuery 3.6.0", "jQuery", true},
		{"jquery-migrate", "jQuery", true},
		{"Google Analytics 4", "Google Analytics", true},
		{"Adobe Analytics", "Analytics", true},
		{"nginx 1.21", "Nginx", true},
		{"React 18.2.0", "React", true},
		{"Node.js v18", "Node.js", true},
		{"HTML5", "HTML5", true},
		{"Amazon  CloudFront", "Amazon CloudFront", true},
	}
	for _, tc := range cases {
		got, ok := CleanTechnologyName(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw %q", tc.raw)
		assert.Equal(t, tc.want, got, "raw %q", tc.raw)
	}
}

func TestCategorize(t *testing.T) {
	cases := map[string]string{
		"JavaScript":         "JavaScript Frameworks & Libraries",
		"Google Tag Manager": "Analytics & Tracking",
		"Fastly":             "Content Delivery Network",
		"Microsoft IIS":      "Web Servers",
		"Python":             "Programming Languages",
		"PostgreSQL":         "Databases",
		"Drupal":             "Content Management",
		"Let's Encrypt SSL":  "Security",
		"Twitter Ads":        "Social Media",
		"SendGrid Email":     "Email Services",
		"Azure":              "Cloud Services",
		"Stripe":             "Web Technologies",
	}
	for name, want := range cases {
		assert.Equal(t, want, Categorize(name), name)
	}
}

func TestPopularity(t *testing.T) {
	assert.Equal(t, 98, Popularity("HTML"))
	assert.Equal(t, 95, Popularity("google analytics"))
	assert.Equal(t, 50, Popularity("Stripe"))
}

func TestTechStackParsesNestedBuckets(t *testing.T) {
	body := `{"Results":[{"Result":{"Paths":[{"Technologies":[
		{"Name":"JavaScript Libraries","Technologies":[{"Name":"jQuery","Version":"3.6.0"},{"Name":"JQUERY UI"}]},
		{"Name":"Web Servers","Categories":[{"Technologies":[{"Name":"nginx"}]}]},
		{"Name":"Cloudflare","Tag":"cdn","Categories":["Content Delivery Network"]},
		{"Name":"Tracking","Technologies":[{"Name":"Conversion Tracking"}]},
		{"Name":"SSL Certificates","Technologies":[{"Name":"ssl"},{"Name":"ab"}]}
	]}]}}]}`

	p, err := TechStack("example.com", []byte(body))
	require.NoError(t, err)
	assert.Equal(t, "example.com", p.Domain)
	assert.Equal(t, domain.StackFromVendor, p.Source)

	names := make([]string, 0, len(p.Technologies))
	for _, tech := range p.Technologies {
		names = append(names, tech.Name)
	}
	assert.Equal(t, []string{"jQuery", "Nginx", "Cloudflare", "ssl"}, names)

	jq := p.Technologies[0]
	assert.Equal(t, "JavaScript Libraries", jq.Tag)
	require.NotNil(t, jq.Version)
	assert.Equal(t, "3.6.0", *jq.Version)
	require.NotNil(t, jq.Popularity)
	assert.Equal(t, 65, *jq.Popularity)

	assert.Equal(t, "Web Servers", p.Technologies[1].Tag)
	assert.Equal(t, "cdn", p.Technologies[2].Tag)
}

func TestTechStackAlternativeShape(t *testing.T) {
	body := `{"Results":[{"Technologies":[{"Name":"Shopify","Category":"Ecommerce"},{"name":"Stripe"}]}]}`
	p, err := TechStack("shop.test", []byte(body))
	require.NoError(t, err)
	require.Len(t, p.Technologies, 2)
	assert.Equal(t, "Ecommerce", p.Technologies[0].Tag)
	assert.Equal(t, "Web Technologies", p.Technologies[1].Tag)
}

func TestTechStackCapsAndDedups(t *testing.T) {
	var techs []map[string]string
	for i := 0; i < 30; i++ {
		techs = append(techs, map[string]string{"Name": "Product" + strings.Repeat("x", i)})
		techs = append(techs, map[string]string{"Name": strings.ToUpper("Product" + strings.Repeat("x", i))})
	}
	body, err := json.Marshal(map[string]any{
		"Results": []any{map[string]any{"Result": map[string]any{"Paths": []any{
			map[string]any{"Technologies": []any{map[string]any{"Name": "Misc", "Technologies": techs}}},
		}}}},
	})
	require.NoError(t, err)

	p, err := TechStack("big.test", body)
	require.NoError(t, err)
	assert.Len(t, p.Technologies, MaxTechnologies)
	seen := map[string]bool{}
	for _, tech := range p.Technologies {
		key := strings.ToLower(tech.Name)
		assert.False(t, seen[key], "duplicate %s", tech.Name)
		seen[key] = true
	}
}

func TestTechStackRejectsGarbage(t *testing.T) {
	_, err := TechStack("x.test", []byte(`<html>`))
	assert.ErrorIs(t, err, domain.ErrVendorDataInvalid)

	_, err = TechStack("x.test", []byte(`{"Errors":[{"Message":"invalid key"}]}`))
	assert.ErrorIs(t, err, domain.ErrVendorDataInvalid)
}

func TestTechStackRoundTripKeepsSet(t *testing.T) {
	body := `{"Results":[{"Result":{"Paths":[{"Technologies":[{"Name":"Frameworks","Technologies":[{"Name":"React"},{"Name":"react"},{"Name":"Vue"}]}]}]}}]}`
	p, err := TechStack("rt.test", []byte(body))
	require.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	var back domain.TechStackProfile
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.ElementsMatch(t, p.Technologies, back.Technologies)
	assert.Len(t, back.Technologies, 2)
}
