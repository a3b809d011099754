package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteintel/internal/domain"
)

func TestTechStackKnownAndDefault(t *testing.T) {
	p := TechStack("mapp.sa")
	assert.Equal(t, domain.StackFromFallback, p.Source)
	require.NotEmpty(t, p.Technologies)
	assert.Equal(t, "WordPress", p.Technologies[0].Name)

	d := TechStack("unknown.example")
	assert.Equal(t, "unknown.example", d.Domain)
	require.Len(t, d.Technologies, 5)
	assert.Equal(t, "JavaScript", d.Technologies[0].Name)
}

func TestTechStackReturnsFreshCopies(t *testing.T) {
	a := TechStack("github.com")
	a.Technologies[0].Name = "mutated"
	b := TechStack("github.com")
	assert.Equal(t, "Ruby on Rails", b.Technologies[0].Name)
}

func TestTrafficProfilesOnePerDomain(t *testing.T) {
	hosts := []string{"linkedin.com", "salla.com", "linkedin.com"}
	got := TrafficProfiles(hosts)
	require.Len(t, got, 3)
	for i, p := range got {
		assert.Equal(t, hosts[i], p.Domain)
		assert.GreaterOrEqual(t, p.GlobalRank, 1)
		assert.True(t, p.BounceRate >= 0 && p.BounceRate <= 1)
	}
	assert.Equal(t, "LinkedIn", got[0].Name)
	assert.Equal(t, "Salla", got[1].Name)
}
