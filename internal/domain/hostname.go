package domain

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NormalizeDomain reduces user input ("https://www.Example.com/path") to the
// bare hostname used as the join key across stages ("example.com").
func NormalizeDomain(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", Invalid("empty domain")
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", Invalid("malformed domain %q", raw)
	}
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	host = strings.TrimPrefix(host, "www.")
	if host == "" || strings.ContainsAny(host, " \t") {
		return "", Invalid("malformed domain %q", raw)
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(host); err != nil {
		return "", Invalid("%q is not a registrable domain", raw)
	}
	return host, nil
}

// NormalizeDomains normalizes every entry and keeps duplicates and order.
func NormalizeDomains(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, Invalid("please provide at least one website to analyze")
	}
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		d, err := NormalizeDomain(r)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
