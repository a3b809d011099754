// Package fixtures holds the deterministic placeholder records substituted
// when a vendor cannot deliver.
package fixtures

import "siteintel/internal/domain"

func tech(name, tag string, popularity int, version ...string) domain.Technology {
	t := domain.Technology{Name: name, Tag: tag, Popularity: &popularity}
	if len(version) > 0 {
		v := version[0]
		t.Version = &v
	}
	return t
}

func knownStacks() map[string][]domain.Technology {
	return map[string][]domain.Technology{
		"linkedin.com": {
			tech("React", "JavaScript Frameworks & Libraries", 88, "18.2.0"),
			tech("Node.js", "Programming Languages", 82, "18.17.0"),
			tech("Amazon CloudFront", "Content Delivery Network", 75),
			tech("Google Analytics", "Analytics & Tracking", 95, "GA4"),
			tech("Nginx", "Web Servers", 85, "1.21.1"),
			tech("Amazon Web Services", "Cloud Services", 75),
			tech("Bootstrap", "JavaScript Frameworks & Libraries", 70),
			tech("jQuery", "JavaScript Frameworks & Libraries", 65),
		},
		"github.com": {
			tech("Ruby on Rails", "Web Frameworks", 70),
			tech("MySQL", "Databases", 73, "8.0.33"),
			tech("Redis", "Caching", 68),
			tech("Fastly", "Content Delivery Network", 75),
			tech("GitHub Analytics", "Analytics & Tracking", 80),
			tech("Amazon Web Services", "Cloud Services", 75),
			tech("Elasticsearch", "Search Engines", 65),
			tech("JavaScript", "Programming Languages", 85),
		},
		"medium.com": {
			tech("Node.js", "Programming Languages", 80),
			tech("React", "JavaScript Frameworks & Libraries", 85, "18.0.0"),
			tech("Amazon CloudFront", "Content Delivery Network", 75),
			tech("Google Analytics", "Analytics & Tracking", 95, "GA4"),
			tech("Amazon Web Services", "Cloud Services", 75),
			tech("GraphQL", "APIs", 70),
			tech("PostgreSQL", "Databases", 75, "14.0"),
			tech("TypeScript", "Programming Languages", 80, "5.1.0"),
		},
		"facebook.com": {
			tech("React", "JavaScript Frameworks & Libraries", 88, "18.2.0"),
			tech("PHP", "Programming Languages", 55, "8.2.0"),
			tech("MySQL", "Databases", 73, "8.0.33"),
			tech("Memcached", "Caching", 60),
			tech("Facebook CDN", "Content Delivery Network", 90),
			tech("Facebook Analytics", "Analytics & Tracking", 95),
			tech("HipHop", "Web Frameworks", 40),
			tech("Cassandra", "Databases", 65),
		},
		"google.com": {
			tech("Go", "Programming Languages", 75),
			tech("JavaScript", "Programming Languages", 85),
			tech("Google Cloud CDN", "Content Delivery Network", 85),
			tech("Google Analytics", "Analytics & Tracking", 95, "GA4"),
			tech("Bigtable", "Databases", 70),
			tech("Google Cloud Platform", "Cloud Services", 80),
			tech("V8", "JavaScript Engines", 85),
			tech("Protocol Buffers", "APIs", 70),
		},
		"salla.com": defaultStack(),
		"mapp.sa": {
			tech("WordPress", "Content Management", 75),
			tech("PHP", "Programming Languages", 70, "8.0"),
			tech("MySQL", "Databases", 73, "8.0"),
			tech("jQuery", "JavaScript Frameworks & Libraries", 65, "3.6.0"),
			tech("Google Analytics", "Analytics & Tracking", 95, "GA4"),
		},
	}
}

func defaultStack() []domain.Technology {
	return []domain.Technology{
		tech("JavaScript", "Programming Languages", 85),
		tech("HTML5", "Markup Languages", 90),
		tech("CSS3", "Stylesheets", 85),
		tech("Google Analytics", "Analytics & Tracking", 95, "GA4"),
		tech("Cloudflare", "Content Delivery Network", 80),
	}
}

// TechStack returns the fallback profile for a domain: a fixed table for a
// handful of well-known hosts and a generic web stack otherwise. Every call
// returns fresh slices so callers may mutate the result.
func TechStack(host string) domain.TechStackProfile {
	techs, ok := knownStacks()[host]
	if !ok {
		techs = defaultStack()
	}
	return domain.TechStackProfile{Domain: host, Technologies: techs, Source: domain.StackFromFallback}
}
