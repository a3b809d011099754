package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"siteintel/internal/domain"
)

type Config struct {
	Env         string
	ListenAddr  string
	LogLevel    string
	DatabaseURL string
	DBMaxConns  int
	CORSOrigins []string

	Apify      ApifyConfig
	BuiltWith  BuiltWithConfig
	SerpAPI    SerpAPIConfig
	DataForSEO DataForSEOConfig
	OpenRouter OpenRouterConfig

	// VendorTimeout bounds every single outbound vendor HTTP call.
	VendorTimeout time.Duration
}

type ApifyConfig struct {
	Token          string
	ActorID        string
	BaseURL        string
	PollInterval   time.Duration
	MaxPolls       int
	FallbackPolicy domain.FallbackPolicy
}

type BuiltWithConfig struct {
	APIKey    string
	BaseURL   string
	CacheSize int
	CacheTTL  time.Duration
}

type SerpAPIConfig struct {
	APIKey       string
	BaseURL      string
	CallInterval time.Duration
}

type DataForSEOConfig struct {
	Login    string
	Password string
	BaseURL  string
}

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

func (c Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads an optional .env file and then the process environment.
// Missing vendor credentials are not an error; the matching adapter degrades.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Env:         getenv("APP_ENV", "development"),
		ListenAddr:  getenv("LISTEN_ADDR", ":8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  getenvInt("DB_MAX_CONNS", 10),
		CORSOrigins: getenvList("CORS_ORIGINS", []string{"*"}),
		Apify: ApifyConfig{
			Token:        os.Getenv("APIFY_API_TOKEN"),
			ActorID:      getenv("APIFY_ACTOR_ID", "heLi1j7hzjC2gFlIx"),
			BaseURL:      getenv("APIFY_BASE_URL", "https://api.apify.com"),
			PollInterval: getenvDuration("APIFY_POLL_INTERVAL", 5*time.Second),
			MaxPolls:     getenvInt("APIFY_MAX_POLLS", 60),
		},
		BuiltWith: BuiltWithConfig{
			APIKey:    os.Getenv("BUILTWITH_API_KEY"),
			BaseURL:   getenv("BUILTWITH_BASE_URL", "https://api.builtwith.com"),
			CacheSize: getenvInt("BUILTWITH_CACHE_SIZE", 256),
			CacheTTL:  getenvDuration("BUILTWITH_CACHE_TTL", 6*time.Hour),
		},
		SerpAPI: SerpAPIConfig{
			APIKey:       os.Getenv("SERPAPI_API_KEY"),
			BaseURL:      getenv("SERPAPI_BASE_URL", "https://serpapi.com"),
			CallInterval: getenvDuration("TRENDS_CALL_INTERVAL", 2*time.Second),
		},
		DataForSEO: DataForSEOConfig{
			Login:    os.Getenv("DATAFORSEO_LOGIN"),
			Password: os.Getenv("DATAFORSEO_PASSWORD"),
			BaseURL:  getenv("DATAFORSEO_BASE_URL", "https://api.dataforseo.com"),
		},
		OpenRouter: OpenRouterConfig{
			APIKey:  os.Getenv("OPENROUTER_API_KEY"),
			BaseURL: getenv("OPENROUTER_BASE_URL", "https://openrouter.ai"),
			Model:   getenv("OPENROUTER_MODEL", "anthropic/claude-3.5-sonnet"),
		},
		VendorTimeout: getenvDuration("VENDOR_HTTP_TIMEOUT", 30*time.Second),
	}

	policy, err := parsePolicy(getenv("TRAFFIC_FALLBACK_POLICY", string(domain.PolicyStrict)))
	cfg.Apify.FallbackPolicy = policy
	return cfg, err
}

func parsePolicy(v string) (domain.FallbackPolicy, error) {
	switch p := domain.FallbackPolicy(strings.ToLower(strings.TrimSpace(v))); p {
	case domain.PolicyStrict, domain.PolicyPlaceholder:
		return p, nil
	default:
		return domain.PolicyStrict, fmt.Errorf("TRAFFIC_FALLBACK_POLICY: unknown policy %q", v)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && out > 0 {
			return out
		}
	}
	return def
}

// getenvDuration accepts Go durations ("5s") and bare seconds ("5").
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d >= 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}

func getenvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
