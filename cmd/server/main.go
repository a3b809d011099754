package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"siteintel/internal/adapters/apify"
	"siteintel/internal/adapters/builtwith"
	"siteintel/internal/adapters/dataforseo"
	httpadapter "siteintel/internal/adapters/http"
	"siteintel/internal/adapters/memory"
	"siteintel/internal/adapters/openrouter"
	pg "siteintel/internal/adapters/postgres"
	"siteintel/internal/adapters/serpapi"
	"siteintel/internal/config"
	"siteintel/internal/logger"
	"siteintel/internal/ports"
	"siteintel/internal/services/analysis"
	"siteintel/internal/services/chat"
	"siteintel/internal/services/history"
	"siteintel/internal/services/keywords"
	"siteintel/internal/services/trends"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "siteintel: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, cfgErr := config.Load()
	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: cfg.IsDevelopment()})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if cfgErr != nil {
		return fmt.Errorf("config: %w", cfgErr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Persistence
	var sessions ports.SessionRepository
	storeKind := "memory"
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, sessions are kept in memory and lost on restart")
		sessions = memory.NewSessionStore()
	} else {
		db, err := pg.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer db.Close()
		if err := db.Migrate(ctx, log); err != nil {
			return fmt.Errorf("db migrate: %w", err)
		}
		sessions = pg.NewSessionStore(db.Pool)
		storeKind = "postgres"
	}

	// Vendors
	traffic := apify.New(apify.Config{
		Token:        cfg.Apify.Token,
		ActorID:      cfg.Apify.ActorID,
		BaseURL:      cfg.Apify.BaseURL,
		Timeout:      cfg.VendorTimeout,
		PollInterval: cfg.Apify.PollInterval,
		MaxPolls:     cfg.Apify.MaxPolls,
	}, nil, log)
	stacks := builtwith.New(builtwith.Config{
		APIKey:    cfg.BuiltWith.APIKey,
		BaseURL:   cfg.BuiltWith.BaseURL,
		Timeout:   cfg.VendorTimeout,
		CacheSize: cfg.BuiltWith.CacheSize,
		CacheTTL:  cfg.BuiltWith.CacheTTL,
	}, log)
	trendsAPI := serpapi.New(serpapi.Config{
		APIKey:       cfg.SerpAPI.APIKey,
		BaseURL:      cfg.SerpAPI.BaseURL,
		Timeout:      cfg.VendorTimeout,
		CallInterval: cfg.SerpAPI.CallInterval,
	}, log)
	volumes := dataforseo.New(dataforseo.Config{
		Login:    cfg.DataForSEO.Login,
		Password: cfg.DataForSEO.Password,
		BaseURL:  cfg.DataForSEO.BaseURL,
		Timeout:  cfg.VendorTimeout,
	}, log)
	llm := openrouter.New(openrouter.Config{
		APIKey:  cfg.OpenRouter.APIKey,
		BaseURL: cfg.OpenRouter.BaseURL,
		Model:   cfg.OpenRouter.Model,
		Timeout: cfg.VendorTimeout,
	}, log)

	vendors := map[string]ports.Configured{
		"apify":      traffic,
		"builtwith":  stacks,
		"serpapi":    trendsAPI,
		"dataforseo": volumes,
		"openrouter": llm,
	}
	for name, v := range vendors {
		if !v.Configured() {
			log.Warn("vendor credentials missing", logger.String("vendor", name))
		}
	}

	srv := httpadapter.New(httpadapter.Deps{
		Analysis:    analysis.New(sessions, traffic, stacks, cfg.Apify.FallbackPolicy, log),
		Chat:        chat.New(sessions, llm, log),
		Trends:      trends.New(trendsAPI, log),
		Keywords:    keywords.New(volumes, log),
		History:     history.New(sessions, log),
		Store:       sessions,
		StoreKind:   storeKind,
		Vendors:     vendors,
		CORSOrigins: cfg.CORSOrigins,
		Version:     version,
		Log:         log,
	})
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		// Stage 1 may poll the traffic actor for several minutes.
		WriteTimeout: 6 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	log.Info("listening", logger.String("addr", cfg.ListenAddr), logger.String("store", storeKind), logger.String("version", version))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", logger.String("signal", sig.String()))
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 15*time.Second)
		defer done()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}
