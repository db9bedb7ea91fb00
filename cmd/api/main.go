package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"zenith-planner/config"
	_ "zenith-planner/docs" // Swagger docs
	"zenith-planner/internal/httpserver"
	"zenith-planner/internal/task/extraction"
	"zenith-planner/internal/task/repository/postgre"
	"zenith-planner/pkg/datemath"
	"zenith-planner/pkg/gemini"
	"zenith-planner/pkg/googleauth"
	"zenith-planner/pkg/log"
)

// @title       Zenith Planner API
// @description Personal task assistant: natural language task capture with Gemini, IST-aware scheduling, recurrence, and daily digests.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Zenith Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres connection: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ping postgres: %v", err)
	}
	if err := postgre.InitSchema(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to initialize schema: %v", err)
	}
	logger.Info(ctx, "✅ Postgres ready")

	// 4. DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Planner.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Gemini extractor
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	if cfg.Gemini.APIURL != "" {
		geminiClient.SetAPIURL(cfg.Gemini.APIURL)
	}
	extractor := extraction.NewGemini(logger, geminiClient)
	logger.Infof(ctx, "✅ Gemini extractor ready (model=%s)", geminiClient.Model())

	// 6. Google login (optional)
	var googleClient *googleauth.Client
	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		googleClient = googleauth.New(googleauth.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
		})
		logger.Info(ctx, "✅ Google login configured")
	} else {
		logger.Warn(ctx, "Google login not configured, using header-based identity")
	}

	// 7. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		PostgresDB:    db,
		Extractor:     extractor,
		DateMath:      dateMathParser,
		GoogleClient:  googleClient,
		SessionSecret: cfg.Planner.SessionSecret,
		RateLimit:     cfg.Planner.RateLimitPerMin,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server error: %v", err)
	}

	logger.Info(ctx, "Zenith Planner stopped")
}
