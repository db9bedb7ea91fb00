package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"zenith-planner/internal/task/extraction"
	"zenith-planner/pkg/datemath"
	"zenith-planner/pkg/googleauth"
	"zenith-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Task domain
	postgresDB *sql.DB
	extractor  extraction.Extractor
	dateMath   *datemath.Parser

	// Auth
	googleClient  *googleauth.Client
	sessionSecret string
	rateLimit     int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Extractor  extraction.Extractor
	DateMath   *datemath.Parser

	// GoogleClient may be nil; login routes are skipped without it.
	GoogleClient  *googleauth.Client
	SessionSecret string
	RateLimit     int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.Default(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		postgresDB:    cfg.PostgresDB,
		extractor:     cfg.Extractor,
		dateMath:      cfg.DateMath,
		googleClient:  cfg.GoogleClient,
		sessionSecret: cfg.SessionSecret,
		rateLimit:     cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.extractor == nil {
		return errors.New("extractor is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
