package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/npezzotti/go-campaigns/internal/config"
	"github.com/npezzotti/go-campaigns/internal/database"
	"github.com/npezzotti/go-campaigns/internal/stats"
	"github.com/teris-io/shortid"
)

type CampaignApp struct {
	log        *log.Logger
	db         database.CampaignRepository
	mux        *http.Server
	stats      stats.StatsProvider
	signingKey []byte
}

func NewCampaignApp(mux *http.ServeMux, logger *log.Logger, db database.CampaignRepository, statsProvider stats.StatsProvider, cfg *config.Config) *CampaignApp {
	s := &CampaignApp{
		log:        logger,
		db:         db,
		stats:      statsProvider,
		signingKey: cfg.SigningKey,
	}

	mux.HandleFunc("GET /healthz", s.healthCheck)
	mux.HandleFunc("POST /api/auth/register", s.createAccount)
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.HandleFunc("GET /api/auth/session", s.authMiddleware(s.session))
	mux.Handle("GET /api/auth/logout", s.authMiddleware(s.logout))
	mux.Handle("GET /api/account", s.authMiddleware(s.account))
	mux.Handle("POST /api/campaigns", s.authMiddleware(s.createCampaign))
	mux.HandleFunc("GET /api/campaigns", s.getCampaigns)
	mux.Handle("POST /api/memberships", s.authMiddleware(s.createMembership))
	mux.Handle("POST /api/characters", s.authMiddleware(s.createCharacter))
	mux.Handle("GET /api/characters", s.authMiddleware(s.getCharacters))
	mux.Handle("POST /api/characters/assign", s.authMiddleware(s.assignCharacter))
	mux.Handle("POST /api/events", s.authMiddleware(s.createEvent))
	mux.HandleFunc("GET /api/events", s.getEvents)

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept"}),
		handlers.AllowCredentials(),
	)(mux)

	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.mux = srv
	return s
}

func (s *CampaignApp) generateShortId() (string, error) {
	return shortid.Generate()
}

func (s *CampaignApp) Start() error {
	s.log.Printf("starting server on %s\n", s.mux.Addr)
	return s.mux.ListenAndServe()
}

func (s *CampaignApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.mux.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
