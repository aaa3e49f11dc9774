package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/msantanna/atelier.page/internal/auth/credential"
	"github.com/msantanna/atelier.page/internal/invoice"
	"github.com/msantanna/atelier.page/internal/invoice/form"
	"github.com/msantanna/atelier.page/internal/platform/config"
	"github.com/msantanna/atelier.page/internal/session"
	"github.com/msantanna/atelier.page/internal/storage/sqlite"
)

// Config holds the site process configuration.
type Config struct {
	HTTPAddr      string        `env:"ATELIER_HTTP_ADDR" envDefault:":8080"`
	DBPath        string        `env:"ATELIER_DB_PATH" envDefault:"data/atelier.db"`
	SessionSecret string        `env:"ATELIER_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"ATELIER_SESSION_TTL" envDefault:"24h"`
	SubmitTimeout time.Duration `env:"ATELIER_SUBMIT_TIMEOUT" envDefault:"15s"`
}

// LoadConfig reads the site configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Server is the site HTTP server.
type Server struct {
	httpServer *http.Server
	store      *sqlite.Store
}

// NewServer opens the store and wires the full site handler.
func NewServer(cfg Config) (*Server, error) {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		// Sessions signed with an ephemeral secret do not survive restarts.
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		log.Printf("web: ATELIER_SESSION_SECRET not set, using ephemeral secret %s...", hex.EncodeToString(secret[:4]))
	}

	sessions, err := session.NewManager(secret, cfg.SessionTTL)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("create session manager: %w", err)
	}

	verifier := credential.NewStoreVerifier(store)
	service := invoice.NewService(store)
	forms := form.NewRegistry(service, cfg.SubmitTimeout)

	handler, err := NewHandler(sessions, verifier, store, forms)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("create handler: %w", err)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           handler.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		store: store,
	}, nil
}

// Run serves HTTP until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errs := make(chan error, 1)
	go func() {
		log.Printf("web: listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
			return
		}
		errs <- nil
	}()

	select {
	case err := <-errs:
		_ = s.store.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		_ = s.store.Close()
		return fmt.Errorf("shutdown http server: %w", err)
	}
	<-errs
	return s.store.Close()
}
