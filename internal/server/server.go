// Package server serves the arena's web views and, optionally, the terminal
// view over SSH.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/ssh"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"value-arena/internal/catalog"
)

const shutdownTimeout = 5 * time.Second

type Config struct {
	Host    string
	WebPort string
	// SSHPort disables the terminal view when empty.
	SSHPort      string
	HostKeyPath  string
	GlamourStyle string
}

type Server struct {
	cfg    Config
	logger *zap.Logger
	site   *site
	web    *http.Server
	ssh    *ssh.Server
}

func New(cfg Config, c *catalog.Catalog, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.WebPort == "" {
		cfg.WebPort = "8081"
	}

	st, err := newSite(c, logger)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		site:   st,
		web: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, cfg.WebPort),
			Handler:           st.routes(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	if cfg.SSHPort != "" {
		s.ssh, err = newSSHServer(cfg, c, logger)
		if err != nil {
			return nil, fmt.Errorf("create ssh server: %w", err)
		}
	}
	return s, nil
}

// Handler returns the HTTP handler (useful for testing).
func (s *Server) Handler() http.Handler {
	return s.web.Handler
}

// Render writes the HTML served at path and returns its status code.
func (s *Server) Render(w io.Writer, path string) (int, error) {
	return s.site.renderPage(w, path)
}

// Run serves until ctx is cancelled or a listener fails, then shuts both
// listeners down.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("web server listening", zap.String("addr", s.web.Addr))
		if err := s.web.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web server: %w", err)
		}
		return nil
	})

	if s.ssh != nil {
		g.Go(func() error {
			s.logger.Info("ssh server listening", zap.String("addr", s.ssh.Addr))
			if err := s.ssh.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
				return fmt.Errorf("ssh server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if err := s.web.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("web shutdown: %w", err))
		}
		if s.ssh != nil {
			if err := s.ssh.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
				errs = append(errs, fmt.Errorf("ssh shutdown: %w", err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
