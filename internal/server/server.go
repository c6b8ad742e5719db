// Package server hosts the HTTP surface around the rendering pipeline: a
// chi router serving registered pages, static files, a health endpoint,
// and in development mode a WebSocket live-reload channel fed by the file
// watcher.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/verdantweb/verdant/internal/config"
	"github.com/verdantweb/verdant/internal/document"
	"github.com/verdantweb/verdant/internal/logging"
	"github.com/verdantweb/verdant/internal/page"
	"github.com/verdantweb/verdant/internal/theme"
	"github.com/verdantweb/verdant/internal/watcher"
)

// Server serves an application's registered pages.
type Server struct {
	config *config.Config
	logger *slog.Logger
	pages  *page.Registry

	mu    sync.RWMutex
	theme *theme.Theme

	reload *reloadHub
}

// New builds a server. When no theme file is configured the built-in
// default theme is used.
func New(cfg *config.Config, logger *slog.Logger, pages *page.Registry) (*Server, error) {
	th := theme.Default()
	if cfg.Theme.File != "" {
		loaded, err := theme.Load(cfg.Theme.File)
		if err != nil {
			return nil, fmt.Errorf("loading theme: %w", err)
		}
		th = loaded
	}

	s := &Server{
		config: cfg,
		logger: logging.WithComponent(logger, "server"),
		pages:  pages,
		theme:  th,
	}
	if cfg.Dev.LiveReload {
		s.reload = newReloadHub(cfg.Server.AllowedOrigins, s.logger)
	}
	return s, nil
}

// site derives the document-level site metadata from configuration.
func (s *Server) site() document.Site {
	return document.Site{
		Name:         s.config.Site.Name,
		Lang:         s.config.Site.Lang,
		ThemeVariant: s.config.Theme.Variant,
	}
}

// currentTheme returns the active theme; dev mode may swap it on file
// change.
func (s *Server) currentTheme() *theme.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Server) setTheme(th *theme.Theme) {
	s.mu.Lock()
	s.theme = th
	s.mu.Unlock()
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(s.config.Server.StaticDir))))

	if s.reload != nil {
		r.Get(reloadPath, s.reload.handleSocket)
	}

	for _, route := range s.pages.Routes() {
		r.Get(route.Pattern, s.pageHandler(route))
	}
	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully. In
// dev mode it also starts the file watcher feeding live reloads.
func (s *Server) Start(ctx context.Context) error {
	if s.config.Dev.LiveReload {
		if err := s.startWatcher(ctx); err != nil {
			return fmt.Errorf("starting file watcher: %w", err)
		}
	}

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "live_reload", s.config.Dev.LiveReload)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// startWatcher watches the configured paths and broadcasts a reload on
// every debounced change batch. Theme file changes additionally reload
// the theme in place.
func (s *Server) startWatcher(ctx context.Context) error {
	fw, err := watcher.New(200 * time.Millisecond)
	if err != nil {
		return err
	}
	fw.AddFilter(watcher.ExtFilter(".yml", ".yaml", ".css", ".js"))
	for _, p := range s.config.Dev.WatchPaths {
		if err := fw.AddRecursive(p); err != nil {
			s.logger.Warn("cannot watch path", "path", p, "error", err)
		}
	}

	themeFile := s.config.Theme.File
	fw.AddHandler(func(events []watcher.ChangeEvent) {
		for _, ev := range events {
			if themeFile != "" && ev.Path == themeFile {
				if th, err := theme.Load(themeFile); err == nil {
					s.setTheme(th)
					s.logger.Info("theme reloaded", "file", themeFile)
				} else {
					s.logger.Warn("theme reload failed", "error", err)
				}
			}
		}
		s.reload.broadcast(ctx)
	})

	fw.Start(ctx)
	go func() {
		<-ctx.Done()
		fw.Stop()
	}()
	return nil
}

// logRequests is a minimal structured request log middleware.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
