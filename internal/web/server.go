package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"chipbar/internal/filterbar"
	"chipbar/internal/model"
	"chipbar/internal/sidebar"
)

//go:embed templates/*
var templateFS embed.FS

//go:embed help.md
var helpMD string

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// Config holds the web mode settings.
type Config struct {
	Addr        string // Listen address, default ":8080"
	Title       string
	Options     model.Options
	SidebarPath string // Optional sidebar file, reloaded on change
	Logger      *slog.Logger
}

// Server renders the listing page and the filter bar endpoints.
type Server struct {
	cfg    Config
	ctrl   *filterbar.Controller
	logger *slog.Logger

	mu    sync.RWMutex
	links []model.Link
}

// NewServer loads the sidebar and prepares the controller.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Title == "" {
		cfg.Title = "Samples"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	links := sidebar.Default()
	if cfg.SidebarPath != "" {
		var err error
		links, err = sidebar.Load(cfg.SidebarPath)
		if err != nil {
			return nil, err
		}
	}

	return &Server{
		cfg:    cfg,
		ctrl:   filterbar.NewController(cfg.Options),
		logger: cfg.Logger,
		links:  links,
	}, nil
}

// SetLinks replaces the sidebar.
func (s *Server) SetLinks(links []model.Link) {
	s.mu.Lock()
	s.links = links
	s.mu.Unlock()
}

func (s *Server) sidebarLinks() []model.Link {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.links
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// API Endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/remove", s.handleAPIRemove)
	mux.HandleFunc("/api/help", s.handleHelp)

	// Chip close controls
	mux.HandleFunc(filterbar.RemovePath, s.handleRemove)

	// Every other path is a listing page
	mux.HandleFunc("/", s.handlePage)

	return s.logRequests(mux)
}

// ListenAndServe serves until ctx is cancelled, hot-reloading the sidebar file if one is set.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if s.cfg.SidebarPath != "" {
		go func() {
			if err := sidebar.Watch(ctx, s.cfg.SidebarPath, s.logger, s.SetLinks); err != nil {
				s.logger.Warn("sidebar watch stopped", "error", err)
			}
		}()
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// StartServer starts the web server and blocks.
func StartServer(cfg Config) {
	s, err := NewServer(cfg)
	if err != nil {
		log.Fatal(err)
	}

	base := "http://localhost" + s.cfg.Addr
	if !strings.HasPrefix(s.cfg.Addr, ":") {
		base = "http://" + s.cfg.Addr
	}
	fmt.Printf("Starting chipbar web server at %s\n", base)
	fmt.Printf("Try %s/samples?ScientificName=Homo+sapiens&LIBRARYTYPE=Ribo-Seq in your browser.\n", base)

	if err := s.ListenAndServe(context.Background()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

type pageData struct {
	Title   string
	Chips   template.HTML
	Links   []model.Link
	Version string
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rendering := s.ctrl.Render(r.URL.RequestURI(), s.sidebarLinks())
	chips, err := filterbar.HTML(rendering)
	if err != nil {
		s.logger.Error("render chips", "path", r.URL.Path, "error", err)
		http.Error(w, "failed to render filters", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = pageTmpl.Execute(w, pageData{
		Title:   s.cfg.Title,
		Chips:   chips,
		Links:   rendering.Links,
		Version: model.Version,
	})
	if err != nil {
		s.logger.Error("render page", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	id := r.URL.Query().Get("id")
	if from == "" || id == "" {
		http.Error(w, "from and id are required", http.StatusBadRequest)
		return
	}
	if !isLocalPath(from) {
		http.Error(w, "from must be a local path", http.StatusBadRequest)
		return
	}

	nav, err := s.ctrl.Remove(from, id)
	if err != nil {
		s.writeRemoveError(w, err)
		return
	}

	http.Redirect(w, r, nav.URL, http.StatusSeeOther)
}

// isLocalPath reports whether from is a same-site absolute path.
// Browsers read `/\` like "//", so backslashes are rejected outright.
func isLocalPath(from string) bool {
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.Contains(from, "\\") {
		return false
	}
	u, err := url.Parse(from)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

type renderResponse struct {
	model.Rendering
	HTML    string `json:"HTML"`
	Version string `json:"Version"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}

	rendering := s.ctrl.Render(raw, s.sidebarLinks())
	chips, err := filterbar.HTML(rendering)
	if err != nil {
		s.logger.Error("render chips", "url", raw, "error", err)
		http.Error(w, "failed to render filters", http.StatusInternalServerError)
		return
	}
	writeJSON(w, renderResponse{
		Rendering: rendering,
		HTML:      string(chips),
		Version:   model.Version,
	})
}

func (s *Server) handleAPIRemove(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	id := r.URL.Query().Get("id")
	if raw == "" || id == "" {
		http.Error(w, "url and id are required", http.StatusBadRequest)
		return
	}

	nav, err := s.ctrl.Remove(raw, id)
	if err != nil {
		s.writeRemoveError(w, err)
		return
	}
	writeJSON(w, nav)
}

func (s *Server) writeRemoveError(w http.ResponseWriter, err error) {
	if errors.Is(err, filterbar.ErrUnknownFilter) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.logger.Error("remove filter", "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	// Use the embedded help content
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)

	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(text))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"uri", r.URL.RequestURI(),
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
