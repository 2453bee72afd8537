package ui

import (
	"embed"
	"fmt"
	"html/template"

	"surveylens/app"
	"surveylens/internal/config"
	"surveylens/internal/i18n"
	"surveylens/internal/session"
	"surveylens/ports"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Server is the web front end: one gin router serving the Home and
// Analyzer pages plus the upload and analyze actions.
type Server struct {
	router     *gin.Engine
	reader     ports.TableReader
	store      *session.Store
	summarizer ports.Summarizer
	frequency  ports.FrequencyBuilder
	analysis   *app.AnalysisService
	bundle     *i18n.Bundle
	templates  *template.Template
	cfg        *config.Config
}

// NewServer wires the collaborators and parses the embedded templates.
func NewServer(cfg *config.Config, reader ports.TableReader, store *session.Store,
	summarizer ports.Summarizer, frequency ports.FrequencyBuilder,
	analysis *app.AnalysisService, bundle *i18n.Bundle) (*Server, error) {

	gin.SetMode(cfg.Server.GinMode)

	funcMap := template.FuncMap{
		"f2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"f3": func(v float64) string { return fmt.Sprintf("%.3f", v) },
		"f4": func(v float64) string { return fmt.Sprintf("%.4f", v) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:     gin.Default(),
		reader:     reader,
		store:      store,
		summarizer: summarizer,
		frequency:  frequency,
		analysis:   analysis,
		bundle:     bundle,
		templates:  templates,
		cfg:        cfg,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHome)
	s.router.GET("/analyzer", s.handleAnalyzer)
	s.router.POST("/upload", s.handleUpload)
	s.router.POST("/analyze", s.handleAnalyze)
}

// Start runs the HTTP server on the given address.
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
