// Package server exposes the invoice document pipeline over HTTP: a demo
// page, the generation endpoint with its download/print/open dispatch
// semantics, and the swagger UI.
package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/bilingual-invoicing/pkg/fonts"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Server routes HTTP requests onto the invoice pipeline.
type Server struct {
	router *mux.Router
	logger *zap.Logger
	fonts  fonts.Provider
}

// New builds the server. A nil logger disables logging; a nil provider
// renders every document with the default font.
func New(logger *zap.Logger, provider fonts.Provider) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if provider == nil {
		provider = fonts.Static{}
	}
	s := &Server{router: mux.NewRouter(), logger: logger, fonts: provider}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(s.requestLog)
	s.router.HandleFunc("/", s.index).Methods(http.MethodGet)
	s.router.HandleFunc("/generate-invoice", s.generateInvoice).Methods(http.MethodPost)
	s.router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
}
