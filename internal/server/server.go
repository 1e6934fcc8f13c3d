// Package server exposes the schedule engine's derivation operations over a
// small JSON HTTP API, for the web UI and other thin clients.
package server

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/julianstephens/levos/internal/catalog"
	"github.com/julianstephens/levos/internal/scenario"
)

// Server holds the engine components the API dispatches to.
type Server struct {
	catalog  *catalog.Catalog
	expander *scenario.Expander
}

func New(c *catalog.Catalog) *Server {
	return &Server{
		catalog:  c,
		expander: scenario.NewExpander(c),
	}
}

// Router builds the HTTP handler, including CORS and request logging
// middleware. allowedOrigins empty means any origin, which suits the
// single-user local deployment.
func (s *Server) Router(allowedOrigins []string, logWriter io.Writer) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.HandleFunc("/schedule/auto-blocks", s.autoBlocksHandler).Methods("POST")
	r.HandleFunc("/schedule/apply-scenario", s.applyScenarioHandler).Methods("POST")
	r.HandleFunc("/schedule/detect-scenario", s.detectScenarioHandler).Methods("POST")

	origins := handlers.AllowedOrigins([]string{"*"})
	if len(allowedOrigins) > 0 {
		origins = handlers.AllowedOrigins(allowedOrigins)
	}
	cors := handlers.CORS(
		origins,
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	var h http.Handler = cors(r)
	if logWriter != nil {
		h = handlers.LoggingHandler(logWriter, h)
	}
	return h
}
