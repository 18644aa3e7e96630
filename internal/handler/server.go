// Package handler implements the JSON HTTP handlers for the travel catalog
// API. All handlers are methods on Server. Methods are split into
// resource-specific files (destination.go, health.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nkusuma/travelcatalog/internal/domain"
	"github.com/nkusuma/travelcatalog/spec"
)

// DestinationServicer defines the business operations the destination handler
// depends on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type DestinationServicer interface {
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	GetByID(ctx context.Context, id int64) (domain.Destination, error)
	List(ctx context.Context) ([]domain.Destination, error)
	Update(ctx context.Context, id int64, upd domain.DestinationUpdate) (domain.Destination, error)
	Delete(ctx context.Context, id int64) error
}

// Server holds the dependencies shared by all API handlers.
type Server struct {
	destinations DestinationServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(destinations DestinationServicer) *Server {
	return &Server{destinations: destinations}
}

// Routes returns the chi router for the JSON API surface.
// Mount it at the root of the application router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", s.ListDestinations)
		r.Post("/", s.CreateDestination)
		r.Get("/{id}", s.GetDestination)
		r.Put("/{id}", s.UpdateDestination)
		r.Delete("/{id}", s.DeleteDestination)
	})

	return r
}

// GetOpenAPI serves the embedded OpenAPI document.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}

// writeJSON encodes v as the response body with the given status code.
// Encoding failures are logged; at that point the status line is already
// written, so nothing more can be sent to the client.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "encode response", "error", err)
	}
}
