package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nkusuma/travelcatalog/internal/domain"
)

// destinationRequest is the wire shape shared by create and update bodies.
// Rating accepts either a JSON number or a numeric string, matching clients
// that submit form values unconverted. Visited is a pointer so an update can
// distinguish "set explicitly" from "omitted" (omitted leaves the stored flag
// unchanged); on create an omitted visited simply defaults to false.
type destinationRequest struct {
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	City        string   `json:"city"`
	Description string   `json:"description"`
	Visited     *bool    `json:"visited"`
	Rating      *flexInt `json:"rating"`
	Notes       *string  `json:"notes"`
	Budget      *string  `json:"budget"`
}

// flexInt is an int that unmarshals from either a JSON number or a numeric
// string ("4" and 4 both decode to 4). An empty string decodes to zero, which
// the service layer treats the same as an absent rating.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

// ListDestinations handles GET /destinations.
// Records are returned newest first.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	dests, err := s.destinations.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list destinations", "error", err)
		storeFailure(w, r, "Failed to fetch destinations")
		return
	}

	if dests == nil {
		dests = []domain.Destination{}
	}
	writeJSON(w, r, http.StatusOK, dests)
}

// CreateDestination handles POST /destinations.
func (s *Server) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var req destinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	created, err := s.destinations.Create(r.Context(), requestToDestination(req))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationFailure(w, r, err)
			return
		}
		slog.ErrorContext(r.Context(), "create destination", "error", err)
		storeFailure(w, r, "Failed to create destination")
		return
	}

	writeJSON(w, r, http.StatusCreated, created)
}

// GetDestination handles GET /destinations/{id}.
// A non-numeric or unmatched id is reported as not found, never as a server error.
func (s *Server) GetDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := destinationID(r)
	if !ok {
		notFound(w, r)
		return
	}

	dest, err := s.destinations.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, r)
			return
		}
		slog.ErrorContext(r.Context(), "get destination", "error", err, "id", id)
		storeFailure(w, r, "Failed to fetch destination")
		return
	}

	writeJSON(w, r, http.StatusOK, dest)
}

// UpdateDestination handles PUT /destinations/{id}.
// The body carries the full field set; optional fields that are omitted are
// cleared, except visited, which is left unchanged when omitted.
func (s *Server) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := destinationID(r)
	if !ok {
		notFound(w, r)
		return
	}

	var req destinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	updated, err := s.destinations.Update(r.Context(), id, requestToUpdate(req))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, r)
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			validationFailure(w, r, err)
			return
		}
		slog.ErrorContext(r.Context(), "update destination", "error", err, "id", id)
		storeFailure(w, r, "Failed to update destination")
		return
	}

	writeJSON(w, r, http.StatusOK, updated)
}

// DeleteDestination handles DELETE /destinations/{id}.
// Deleting an id that does not exist is a 404, never a silent success.
func (s *Server) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := destinationID(r)
	if !ok {
		notFound(w, r)
		return
	}

	if err := s.destinations.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, r)
			return
		}
		slog.ErrorContext(r.Context(), "delete destination", "error", err, "id", id)
		storeFailure(w, r, "Failed to delete destination")
		return
	}

	writeJSON(w, r, http.StatusOK, messageBody{Message: "Destination deleted"})
}

// --- mapping helpers --------------------------------------------------------

// destinationID parses the {id} path parameter.
func destinationID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// requestToDestination converts a create body into a domain.Destination.
// Visited defaults to false when not supplied.
func requestToDestination(req destinationRequest) domain.Destination {
	d := domain.Destination{
		Name:        req.Name,
		Country:     req.Country,
		City:        req.City,
		Description: req.Description,
		Rating:      ratingValue(req.Rating),
		Notes:       req.Notes,
		Budget:      req.Budget,
	}
	if req.Visited != nil {
		d.Visited = *req.Visited
	}
	return d
}

// requestToUpdate converts an update body into a domain.DestinationUpdate,
// preserving the visited tri-state.
func requestToUpdate(req destinationRequest) domain.DestinationUpdate {
	return domain.DestinationUpdate{
		Name:        req.Name,
		Country:     req.Country,
		City:        req.City,
		Description: req.Description,
		Visited:     req.Visited,
		Rating:      ratingValue(req.Rating),
		Notes:       req.Notes,
		Budget:      req.Budget,
	}
}

// ratingValue converts the flexible wire rating into the domain pointer form.
func ratingValue(f *flexInt) *int {
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}
