// Package service contains the business logic for the travel catalog API.
// Services validate inputs, apply field coercion rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkusuma/travelcatalog/internal/domain"
	"github.com/nkusuma/travelcatalog/internal/repo"
)

// DestinationService implements business logic for Destination operations.
// Its main responsibility is normalizing optional fields: a zero rating or a
// blank notes/budget value is stored as NULL, never as 0 or "".
type DestinationService struct {
	repo repo.DestinationRepo
}

// NewDestinationService constructs a DestinationService backed by the provided repo.
func NewDestinationService(r repo.DestinationRepo) *DestinationService {
	return &DestinationService{repo: r}
}

// Create validates and persists a new destination.
// Visited defaults to false unless explicitly set by the caller.
func (s *DestinationService) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	if err := validateRequired(dest.Name, dest.Country, dest.City, dest.Description); err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Create: %w", err)
	}

	dest.Rating = normalizeRating(dest.Rating)
	dest.Notes = normalizeText(dest.Notes)
	dest.Budget = normalizeText(dest.Budget)

	created, err := s.repo.Create(ctx, dest)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single destination by ID.
func (s *DestinationService) GetByID(ctx context.Context, id int64) (domain.Destination, error) {
	dest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.GetByID: %w", err)
	}
	return dest, nil
}

// List returns all destinations, newest first.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	dests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.List: %w", err)
	}
	return dests, nil
}

// Update validates and replaces the editable fields of an existing
// destination. A nil upd.Visited leaves the stored flag unchanged; all other
// optional fields are overwritten with their (normalized) new value.
func (s *DestinationService) Update(ctx context.Context, id int64, upd domain.DestinationUpdate) (domain.Destination, error) {
	if err := validateRequired(upd.Name, upd.Country, upd.City, upd.Description); err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Update: %w", err)
	}

	upd.Rating = normalizeRating(upd.Rating)
	upd.Notes = normalizeText(upd.Notes)
	upd.Budget = normalizeText(upd.Budget)

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.DestinationService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a destination by ID.
func (s *DestinationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.DestinationService.Delete: %w", err)
	}
	return nil
}

// validateRequired checks the four fields every destination must carry.
func validateRequired(name, country, city, description string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case strings.TrimSpace(country) == "":
		return fmt.Errorf("%w: country is required", domain.ErrValidation)
	case strings.TrimSpace(city) == "":
		return fmt.Errorf("%w: city is required", domain.ErrValidation)
	case strings.TrimSpace(description) == "":
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	return nil
}

// normalizeRating drops an unset or zero rating. Any other integer is kept
// as-is — the range is intentionally not validated (the views render whatever
// count of stars is stored).
func normalizeRating(r *int) *int {
	if r == nil || *r == 0 {
		return nil
	}
	return r
}

// normalizeText collapses a missing or blank optional text field to nil so the
// store records an explicit NULL instead of an empty string.
func normalizeText(t *string) *string {
	if t == nil || strings.TrimSpace(*t) == "" {
		return nil
	}
	return t
}
