// Package web serves the HTML views of the travel catalog: the landing page,
// the destination list/detail/create/edit pages, the explore page, and the 404
// page. Views are rendered server-side from templates; all state a page needs
// is computed per request, so there is no shared mutable view state.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nkusuma/travelcatalog/internal/countries"
	"github.com/nkusuma/travelcatalog/internal/domain"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// DestinationServicer defines the destination operations the views depend on.
// It is satisfied by *service.DestinationService.
type DestinationServicer interface {
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	GetByID(ctx context.Context, id int64) (domain.Destination, error)
	List(ctx context.Context) ([]domain.Destination, error)
	Update(ctx context.Context, id int64, upd domain.DestinationUpdate) (domain.Destination, error)
	Delete(ctx context.Context, id int64) error
}

// CountrySource provides the explore view's reference data.
// It is satisfied by *countries.Client.
type CountrySource interface {
	FetchOrSample(ctx context.Context) ([]domain.Country, bool)
}

// Handlers renders all HTML views.
type Handlers struct {
	destinations DestinationServicer
	countries    CountrySource

	home     *template.Template
	list     *template.Template
	detail   *template.Template
	form     *template.Template
	explore  *template.Template
	notfound *template.Template
}

// NewHandlers parses all page templates and constructs the view handlers.
// Template parse errors panic at startup, never at request time.
func NewHandlers(destinations DestinationServicer, countrySource CountrySource) *Handlers {
	return &Handlers{
		destinations: destinations,
		countries:    countrySource,
		home:         parsePage("home.tmpl"),
		list:         parsePage("destinations.tmpl"),
		detail:       parsePage("destination_detail.tmpl"),
		form:         parsePage("destination_form.tmpl"),
		explore:      parsePage("explore.tmpl"),
		notfound:     parsePage("notfound.tmpl"),
	}
}

// Routes returns the chi router for the HTML surface.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Home)
	r.Get("/explore", h.Explore)

	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", h.ListDestinations)
		r.Post("/", h.CreateDestination)
		r.Get("/new", h.NewDestinationForm)
		r.Get("/{id}", h.ShowDestination)
		r.Get("/{id}/edit", h.EditDestinationForm)
		r.Post("/{id}", h.UpdateDestination)
		r.Post("/{id}/delete", h.DeleteDestination)
	})

	r.NotFound(h.NotFound)
	return r
}

// Home renders the static landing page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.home, http.StatusOK, nil)
}

// NotFound renders the 404 page for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.notfound, http.StatusNotFound, nil)
}

// render executes a page template. Execution errors are logged; by the time
// they can occur the status line may already be written, so the client just
// gets a truncated page.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, t *template.Template, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		slog.ErrorContext(r.Context(), "render template", "error", err, "template", t.Name())
	}
}

func parsePage(name string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).
		ParseFS(templatesFS, "templates/layout.tmpl", "templates/"+name))
}

// templateFuncs are the helpers available to every page template.
var templateFuncs = template.FuncMap{
	"stars":       Stars,
	"regionBadge": countries.RegionBadge,
	"joinLangs":   joinLanguages,
	"joinCurs":    joinCurrencies,
	"seq":         seq,
	"deref":       func(p *int) int { return *p },
}

// seq returns the integers from from to to inclusive, for template ranges.
func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// Stars renders a rating as repeated star glyphs. The stored integer is
// repeated literally — zero or negative counts render as an empty string.
func Stars(rating *int) string {
	if rating == nil || *rating <= 0 {
		return ""
	}
	return strings.Repeat("⭐", *rating)
}

// joinLanguages renders a country's languages as a comma-separated list.
func joinLanguages(langs []domain.Language) string {
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.Name
	}
	return strings.Join(names, ", ")
}

// joinCurrencies renders a country's currencies as "Name (Symbol)" pairs.
func joinCurrencies(curs []domain.Currency) string {
	parts := make([]string, len(curs))
	for i, c := range curs {
		if c.Symbol != "" {
			parts[i] = fmt.Sprintf("%s (%s)", c.Name, c.Symbol)
		} else {
			parts[i] = c.Name
		}
	}
	return strings.Join(parts, ", ")
}
