package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nkusuma/travelcatalog/internal/domain"
)

// ListDestinations renders the destination grid with the three-way display
// filter. The filter is a pure predicate over the loaded collection; the
// counts on the filter buttons always cover the full collection. A load
// failure renders the page with an error notice over an empty collection.
func (h *Handlers) ListDestinations(w http.ResponseWriter, r *http.Request) {
	view := listView{Filter: ParseListFilter(r.URL.Query().Get("filter"))}
	view.Notice, view.NoticeError = noticeMessage(r.URL.Query().Get("notice"))

	all, err := h.destinations.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "load destinations", "error", err)
		view.Notice, view.NoticeError = noticeMessage("load-failed")
	}

	view.Counts = CountDestinations(all)
	view.Destinations = FilterDestinations(all, view.Filter)

	h.render(w, r, h.list, http.StatusOK, view)
}

// ShowDestination renders the detail page for one destination.
func (h *Handlers) ShowDestination(w http.ResponseWriter, r *http.Request) {
	dest, ok := h.loadDestination(w, r)
	if !ok {
		return
	}

	view := detailView{Destination: dest}
	view.Notice, _ = noticeMessage(r.URL.Query().Get("notice"))
	h.render(w, r, h.detail, http.StatusOK, view)
}

// NewDestinationForm renders the empty create form.
func (h *Handlers) NewDestinationForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.form, http.StatusOK, formView{})
}

// CreateDestination handles the create form submission.
// On success it redirects to the list with a confirmation notice; a
// validation failure re-renders the form with the submitted values intact.
func (h *Handlers) CreateDestination(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, h.form, http.StatusBadRequest, formView{Error: "invalid form submission"})
		return
	}

	dest := destinationFromForm(r)
	if _, err := h.destinations.Create(r.Context(), dest); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.render(w, r, h.form, http.StatusUnprocessableEntity, formView{
				Destination: dest,
				Error:       validationMessage(err),
			})
			return
		}
		slog.ErrorContext(r.Context(), "create destination", "error", err)
		h.render(w, r, h.form, http.StatusInternalServerError, formView{
			Destination: dest,
			Error:       "Failed to create destination",
		})
		return
	}

	http.Redirect(w, r, "/destinations?notice=created", http.StatusSeeOther)
}

// EditDestinationForm renders the edit form prefilled with the stored record.
func (h *Handlers) EditDestinationForm(w http.ResponseWriter, r *http.Request) {
	dest, ok := h.loadDestination(w, r)
	if !ok {
		return
	}
	h.render(w, r, h.form, http.StatusOK, formView{Destination: dest, Editing: true})
}

// UpdateDestination handles the edit form submission.
func (h *Handlers) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.render(w, r, h.form, http.StatusBadRequest, formView{Editing: true, Error: "invalid form submission"})
		return
	}

	dest := destinationFromForm(r)
	dest.ID = id
	// A form posts the complete field set, checkbox included, so visited is
	// always written explicitly here.
	upd := domain.DestinationUpdate{
		Name:        dest.Name,
		Country:     dest.Country,
		City:        dest.City,
		Description: dest.Description,
		Visited:     &dest.Visited,
		Rating:      dest.Rating,
		Notes:       dest.Notes,
		Budget:      dest.Budget,
	}

	if _, err := h.destinations.Update(r.Context(), id, upd); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			h.render(w, r, h.form, http.StatusUnprocessableEntity, formView{
				Destination: dest,
				Editing:     true,
				Error:       validationMessage(err),
			})
			return
		}
		slog.ErrorContext(r.Context(), "update destination", "error", err, "id", id)
		h.render(w, r, h.form, http.StatusInternalServerError, formView{
			Destination: dest,
			Editing:     true,
			Error:       "Failed to update destination",
		})
		return
	}

	http.Redirect(w, r, "/destinations/"+strconv.FormatInt(id, 10)+"?notice=updated", http.StatusSeeOther)
}

// DeleteDestination handles the delete form submission (the form's markup asks
// for confirmation before posting). Success and failure both redirect back to
// the list with a visible notice.
func (h *Handlers) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	if err := h.destinations.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		slog.ErrorContext(r.Context(), "delete destination", "error", err, "id", id)
		http.Redirect(w, r, "/destinations?notice=delete-failed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/destinations?notice=deleted", http.StatusSeeOther)
}

// loadDestination fetches the record named by the path id, rendering the 404
// page on a bad id, a missing record, or a store failure.
func (h *Handlers) loadDestination(w http.ResponseWriter, r *http.Request) (domain.Destination, bool) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return domain.Destination{}, false
	}

	dest, err := h.destinations.GetByID(r.Context(), id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.ErrorContext(r.Context(), "get destination", "error", err, "id", id)
		}
		h.NotFound(w, r)
		return domain.Destination{}, false
	}
	return dest, true
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// destinationFromForm maps the create/edit form fields into a Destination.
// Optional fields keep their raw form values here; the service layer
// normalizes blanks and zero ratings to absent.
func destinationFromForm(r *http.Request) domain.Destination {
	rating, _ := strconv.Atoi(r.PostFormValue("rating"))
	notes := r.PostFormValue("notes")
	budget := r.PostFormValue("budget")

	return domain.Destination{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Country:     strings.TrimSpace(r.PostFormValue("country")),
		City:        strings.TrimSpace(r.PostFormValue("city")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Visited:     r.PostFormValue("visited") != "",
		Rating:      &rating,
		Notes:       &notes,
		Budget:      &budget,
	}
}

// validationMessage extracts the human-readable part of a wrapped
// domain.ErrValidation error for display in the form.
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}
