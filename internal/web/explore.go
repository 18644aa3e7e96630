package web

import (
	"net/http"

	"github.com/nkusuma/travelcatalog/internal/countries"
)

// Explore renders the countries reference grid. The free-text query and the
// region selector combine as a conjunction over the loaded collection; when
// the external service is unavailable the embedded sample set is shown with a
// notice instead of an error page.
func (h *Handlers) Explore(w http.ResponseWriter, r *http.Request) {
	list, usingSample := h.countries.FetchOrSample(r.Context())

	query := r.URL.Query().Get("q")
	region := r.URL.Query().Get("region")
	if region == "" {
		region = countries.AllRegions
	}

	filtered := countries.Filter(list, query, region)

	h.render(w, r, h.explore, http.StatusOK, exploreView{
		Countries:  filtered,
		Regions:    countries.Regions,
		Query:      query,
		Region:     region,
		Total:      len(filtered),
		SampleData: usingSample,
	})
}
