package web

import "github.com/nkusuma/travelcatalog/internal/domain"

// ListFilter is the three-way display filter of the destination list.
type ListFilter string

const (
	FilterAll      ListFilter = "all"
	FilterVisited  ListFilter = "visited"
	FilterWishlist ListFilter = "wishlist"
)

// ParseListFilter maps a query parameter to a ListFilter, defaulting to all.
func ParseListFilter(s string) ListFilter {
	switch ListFilter(s) {
	case FilterVisited:
		return FilterVisited
	case FilterWishlist:
		return FilterWishlist
	default:
		return FilterAll
	}
}

// FilterDestinations returns the records matching the display filter.
// Classification is purely a function of the Visited flag: visited records
// are "visited", everything else is "wishlist".
func FilterDestinations(list []domain.Destination, filter ListFilter) []domain.Destination {
	if filter == FilterAll {
		return list
	}
	filtered := make([]domain.Destination, 0, len(list))
	for _, d := range list {
		if (filter == FilterVisited) == d.Visited {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// ListCounts carries the filter-button counts, always computed over the full
// unfiltered collection so the three labels sum to the total regardless of the
// active filter.
type ListCounts struct {
	All      int
	Visited  int
	Wishlist int
}

// CountDestinations tallies the collection for the filter buttons.
func CountDestinations(list []domain.Destination) ListCounts {
	c := ListCounts{All: len(list)}
	for _, d := range list {
		if d.Visited {
			c.Visited++
		} else {
			c.Wishlist++
		}
	}
	return c
}

// listView is the template data for the destination list page.
type listView struct {
	Destinations []domain.Destination
	Counts       ListCounts
	Filter       ListFilter
	Notice       string
	NoticeError  bool
}

// detailView is the template data for the destination detail page.
type detailView struct {
	Destination domain.Destination
	Notice      string
}

// formView is the template data for the create and edit forms.
type formView struct {
	Destination domain.Destination
	Editing     bool
	Error       string
}

// exploreView is the template data for the explore page.
type exploreView struct {
	Countries  []domain.Country
	Regions    []string
	Query      string
	Region     string
	Total      int
	SampleData bool
}

// notices maps the redirect notice codes to user-visible messages.
// Every mutation and every failure path surfaces one of these.
var notices = map[string]string{
	"created":       "Destination added successfully!",
	"updated":       "Destination updated successfully!",
	"deleted":       "Destination deleted successfully!",
	"delete-failed": "Failed to delete destination",
	"load-failed":   "Failed to load destinations",
}

// noticeMessage resolves a notice code to its message and whether it
// represents a failure. Unknown codes produce no notice.
func noticeMessage(code string) (string, bool) {
	msg, ok := notices[code]
	if !ok {
		return "", false
	}
	return msg, code == "delete-failed" || code == "load-failed"
}
