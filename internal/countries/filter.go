package countries

import (
	"strings"

	"github.com/nkusuma/travelcatalog/internal/domain"
)

// AllRegions is the region selector value that disables region filtering.
const AllRegions = "all"

// Regions lists the selectable region filter values, in display order.
var Regions = []string{"Africa", "Americas", "Asia", "Europe", "Oceania"}

// Filter returns the countries matching both predicates: the selected region
// (unless "all" or empty) AND a case-insensitive substring match of query
// against the country name or capital. An empty query matches everything.
// The input slice is never modified.
func Filter(list []domain.Country, query, region string) []domain.Country {
	q := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]domain.Country, 0, len(list))
	for _, c := range list {
		if region != "" && region != AllRegions && c.Region != region {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Capital), q) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// regionBadges maps known region names to a visual badge class.
var regionBadges = map[string]string{
	"Africa":   "badge-africa",
	"Americas": "badge-americas",
	"Asia":     "badge-asia",
	"Europe":   "badge-europe",
	"Oceania":  "badge-oceania",
}

// RegionBadge returns the badge class for a region, or the unstyled default
// for regions outside the known palette.
func RegionBadge(region string) string {
	if class, ok := regionBadges[region]; ok {
		return class
	}
	return "badge-default"
}
