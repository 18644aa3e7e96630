package countries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkusuma/travelcatalog/internal/countries"
	"github.com/nkusuma/travelcatalog/internal/domain"
)

func filterFixture() []domain.Country {
	return []domain.Country{
		{Name: "France", Capital: "Paris", Region: "Europe", Alpha3Code: "FRA"},
		{Name: "Indonesia", Capital: "Jakarta", Region: "Asia", Alpha3Code: "IDN"},
		{Name: "Japan", Capital: "Tokyo", Region: "Asia", Alpha3Code: "JPN"},
		{Name: "Kenya", Capital: "Nairobi", Region: "Africa", Alpha3Code: "KEN"},
	}
}

func TestFilter_NoFiltersReturnsAll(t *testing.T) {
	got := countries.Filter(filterFixture(), "", countries.AllRegions)
	assert.Len(t, got, 4)
}

func TestFilter_ByRegion(t *testing.T) {
	got := countries.Filter(filterFixture(), "", "Asia")

	require.Len(t, got, 2)
	assert.Equal(t, "Indonesia", got[0].Name)
	assert.Equal(t, "Japan", got[1].Name)
}

func TestFilter_ByQueryMatchesNameOrCapital(t *testing.T) {
	byName := countries.Filter(filterFixture(), "jap", countries.AllRegions)
	require.Len(t, byName, 1)
	assert.Equal(t, "Japan", byName[0].Name)

	byCapital := countries.Filter(filterFixture(), "nairobi", countries.AllRegions)
	require.Len(t, byCapital, 1)
	assert.Equal(t, "Kenya", byCapital[0].Name)
}

func TestFilter_QueryIsCaseInsensitive(t *testing.T) {
	got := countries.Filter(filterFixture(), "FRANCE", countries.AllRegions)

	require.Len(t, got, 1)
	assert.Equal(t, "France", got[0].Name)
}

func TestFilter_RegionAndQueryAreConjunctive(t *testing.T) {
	// "ja" matches Japan (name), Indonesia (capital Jakarta), and nothing in
	// Europe; with the Asia region both Asian matches survive, France does not.
	got := countries.Filter(filterFixture(), "ja", "Asia")

	require.Len(t, got, 2)
	assert.Equal(t, "Indonesia", got[0].Name)
	assert.Equal(t, "Japan", got[1].Name)

	// Narrowing the region to Europe removes both.
	got = countries.Filter(filterFixture(), "ja", "Europe")
	assert.Empty(t, got)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	input := filterFixture()
	_ = countries.Filter(input, "japan", "Asia")

	assert.Len(t, input, 4)
	assert.Equal(t, "France", input[0].Name)
}

func TestRegionBadge(t *testing.T) {
	for region, class := range map[string]string{
		"Africa":   "badge-africa",
		"Americas": "badge-americas",
		"Asia":     "badge-asia",
		"Europe":   "badge-europe",
		"Oceania":  "badge-oceania",
	} {
		assert.Equal(t, class, countries.RegionBadge(region))
	}

	assert.Equal(t, "badge-default", countries.RegionBadge("Antarctic"))
	assert.Equal(t, "badge-default", countries.RegionBadge(""))
}
