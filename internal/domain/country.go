package domain

// Country is transient reference data for the explore view, sourced from the
// public countries service. It is never persisted — held only in memory for
// the lifetime of a request (or a cache entry).
type Country struct {
	Name       string     `json:"name"`
	Capital    string     `json:"capital,omitempty"`
	Region     string     `json:"region"`
	Subregion  string     `json:"subregion,omitempty"`
	Population int64      `json:"population"`
	Flag       string     `json:"flag"` // flag image URL
	Languages  []Language `json:"languages,omitempty"`
	Currencies []Currency `json:"currencies,omitempty"`
	Alpha3Code string     `json:"alpha3Code"` // display key, unique per country
}

// Language is a language spoken in a country.
type Language struct {
	Name       string `json:"name"`
	NativeName string `json:"nativeName,omitempty"`
}

// Currency is a currency in circulation in a country.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}
