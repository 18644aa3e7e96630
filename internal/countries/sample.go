package countries

import "github.com/nkusuma/travelcatalog/internal/domain"

// Sample returns the embedded fallback dataset shown when the countries
// service is unavailable. The explore view stays usable with these three
// entries instead of failing hard.
func Sample() []domain.Country {
	return []domain.Country{
		{
			Name:       "Indonesia",
			Capital:    "Jakarta",
			Region:     "Asia",
			Subregion:  "South-Eastern Asia",
			Population: 273523615,
			Flag:       "https://flagcdn.com/w320/id.png",
			Alpha3Code: "IDN",
			Languages:  []domain.Language{{Name: "Indonesian", NativeName: "Bahasa Indonesia"}},
			Currencies: []domain.Currency{{Code: "IDR", Name: "Indonesian rupiah", Symbol: "Rp"}},
		},
		{
			Name:       "France",
			Capital:    "Paris",
			Region:     "Europe",
			Subregion:  "Western Europe",
			Population: 67391582,
			Flag:       "https://flagcdn.com/w320/fr.png",
			Alpha3Code: "FRA",
			Languages:  []domain.Language{{Name: "French", NativeName: "français"}},
			Currencies: []domain.Currency{{Code: "EUR", Name: "Euro", Symbol: "€"}},
		},
		{
			Name:       "Japan",
			Capital:    "Tokyo",
			Region:     "Asia",
			Subregion:  "Eastern Asia",
			Population: 125836021,
			Flag:       "https://flagcdn.com/w320/jp.png",
			Alpha3Code: "JPN",
			Languages:  []domain.Language{{Name: "Japanese", NativeName: "日本語"}},
			Currencies: []domain.Currency{{Code: "JPY", Name: "Japanese yen", Symbol: "¥"}},
		},
	}
}
