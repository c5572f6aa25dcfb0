package hotel

import (
	"sort"

	"github.com/sharath018/travel-agency-backend/internal/catalog"
)

// Filter applies every active facet (ANDed) and then sorts; input untouched.
// Price-bucket membership is checked against the nightly starting price.
func Filter(hotels []Hotel, f Facets) []Hotel {
	out := make([]Hotel, 0, len(hotels))
	for _, h := range hotels {
		if !matches(h, f) {
			continue
		}
		out = append(out, h)
	}
	sortHotels(out, f.SortBy)
	return out
}

func matches(h Hotel, f Facets) bool {
	if !catalog.MatchesSearch(f.Search, h.Name, h.Location, h.Description) {
		return false
	}
	if !catalog.MatchesFacet(f.Category, h.Category) {
		return false
	}
	if !catalog.MatchesFacet(f.Country, h.Location) {
		return false
	}
	if !catalog.InPriceRange(h.MinPrice, f.PriceRange) {
		return false
	}
	return true
}

func sortHotels(hotels []Hotel, sortBy string) {
	switch sortBy {
	case "price_asc":
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].MinPrice < hotels[j].MinPrice })
	case "price_desc":
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].MinPrice > hotels[j].MinPrice })
	case "rating":
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Rating > hotels[j].Rating })
	default: // popularity
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Popularity > hotels[j].Popularity })
	}
}
