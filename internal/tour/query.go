package tour

import (
	"sort"

	"github.com/sharath018/travel-agency-backend/internal/catalog"
)

// Filter applies every active facet (ANDed) and then sorts. The input slice
// is never mutated; ties keep their original relative order.
func Filter(tours []Tour, f Facets) []Tour {
	out := make([]Tour, 0, len(tours))
	for _, t := range tours {
		if !matches(t, f) {
			continue
		}
		out = append(out, t)
	}
	sortTours(out, f.SortBy)
	return out
}

func matches(t Tour, f Facets) bool {
	if !catalog.MatchesSearch(f.Search, t.Title, t.Destination, t.Category) {
		return false
	}
	if !catalog.MatchesFacet(f.Category, t.Category) {
		return false
	}
	if !catalog.MatchesFacet(f.Destination, t.Destination) {
		return false
	}
	if !catalog.InPriceRange(t.Price, f.PriceRange) {
		return false
	}
	if !catalog.InDurationRange(t.Duration, f.Duration) {
		return false
	}
	return true
}

func sortTours(tours []Tour, sortBy string) {
	switch sortBy {
	case "price_asc":
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Price < tours[j].Price })
	case "price_desc":
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Price > tours[j].Price })
	case "rating":
		sort.SliceStable(tours, func(i, j int) bool { return ratingOf(tours[i]) > ratingOf(tours[j]) })
	case "duration":
		sort.SliceStable(tours, func(i, j int) bool {
			return catalog.FirstInt(tours[i].Duration) < catalog.FirstInt(tours[j].Duration)
		})
	default: // popularity
		sort.SliceStable(tours, func(i, j int) bool { return tours[i].Popularity > tours[j].Popularity })
	}
}

func ratingOf(t Tour) float64 {
	if t.Rating == nil {
		return 0
	}
	return *t.Rating
}
