package umrah

import (
	"sort"
	"strconv"

	"github.com/sharath018/travel-agency-backend/internal/catalog"
)

// Filter applies every active facet (ANDed) and then sorts; input untouched.
func Filter(packages []Package, f Facets) []Package {
	out := make([]Package, 0, len(packages))
	for _, p := range packages {
		if !matches(p, f) {
			continue
		}
		out = append(out, p)
	}
	sortPackages(out, f.SortBy)
	return out
}

func matches(p Package, f Facets) bool {
	if !catalog.MatchesSearch(f.Search, p.Name, p.Description) {
		return false
	}
	if !catalog.MatchesFacet(f.Type, string(p.Type)) {
		return false
	}
	if !catalog.InDurationRange(strconv.Itoa(p.Nights)+" nights", f.Duration) {
		return false
	}
	return true
}

func sortPackages(packages []Package, sortBy string) {
	switch sortBy {
	case "price_asc":
		sort.SliceStable(packages, func(i, j int) bool { return packages[i].Price < packages[j].Price })
	case "price_desc":
		sort.SliceStable(packages, func(i, j int) bool { return packages[i].Price > packages[j].Price })
	case "duration":
		sort.SliceStable(packages, func(i, j int) bool { return packages[i].Nights < packages[j].Nights })
	default: // popularity
		sort.SliceStable(packages, func(i, j int) bool { return packages[i].Popularity > packages[j].Popularity })
	}
}
