package tour

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/travel-agency-backend/internal/catalog"
)

func sampleTours() []Tour {
	r1, r2 := 4.9, 4.2
	return []Tour{
		{Slug: "bali", Title: "Bali Trip", Destination: "Indonesia", Category: "Beach", Price: 1299, Duration: "7 days", Rating: &r1, Popularity: 40},
		{Slug: "alps", Title: "Alpine Trek", Destination: "Switzerland", Category: "Adventure", Price: 2800, Duration: "10 days", Rating: &r2, Popularity: 55},
		{Slug: "cairo", Title: "Cairo Heritage", Destination: "Egypt", Category: "Cultural", Price: 1500, Duration: "5 days", Popularity: 55},
		{Slug: "kyoto", Title: "Kyoto Gardens", Destination: "Japan", Category: "Cultural", Price: 3600, Duration: "8 days", Popularity: 10},
	}
}

func TestFilterSearch(t *testing.T) {
	got := Filter(sampleTours(), Facets{Search: "cairo"})
	require.Len(t, got, 1)
	assert.Equal(t, "cairo", got[0].Slug)
}

func TestFilterCategoryAllSentinel(t *testing.T) {
	assert.Len(t, Filter(sampleTours(), Facets{Category: "All"}), 4)
	assert.Len(t, Filter(sampleTours(), Facets{Category: "Cultural"}), 2)
}

func TestFilterPriceAndDurationBuckets(t *testing.T) {
	got := Filter(sampleTours(), Facets{PriceRange: "$1500-$2500", Duration: "4-7 Days"})
	require.Len(t, got, 1)
	assert.Equal(t, "cairo", got[0].Slug)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := sampleTours()
	Filter(in, Facets{SortBy: "price_desc"})
	assert.Equal(t, "bali", in[0].Slug)
}

func TestSortModes(t *testing.T) {
	byPriceAsc := Filter(sampleTours(), Facets{SortBy: "price_asc"})
	assert.Equal(t, "bali", byPriceAsc[0].Slug)
	assert.Equal(t, "kyoto", byPriceAsc[3].Slug)

	byRating := Filter(sampleTours(), Facets{SortBy: "rating"})
	assert.Equal(t, "bali", byRating[0].Slug) // nil ratings sort as 0

	byDuration := Filter(sampleTours(), Facets{SortBy: "duration"})
	assert.Equal(t, "cairo", byDuration[0].Slug)
}

func TestPopularitySortIsStable(t *testing.T) {
	// alps and cairo tie on popularity; original relative order must hold,
	// and sorting twice must give identical output.
	once := Filter(sampleTours(), Facets{})
	twice := Filter(once, Facets{})

	assert.Equal(t, once, twice)
	assert.Equal(t, "alps", once[0].Slug)
	assert.Equal(t, "cairo", once[1].Slug)
}

// Filter must agree with a brute-force AND of the individual predicates for
// random facet/entity combinations.
func TestFilterConjunctionProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	categories := []string{"Beach", "Adventure", "Cultural", "All", ""}
	prices := []string{"", "All", "Under $1500", "$1500-$2500", "$2500-$3500", "Over $3500"}
	durations := []string{"", "All", "1-3 Days", "4-7 Days", "8+ Days"}
	searches := []string{"", "trip", "z"}

	var pool []Tour
	for i := 0; i < 60; i++ {
		pool = append(pool, Tour{
			Slug:     fmt.Sprintf("t%d", i),
			Title:    fmt.Sprintf("Trip %d", i),
			Category: categories[rng.Intn(3)],
			Price:    float64(rng.Intn(5000)),
			Duration: fmt.Sprintf("%d days", 1+rng.Intn(14)),
		})
	}

	for i := 0; i < 200; i++ {
		f := Facets{
			Search:     searches[rng.Intn(len(searches))],
			Category:   categories[rng.Intn(len(categories))],
			PriceRange: prices[rng.Intn(len(prices))],
			Duration:   durations[rng.Intn(len(durations))],
		}

		got := map[string]bool{}
		for _, tr := range Filter(pool, f) {
			got[tr.Slug] = true
		}

		for _, tr := range pool {
			want := catalog.MatchesSearch(f.Search, tr.Title, tr.Destination, tr.Category) &&
				catalog.MatchesFacet(f.Category, tr.Category) &&
				catalog.InPriceRange(tr.Price, f.PriceRange) &&
				catalog.InDurationRange(tr.Duration, f.Duration)
			assert.Equal(t, want, got[tr.Slug], "facets=%+v tour=%s", f, tr.Slug)
		}
	}
}
