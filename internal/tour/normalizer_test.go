package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaliScenario(t *testing.T) {
	raw := map[string]any{
		"name":       "Bali Trip",
		"price":      "$1,299",
		"highlights": "Beach, Temple",
	}

	got := Normalize(raw)

	assert.Equal(t, "Bali Trip", got.Title)
	assert.Equal(t, 1299.0, got.Price)
	assert.Equal(t, []string{"Beach", "Temple"}, got.Highlights)
	require.Len(t, got.Gallery, 1) // placeholder substituted
	assert.NotEmpty(t, got.Gallery[0])
	assert.Equal(t, "bali-trip", got.Slug)
}

func TestNormalizeTotality(t *testing.T) {
	got := Normalize(map[string]any{})

	assert.Equal(t, 0.0, got.Price)
	assert.NotNil(t, got.Highlights)
	assert.NotNil(t, got.Included)
	assert.NotNil(t, got.Excluded)
	assert.NotNil(t, got.Itinerary)
	assert.NotNil(t, got.Reviews)
	assert.NotEmpty(t, got.Gallery)
	assert.Equal(t, got.Gallery[0], got.MainImage)
	assert.Nil(t, got.Rating)
	assert.Equal(t, 0, got.Popularity)
}

func TestNormalizeFieldNameDrift(t *testing.T) {
	a := Normalize(map[string]any{"title": "X", "mainImage": "/x.jpg", "group_size": "2-10"})
	b := Normalize(map[string]any{"name": "X", "main_image": "/x.jpg", "groupsize": "2-10"})

	assert.Equal(t, a.Title, b.Title)
	assert.Equal(t, a.MainImage, b.MainImage)
	assert.Equal(t, a.GroupSize, b.GroupSize)
}

func TestNormalizeDestinationJoin(t *testing.T) {
	raw := map[string]any{
		"title": "Grand Tour",
		"destinations": []any{
			map[string]any{"name": "Istanbul"},
			map[string]any{"name": "Cappadocia"},
			"Izmir",
		},
	}
	assert.Equal(t, "Istanbul, Cappadocia, Izmir", Normalize(raw).Destination)
}

func TestNormalizeDestinationScalarWins(t *testing.T) {
	raw := map[string]any{
		"destination":  "Bali, Indonesia",
		"destinations": []any{map[string]any{"name": "ignored"}},
	}
	assert.Equal(t, "Bali, Indonesia", Normalize(raw).Destination)
}

func TestNormalizeSlugFallbackChain(t *testing.T) {
	assert.Equal(t, "given", Normalize(map[string]any{"slug": "given", "id": float64(9)}).Slug)
	assert.Equal(t, "9", Normalize(map[string]any{"id": float64(9), "title": "T"}).Slug)
	assert.Equal(t, "desert-safari", Normalize(map[string]any{"title": "Desert Safari"}).Slug)
}

func TestNormalizeItinerary(t *testing.T) {
	raw := map[string]any{
		"itinerary": []any{
			map[string]any{"title": "Arrival", "activities": "Transfer, Dinner", "meals": "Dinner"},
			map[string]any{"day": float64(2), "title": "City Tour", "accommodation": "Hilton"},
			"not an object",
		},
	}

	days := Normalize(raw).Itinerary
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day) // missing day number defaults to position
	assert.Equal(t, []string{"Transfer", "Dinner"}, days[0].Activities)
	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, "Hilton", days[1].Lodging)
}

func TestNormalizeGalleryDedupe(t *testing.T) {
	raw := map[string]any{
		"mainimage": "/a.jpg",
		"gallery":   []any{"/b.jpg", "/a.jpg"},
	}
	got := Normalize(raw)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, got.Gallery)
	assert.Equal(t, "/a.jpg", got.MainImage)
}

func TestNormalizeRatingNullable(t *testing.T) {
	got := Normalize(map[string]any{"rating": "4.8"})
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4.8, *got.Rating)
}
