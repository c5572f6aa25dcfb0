package hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTotality(t *testing.T) {
	got := Normalize(map[string]any{})

	assert.Equal(t, 0.0, got.MinPrice)
	assert.Equal(t, 0.0, got.MaxPrice)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, DefaultCheckIn, got.CheckIn)
	assert.Equal(t, DefaultCheckOut, got.CheckOut)
	assert.NotNil(t, got.Amenities)
	assert.NotEmpty(t, got.Gallery)
}

func TestNormalizePriceRangeOrdering(t *testing.T) {
	swapped := Normalize(map[string]any{"min_price": float64(500), "max_price": float64(300)})
	assert.Equal(t, 300.0, swapped.MinPrice)
	assert.Equal(t, 500.0, swapped.MaxPrice)

	onlyMin := Normalize(map[string]any{"price": "$450"})
	assert.Equal(t, 450.0, onlyMin.MinPrice)
	assert.Equal(t, 450.0, onlyMin.MaxPrice)
}

func TestNormalizeAmenityDedupe(t *testing.T) {
	raw := map[string]any{"amenities": []any{"WiFi", "Pool", "wifi", "Spa"}}
	assert.Equal(t, []string{"WiFi", "Pool", "Spa"}, Normalize(raw).Amenities)
}

func TestNormalizeAmenitiesFromDelimitedString(t *testing.T) {
	raw := map[string]any{"facilities": "WiFi, Pool\nSpa"}
	assert.Equal(t, []string{"WiFi", "Pool", "Spa"}, Normalize(raw).Amenities)
}

func TestNormalizeEnvelopedAndBareAgree(t *testing.T) {
	raw := map[string]any{
		"name":      "Dar Al Iman",
		"city":      "Madinah",
		"check_in":  "14:00",
		"min_price": "$120",
	}
	got := Normalize(raw)

	assert.Equal(t, "Dar Al Iman", got.Name)
	assert.Equal(t, "Madinah", got.Location)
	assert.Equal(t, "14:00", got.CheckIn)
	assert.Equal(t, 120.0, got.MinPrice)
	assert.Equal(t, "dar-al-iman", got.Slug)
}

func TestNormalizeSlugPrefersIDOverName(t *testing.T) {
	got := Normalize(map[string]any{"id": float64(77), "name": "Some Hotel"})
	assert.Equal(t, "77", got.Slug)
}

func TestFilterResortScenario(t *testing.T) {
	hotels := []Hotel{
		{Slug: "beach-resort", Name: "Beach Resort", Category: "Resort", MinPrice: 450},
		{Slug: "city-hotel", Name: "City Hotel", Category: "Hotel", MinPrice: 600},
	}

	got := Filter(hotels, Facets{Category: "Resort", PriceRange: "$300-$500"})
	require.Len(t, got, 1)
	assert.Equal(t, "beach-resort", got[0].Slug)
}

func TestFilterSortByPrice(t *testing.T) {
	hotels := []Hotel{
		{Slug: "b", MinPrice: 300},
		{Slug: "a", MinPrice: 100},
		{Slug: "c", MinPrice: 200},
	}
	got := Filter(hotels, Facets{SortBy: "price_asc"})
	assert.Equal(t, "a", got[0].Slug)
	assert.Equal(t, "c", got[1].Slug)
	assert.Equal(t, "b", got[2].Slug)
}
