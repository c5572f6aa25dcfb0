package umrah

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTotality(t *testing.T) {
	got := Normalize(map[string]any{})

	assert.Equal(t, TypeEconomy, got.Type)
	assert.Equal(t, 3, got.Stars)
	assert.Equal(t, 0, got.Nights)
	assert.Equal(t, 0.0, got.Price)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "available", got.Status)
	assert.NotNil(t, got.Included)
	assert.NotNil(t, got.Hotels)
	assert.NotEmpty(t, got.Gallery)
}

func TestNormalizePackageTypeEnum(t *testing.T) {
	assert.Equal(t, TypeExecutive, Normalize(map[string]any{"type": "VIP"}).Type)
	assert.Equal(t, TypePremium, Normalize(map[string]any{"type": "Deluxe"}).Type)
	assert.Equal(t, TypeEconomy, Normalize(map[string]any{"type": "standard"}).Type)
	assert.Equal(t, 5, Normalize(map[string]any{"type": "executive"}).Stars)
}

func TestNormalizeNightsReconciliation(t *testing.T) {
	// Explicit count wins over the free-text label.
	both := Normalize(map[string]any{"nights": float64(9), "duration": "14 Days"})
	assert.Equal(t, 9, both.Nights)

	labelOnly := Normalize(map[string]any{"duration": "10 Days / 9 Nights"})
	assert.Equal(t, 10, labelOnly.Nights)
}

func TestNormalizeHotelSubRecords(t *testing.T) {
	raw := map[string]any{
		"name": "Ramadan Special",
		"hotels": []any{
			map[string]any{"city": "Makkah", "nights": float64(5), "stars": float64(5), "name": "Fairmont"},
			map[string]any{"city": "Madinah", "nights": float64(4), "category": "4-star", "name": "Oberoi"},
		},
	}

	got := Normalize(raw)
	require.Len(t, got.Hotels, 2)
	assert.Equal(t, PackageHotel{City: "Makkah", Nights: 5, Stars: 5, Name: "Fairmont"}, got.Hotels[0])
	assert.Equal(t, 4, got.Hotels[1].Stars) // star count parsed from category label
}

func TestFilterByTypeAndDuration(t *testing.T) {
	packages := []Package{
		{Slug: "eco", Name: "Economy Umrah", Type: TypeEconomy, Nights: 7, Price: 1200},
		{Slug: "exec", Name: "Executive Umrah", Type: TypeExecutive, Nights: 14, Price: 4500},
	}

	got := Filter(packages, Facets{Type: "executive"})
	require.Len(t, got, 1)
	assert.Equal(t, "exec", got[0].Slug)

	got = Filter(packages, Facets{Duration: "4-7 Days"})
	require.Len(t, got, 1)
	assert.Equal(t, "eco", got[0].Slug)
}

func TestFilterSortByDuration(t *testing.T) {
	packages := []Package{
		{Slug: "b", Nights: 14},
		{Slug: "a", Nights: 7},
	}
	got := Filter(packages, Facets{SortBy: "duration"})
	assert.Equal(t, "a", got[0].Slug)
}
