package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickFirstDefinedWins(t *testing.T) {
	raw := map[string]any{
		"mainImage":  "/camel.jpg",
		"main_image": "/ignored.jpg",
	}
	assert.Equal(t, "/camel.jpg", Pick(raw, "mainimage", "mainImage", "main_image"))
}

func TestPickSkipsNil(t *testing.T) {
	raw := map[string]any{"title": nil, "name": "Bali Trip"}
	assert.Equal(t, "Bali Trip", Pick(raw, "title", "name"))
	assert.Nil(t, Pick(raw, "title", "missing"))
}

func TestPickDefault(t *testing.T) {
	raw := map[string]any{}
	assert.Equal(t, "15:00", PickDefault(raw, "15:00", "checkin", "check_in"))
	assert.Equal(t, "15:00", PickStringDefault(raw, "15:00", "checkin"))
}

func TestTypedPickers(t *testing.T) {
	raw := map[string]any{
		"price":    "$2,499",
		"rooms":    float64(12),
		"featured": true,
		"tags":     []any{"beach", "family"},
		"contact":  map[string]any{"phone": "123"},
	}

	assert.Equal(t, 2499.0, PickFloat(raw, "cost", "price"))
	assert.Equal(t, 12, PickInt(raw, "rooms"))
	assert.True(t, PickBool(raw, "featured"))
	assert.Equal(t, []string{"beach", "family"}, PickList(raw, "tags"))
	assert.Equal(t, "123", PickMap(raw, "contact")["phone"])
	assert.Equal(t, []any{"beach", "family"}, PickSlice(raw, "tags"))
}

func TestTypedPickersDefaults(t *testing.T) {
	raw := map[string]any{}
	assert.Equal(t, 0.0, PickFloat(raw, "price"))
	assert.Equal(t, "", PickString(raw, "title"))
	assert.False(t, PickBool(raw, "featured"))
	assert.Empty(t, PickList(raw, "tags"))
	assert.Nil(t, PickMap(raw, "contact"))
}
