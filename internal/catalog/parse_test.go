package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"dollar with comma", "$1,299", 1299},
		{"plain float", float64(1299), 1299},
		{"plain int", 1299, 1299},
		{"trailing text", "1299 per night", 1299},
		{"decimal", "49.99 USD", 49.99},
		{"no digits", "call for price", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"negative clamped", float64(-10), 0},
		{"bool ignored", true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParsePrice(tc.in))
		})
	}
}

func TestParseListField(t *testing.T) {
	want := []string{"a", "b"}

	assert.Equal(t, want, ParseListField(`["a","b"]`))
	assert.Equal(t, want, ParseListField("a, b"))
	assert.Equal(t, want, ParseListField([]string{"a", "b"}))
	assert.Equal(t, want, ParseListField([]any{"a", "b"}))
	assert.Equal(t, want, ParseListField("a\nb"))
}

func TestParseListFieldDropsEmptyTokens(t *testing.T) {
	assert.Equal(t, []string{"Beach", "Temple"}, ParseListField("Beach, , Temple,  "))
	assert.Equal(t, []string{}, ParseListField("   "))
	assert.Equal(t, []string{}, ParseListField(nil))
	assert.Equal(t, []string{}, ParseListField(12.5))
}

func TestParseListFieldMalformedJSONFallsBackToSplit(t *testing.T) {
	// Looks like JSON but is not; split path must take over.
	assert.Equal(t, []string{`["a"`, `"b"`}, ParseListField(`["a", "b"`))
}

func TestFirstInt(t *testing.T) {
	assert.Equal(t, 7, FirstInt("7 days"))
	assert.Equal(t, 10, FirstInt("10 Days / 9 Nights"))
	assert.Equal(t, 0, FirstInt("multi-week"))
	assert.Equal(t, 0, FirstInt(""))
}

func TestCollectImages(t *testing.T) {
	got := CollectImages("/a.jpg", []string{"/b.jpg", "/a.jpg", "", "/c.jpg"})
	assert.Equal(t, []string{"/a.jpg", "/b.jpg", "/c.jpg"}, got)
}

func TestCollectImagesSubstitutesPlaceholder(t *testing.T) {
	got := CollectImages("", nil)
	assert.Len(t, got, 1)
	assert.NotEmpty(t, got[0])

	got = CollectImages("  ", []string{"", "   "})
	assert.Len(t, got, 1)
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "42", AsString(float64(42)))
	assert.Equal(t, "4.5", AsString(4.5))
	assert.Equal(t, "x", AsString(" x "))
	assert.Equal(t, "", AsString(nil))
}
