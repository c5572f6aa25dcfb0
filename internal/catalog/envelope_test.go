package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapListShapes(t *testing.T) {
	bare := []byte(`[{"title":"A"},{"title":"B"}]`)
	data := []byte(`{"data":[{"title":"A"},{"title":"B"}]}`)
	plural := []byte(`{"tours":[{"title":"A"},{"title":"B"}]}`)
	nested := []byte(`{"success":true,"data":{"tours":[{"title":"A"},{"title":"B"}],"pagination":{"page":1}}}`)

	for _, body := range [][]byte{bare, data, plural, nested} {
		items := UnwrapList(body, "tours")
		assert.Len(t, items, 2)
		assert.Equal(t, "A", items[0]["title"])
		assert.Equal(t, "B", items[1]["title"])
	}
}

func TestUnwrapListUnknownShape(t *testing.T) {
	assert.Empty(t, UnwrapList([]byte(`{"whatever": 1}`), "tours"))
	assert.Empty(t, UnwrapList([]byte(`not json`), "tours"))
	assert.Empty(t, UnwrapList(nil, "tours"))
}

func TestUnwrapListSkipsNonObjectItems(t *testing.T) {
	items := UnwrapList([]byte(`[{"title":"A"}, 42, "x"]`), "tours")
	assert.Len(t, items, 1)
}

func TestUnwrapItemEnvelopeIdempotence(t *testing.T) {
	bare := []byte(`{"name":"Makkah Hotel","price":900}`)
	wrapped := []byte(`{"data":{"name":"Makkah Hotel","price":900}}`)

	assert.Equal(t, UnwrapItem(bare), UnwrapItem(wrapped))
	assert.Equal(t, "Makkah Hotel", UnwrapItem(wrapped)["name"])
}

func TestUnwrapItemUnknownShape(t *testing.T) {
	assert.Empty(t, UnwrapItem([]byte(`[1,2]`)))
	assert.Empty(t, UnwrapItem([]byte(``)))
}
