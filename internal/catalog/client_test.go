package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetchListUnwraps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/hotels", r.URL.Path)
		w.Write([]byte(`{"data":{"hotels":[{"name":"Dar Al Iman"}]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	items, err := c.FetchList(context.Background(), "/api/hotels", "hotels")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Dar Al Iman", items[0]["name"])
}

func TestClientFetchItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"slug":"bali-trip"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	item, err := c.FetchItem(context.Background(), "/api/tours/bali-trip")
	require.NoError(t, err)
	assert.Equal(t, "bali-trip", item["slug"])
}

func TestClientNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchList(context.Background(), "/api/tours", "tours")
	assert.Error(t, err)
}

func TestClientHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL)
	_, err := c.FetchItem(ctx, "/api/tours/x")
	assert.Error(t, err)
}
