package hotel

import (
	"context"
	"fmt"

	"github.com/sharath018/travel-agency-backend/internal/catalog"
)

// Repository fetches raw hotels from the upstream catalog; no caching.
type Repository struct {
	Client *catalog.Client
}

func NewRepository(c *catalog.Client) *Repository {
	return &Repository{Client: c}
}

func (r *Repository) FetchAll(ctx context.Context) ([]Hotel, error) {
	raws, err := r.Client.FetchList(ctx, "/api/hotels", "hotels")
	if err != nil {
		return nil, err
	}
	return NormalizeAll(raws), nil
}

func (r *Repository) FetchBySlug(ctx context.Context, slug string) (*Hotel, error) {
	raw, err := r.Client.FetchItem(ctx, "/api/hotels/"+slug)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("hotel %q not found", slug)
	}
	h := Normalize(raw)
	return &h, nil
}
