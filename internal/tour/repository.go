package tour

import (
	"context"
	"fmt"

	"github.com/sharath018/travel-agency-backend/internal/catalog"
)

// Repository fetches raw tours from the upstream catalog and normalizes them.
// Nothing is cached; every call hits the upstream.
type Repository struct {
	Client *catalog.Client
}

func NewRepository(c *catalog.Client) *Repository {
	return &Repository{Client: c}
}

func (r *Repository) FetchAll(ctx context.Context) ([]Tour, error) {
	raws, err := r.Client.FetchList(ctx, "/api/tours", "tours")
	if err != nil {
		return nil, err
	}
	return NormalizeAll(raws), nil
}

func (r *Repository) FetchBySlug(ctx context.Context, slug string) (*Tour, error) {
	raw, err := r.Client.FetchItem(ctx, "/api/tours/"+slug)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("tour %q not found", slug)
	}
	t := Normalize(raw)
	return &t, nil
}
