package umrah

import (
	"context"
	"fmt"

	"github.com/sharath018/travel-agency-backend/internal/catalog"
)

// Repository fetches raw Umrah packages from the upstream catalog; no caching.
type Repository struct {
	Client *catalog.Client
}

func NewRepository(c *catalog.Client) *Repository {
	return &Repository{Client: c}
}

func (r *Repository) FetchAll(ctx context.Context) ([]Package, error) {
	raws, err := r.Client.FetchList(ctx, "/api/umrah", "packages")
	if err != nil {
		return nil, err
	}
	return NormalizeAll(raws), nil
}

func (r *Repository) FetchBySlug(ctx context.Context, slug string) (*Package, error) {
	raw, err := r.Client.FetchItem(ctx, "/api/umrah/"+slug)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("umrah package %q not found", slug)
	}
	p := Normalize(raw)
	return &p, nil
}
