package booking

import (
	"context"
	"fmt"

	"github.com/sharath018/travel-agency-backend/internal/hotel"
	"github.com/sharath018/travel-agency-backend/internal/tour"
	"github.com/sharath018/travel-agency-backend/internal/umrah"
)

// ItemResolver binds a catalog entity to a draft as a read-only snapshot.
type ItemResolver interface {
	Resolve(ctx context.Context, service ServiceType, slug string) (*ItemSnapshot, error)
}

// CatalogResolver resolves snapshots through the live catalog services, so a
// draft is always priced against the record the user just saw.
type CatalogResolver struct {
	Tours  *tour.Service
	Hotels *hotel.Service
	Umrah  *umrah.Service
}

func NewCatalogResolver(tours *tour.Service, hotels *hotel.Service, packages *umrah.Service) *CatalogResolver {
	return &CatalogResolver{Tours: tours, Hotels: hotels, Umrah: packages}
}

func (r *CatalogResolver) Resolve(ctx context.Context, service ServiceType, slug string) (*ItemSnapshot, error) {
	switch service {
	case ServiceTour:
		t, err := r.Tours.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		return &ItemSnapshot{
			Slug:      t.Slug,
			Title:     t.Title,
			UnitPrice: t.Price,
			Currency:  "USD",
			Image:     t.MainImage,
		}, nil
	case ServiceHotel:
		h, err := r.Hotels.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		return &ItemSnapshot{
			Slug:      h.Slug,
			Title:     h.Name,
			UnitPrice: h.MinPrice,
			Currency:  h.Currency,
			Image:     h.MainImage,
		}, nil
	case ServiceUmrah:
		p, err := r.Umrah.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		return &ItemSnapshot{
			Slug:      p.Slug,
			Title:     p.Name,
			UnitPrice: p.Price,
			Currency:  p.Currency,
			Image:     p.MainImage,
		}, nil
	default:
		return nil, fmt.Errorf("unknown service type %q", service)
	}
}
