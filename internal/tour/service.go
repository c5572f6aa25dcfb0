package tour

import "context"

// Service wraps listing and detail lookups for tours
type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

// List fetches the full catalog and applies the requested facets client-side;
// filter changes never trigger a re-fetch upstream of this call.
func (s *Service) List(ctx context.Context, f Facets) ([]Tour, error) {
	tours, err := s.Repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(tours, f), nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Tour, error) {
	return s.Repo.FetchBySlug(ctx, slug)
}
