package hotel

import "context"

type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

func (s *Service) List(ctx context.Context, f Facets) ([]Hotel, error) {
	hotels, err := s.Repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(hotels, f), nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Hotel, error) {
	return s.Repo.FetchBySlug(ctx, slug)
}
