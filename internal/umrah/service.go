package umrah

import "context"

type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

func (s *Service) List(ctx context.Context, f Facets) ([]Package, error) {
	packages, err := s.Repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(packages, f), nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Package, error) {
	return s.Repo.FetchBySlug(ctx, slug)
}
