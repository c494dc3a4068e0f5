package vaccine

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, v *Vaccine) error {
	if v.Name == "" {
		return fmt.Errorf("name is required")
	}
	if v.Manufacturer == "" {
		return fmt.Errorf("manufacturer is required")
	}
	if v.Type == "" {
		return fmt.Errorf("type is required")
	}
	return s.repo.Create(ctx, v)
}

func (s *Service) Get(ctx context.Context, id int) (*Vaccine, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListActive(ctx context.Context) ([]*Vaccine, error) {
	return s.repo.ListActive(ctx)
}
