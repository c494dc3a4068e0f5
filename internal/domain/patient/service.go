package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vaccicare/vaccicare/internal/store"
)

// ErrDuplicateSSN is returned when a patient with the given social security
// number already exists.
var ErrDuplicateSSN = errors.New("patient with this social security number already exists")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.FirstName == "" {
		return fmt.Errorf("firstName is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("lastName is required")
	}
	if p.DateOfBirth == "" {
		return fmt.Errorf("dateOfBirth is required")
	}
	if p.SocialSecurityNumber == "" {
		return fmt.Errorf("socialSecurityNumber is required")
	}

	// The uniqueness check and the insert are separate repository calls;
	// two concurrent creates with the same SSN can both pass the check.
	_, err := s.repo.GetBySSN(ctx, p.SocialSecurityNumber)
	switch {
	case err == nil:
		return ErrDuplicateSSN
	case !errors.Is(err, store.ErrNotFound):
		return err
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns patients matching the query; a blank query matches nothing.
func (s *Service) Search(ctx context.Context, query string) ([]*Patient, error) {
	if strings.TrimSpace(query) == "" {
		return []*Patient{}, nil
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) Update(ctx context.Context, id int, upd Update) (*Patient, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
