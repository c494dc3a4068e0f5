package identity

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vaccicare/vaccicare/internal/store"
)

var ErrDuplicateUsername = errors.New("username already taken")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a user account, hashing the given plaintext password.
// The uniqueness check and the insert are separate steps, so concurrent
// registrations of the same username can both succeed.
func (s *Service) Register(ctx context.Context, u *User, password string) error {
	if u.Username == "" {
		return fmt.Errorf("username is required")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if u.FirstName == "" {
		return fmt.Errorf("firstName is required")
	}
	if u.LastName == "" {
		return fmt.Errorf("lastName is required")
	}
	if u.Role == "" {
		u.Role = RoleDoctor
	}
	if _, err := s.repo.GetByUsername(ctx, u.Username); err == nil {
		return ErrDuplicateUsername
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return s.repo.Create(ctx, u)
}

func (s *Service) Get(ctx context.Context, id int) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Authenticate checks a username/password pair against the stored hash.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return u, nil
}
