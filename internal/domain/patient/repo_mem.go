package patient

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vaccicare/vaccicare/internal/store"
)

// memRepo keeps patients in an insertion-ordered map guarded by a mutex.
// Identifiers are allocated from a process-wide counter starting at 1 and
// are never reused.
type memRepo struct {
	mu     sync.RWMutex
	byID   map[int]*Patient
	order  []int
	nextID int
}

func NewMemRepo() Repository {
	return &memRepo{
		byID:   make(map[int]*Patient),
		nextID: 1,
	}
}

func (r *memRepo) Create(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()

	stored := *p
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *p
	return &out, nil
}

func (r *memRepo) GetBySSN(_ context.Context, ssn string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if p := r.byID[id]; p.SocialSecurityNumber == ssn {
			out := *p
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

// Search matches case-insensitively against first and last names, and
// verbatim against the SSN string. Results come back in insertion order.
func (r *memRepo) Search(_ context.Context, query string) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(query)
	results := []*Patient{}
	for _, id := range r.order {
		p := r.byID[id]
		if strings.Contains(strings.ToLower(p.FirstName), lower) ||
			strings.Contains(strings.ToLower(p.LastName), lower) ||
			strings.Contains(p.SocialSecurityNumber, query) {
			out := *p
			results = append(results, &out)
		}
	}
	return results, nil
}

func (r *memRepo) Update(_ context.Context, id int, upd Update) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	if upd.FirstName != nil {
		p.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		p.LastName = *upd.LastName
	}
	if upd.DateOfBirth != nil {
		p.DateOfBirth = *upd.DateOfBirth
	}
	if upd.SocialSecurityNumber != nil {
		p.SocialSecurityNumber = *upd.SocialSecurityNumber
	}
	if upd.Phone != nil {
		p.Phone = upd.Phone
	}
	if upd.Email != nil {
		p.Email = upd.Email
	}
	if upd.Address != nil {
		p.Address = upd.Address
	}

	out := *p
	return &out, nil
}

func (r *memRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
