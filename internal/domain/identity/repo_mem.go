package identity

import (
	"context"
	"sync"
	"time"

	"github.com/vaccicare/vaccicare/internal/store"
)

// memRepo keeps user accounts in process memory. Contents are lost on
// restart.
type memRepo struct {
	mu     sync.RWMutex
	byID   map[int]*User
	nextID int
}

func NewMemRepo() Repository {
	return &memRepo{
		byID:   make(map[int]*User),
		nextID: 1,
	}
}

func (r *memRepo) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now()

	stored := *u
	r.byID[u.ID] = &stored
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) GetByUsername(_ context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}
