package vaccination

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vaccicare/vaccicare/internal/store"
)

type memRepo struct {
	mu     sync.RWMutex
	byID   map[int]*Vaccination
	order  []int
	nextID int
}

func NewMemRepo() Repository {
	return &memRepo{
		byID:   make(map[int]*Vaccination),
		nextID: 1,
	}
}

func (r *memRepo) Create(_ context.Context, v *Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v.ID = r.nextID
	r.nextID++
	v.AdministeredAt = time.Now()

	stored := *v
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int) (*Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *v
	return &out, nil
}

func (r *memRepo) ListByPatient(_ context.Context, patientID int) ([]*Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []*Vaccination{}
	for _, id := range r.order {
		if v := r.byID[id]; v.PatientID == patientID {
			out := *v
			results = append(results, &out)
		}
	}
	return results, nil
}

func (r *memRepo) Recent(_ context.Context, limit int) ([]*Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Vaccination, 0, len(r.order))
	for _, id := range r.order {
		out := *r.byID[id]
		all = append(all, &out)
	}
	// Stable sort so equal timestamps keep insertion order.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].AdministeredAt.After(all[j].AdministeredAt)
	})
	if limit < 0 {
		limit = 0
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
