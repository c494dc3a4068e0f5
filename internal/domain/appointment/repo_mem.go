package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vaccicare/vaccicare/internal/store"
)

type memRepo struct {
	mu     sync.RWMutex
	byID   map[int]*Appointment
	order  []int
	nextID int
}

func NewMemRepo() Repository {
	return &memRepo{
		byID:   make(map[int]*Appointment),
		nextID: 1,
	}
}

func (r *memRepo) Create(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	a.CreatedAt = time.Now()

	stored := *a
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *a
	return &out, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

func (r *memRepo) ByDay(_ context.Context, day time.Time) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []*Appointment{}
	for _, id := range r.order {
		if a := r.byID[id]; sameDay(a.AppointmentDate, day) {
			out := *a
			results = append(results, &out)
		}
	}
	return results, nil
}

func (r *memRepo) Upcoming(_ context.Context, limit int) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	results := []*Appointment{}
	for _, id := range r.order {
		if a := r.byID[id]; !a.AppointmentDate.Before(now) {
			out := *a
			results = append(results, &out)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AppointmentDate.Before(results[j].AppointmentDate)
	})
	if limit < 0 {
		limit = 0
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (r *memRepo) Update(_ context.Context, id int, upd Update) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	if upd.PatientID != nil {
		a.PatientID = *upd.PatientID
	}
	if upd.DoctorID != nil {
		a.DoctorID = *upd.DoctorID
	}
	if upd.AppointmentDate != nil {
		a.AppointmentDate = *upd.AppointmentDate
	}
	if upd.AppointmentType != nil {
		a.AppointmentType = *upd.AppointmentType
	}
	if upd.Status != nil {
		a.Status = *upd.Status
	}
	if upd.Notes != nil {
		a.Notes = upd.Notes
	}

	out := *a
	return &out, nil
}
