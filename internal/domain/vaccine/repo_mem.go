package vaccine

import (
	"context"
	"sync"

	"github.com/vaccicare/vaccicare/internal/store"
)

type memRepo struct {
	mu     sync.RWMutex
	byID   map[int]*Vaccine
	order  []int
	nextID int
}

// NewMemRepo returns an in-memory vaccine catalog pre-populated with the
// fixed default entries (ids 1 through 5).
func NewMemRepo() Repository {
	r := &memRepo{
		byID:   make(map[int]*Vaccine),
		nextID: 1,
	}
	for _, v := range defaultCatalog() {
		r.insert(v)
	}
	return r
}

func defaultCatalog() []*Vaccine {
	desc := func(s string) *string { return &s }
	return []*Vaccine{
		{Name: "COVID-19 - Pfizer/BioNTech", Manufacturer: "Pfizer", Type: "mRNA", Description: desc("Vaccin COVID-19 à ARN messager"), IsActive: true},
		{Name: "COVID-19 - Moderna", Manufacturer: "Moderna", Type: "mRNA", Description: desc("Vaccin COVID-19 à ARN messager"), IsActive: true},
		{Name: "Grippe saisonnière", Manufacturer: "Sanofi", Type: "inactivated", Description: desc("Vaccin antigrippal inactivé"), IsActive: true},
		{Name: "Hépatite B", Manufacturer: "GSK", Type: "recombinant", Description: desc("Vaccin contre l'hépatite B"), IsActive: true},
		{Name: "Rougeole-Oreillons-Rubéole (ROR)", Manufacturer: "Merck", Type: "live_attenuated", Description: desc("Vaccin trivalent vivant atténué"), IsActive: true},
	}
}

func (r *memRepo) insert(v *Vaccine) {
	v.ID = r.nextID
	r.nextID++
	r.byID[v.ID] = v
	r.order = append(r.order, v.ID)
}

func (r *memRepo) Create(_ context.Context, v *Vaccine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *v
	r.insert(&stored)
	v.ID = stored.ID
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int) (*Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *v
	return &out, nil
}

func (r *memRepo) ListActive(_ context.Context) ([]*Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []*Vaccine{}
	for _, id := range r.order {
		if v := r.byID[id]; v.IsActive {
			out := *v
			results = append(results, &out)
		}
	}
	return results, nil
}
