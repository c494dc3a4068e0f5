package vaccine

import "context"

type Repository interface {
	Create(ctx context.Context, v *Vaccine) error
	GetByID(ctx context.Context, id int) (*Vaccine, error)
	// ListActive returns active catalog entries in insertion order.
	ListActive(ctx context.Context) ([]*Vaccine, error)
}
