package appointment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int) (*Appointment, error)
	// ByDay returns appointments whose date falls on the given calendar
	// day, in insertion order.
	ByDay(ctx context.Context, day time.Time) ([]*Appointment, error)
	// Upcoming returns at most limit appointments dated now or later,
	// soonest first.
	Upcoming(ctx context.Context, limit int) ([]*Appointment, error)
	Update(ctx context.Context, id int, upd Update) (*Appointment, error)
}
