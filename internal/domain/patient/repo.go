package patient

import "context"

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int) (*Patient, error)
	GetBySSN(ctx context.Context, ssn string) (*Patient, error)
	Search(ctx context.Context, query string) ([]*Patient, error)
	Update(ctx context.Context, id int, upd Update) (*Patient, error)
	Count(ctx context.Context) (int, error)
}
