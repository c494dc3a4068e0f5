package vaccination

import "context"

type Repository interface {
	Create(ctx context.Context, v *Vaccination) error
	GetByID(ctx context.Context, id int) (*Vaccination, error)
	// ListByPatient returns the patient's vaccinations in insertion order.
	ListByPatient(ctx context.Context, patientID int) ([]*Vaccination, error)
	// Recent returns at most limit vaccinations, most recently administered
	// first. Ties keep insertion order.
	Recent(ctx context.Context, limit int) ([]*Vaccination, error)
}
