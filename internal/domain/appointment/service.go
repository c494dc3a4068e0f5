package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/vaccicare/vaccicare/internal/domain/patient"
)

var validStatuses = map[string]bool{
	StatusScheduled: true,
	StatusConfirmed: true,
	StatusPending:   true,
	StatusCompleted: true,
}

// PatientGetter resolves a patient record for enrichment.
type PatientGetter interface {
	Get(ctx context.Context, id int) (*patient.Patient, error)
}

type Service struct {
	repo     Repository
	patients PatientGetter
}

func NewService(repo Repository, patients PatientGetter) *Service {
	return &Service{repo: repo, patients: patients}
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.PatientID == 0 {
		return fmt.Errorf("patientId is required")
	}
	if a.DoctorID == 0 {
		return fmt.Errorf("doctorId is required")
	}
	if a.AppointmentDate.IsZero() {
		return fmt.Errorf("appointmentDate is required")
	}
	if a.AppointmentType == "" {
		return fmt.Errorf("appointmentType is required")
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id int) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int, upd Update) (*Appointment, error) {
	if upd.Status != nil && !validStatuses[*upd.Status] {
		return nil, fmt.Errorf("invalid status: %s", *upd.Status)
	}
	return s.repo.Update(ctx, id, upd)
}

func (s *Service) Upcoming(ctx context.Context, limit int) ([]*Appointment, error) {
	return s.repo.Upcoming(ctx, limit)
}

// UpcomingEnriched returns upcoming appointments joined with their patient
// records.
func (s *Service) UpcomingEnriched(ctx context.Context, limit int) ([]*Enriched, error) {
	items, err := s.repo.Upcoming(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, items), nil
}

// ByDayEnriched returns the given day's appointments joined with their
// patient records.
func (s *Service) ByDayEnriched(ctx context.Context, day time.Time) ([]*Enriched, error) {
	items, err := s.repo.ByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, items), nil
}

func (s *Service) enrich(ctx context.Context, items []*Appointment) []*Enriched {
	enriched := make([]*Enriched, 0, len(items))
	for _, a := range items {
		e := &Enriched{Appointment: *a}
		e.Patient, _ = s.patients.Get(ctx, a.PatientID)
		enriched = append(enriched, e)
	}
	return enriched
}
