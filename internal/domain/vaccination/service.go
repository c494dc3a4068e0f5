package vaccination

import (
	"context"
	"fmt"
	"time"

	"github.com/vaccicare/vaccicare/internal/domain/patient"
	"github.com/vaccicare/vaccicare/internal/domain/vaccine"
	"github.com/vaccicare/vaccicare/internal/platform/certificate"
)

// PatientGetter resolves a patient record for enrichment.
type PatientGetter interface {
	Get(ctx context.Context, id int) (*patient.Patient, error)
}

// VaccineGetter resolves a vaccine record for enrichment.
type VaccineGetter interface {
	Get(ctx context.Context, id int) (*vaccine.Vaccine, error)
}

type Service struct {
	repo     Repository
	patients PatientGetter
	vaccines VaccineGetter
}

func NewService(repo Repository, patients PatientGetter, vaccines VaccineGetter) *Service {
	return &Service{repo: repo, patients: patients, vaccines: vaccines}
}

// Create validates the dose, issues its certificate, and stores it. The
// referenced patient, vaccine, and doctor ids are stored without resolution:
// a dose recorded against an unknown patient is kept as-is.
func (s *Service) Create(ctx context.Context, v *Vaccination) error {
	if v.PatientID == 0 {
		return fmt.Errorf("patientId is required")
	}
	if v.VaccineID == 0 {
		return fmt.Errorf("vaccineId is required")
	}
	if v.DoctorID == 0 {
		return fmt.Errorf("doctorId is required")
	}
	if v.LotNumber == "" {
		return fmt.Errorf("lotNumber is required")
	}
	if v.ExpirationDate == "" {
		return fmt.Errorf("expirationDate is required")
	}
	if v.InjectionSite == "" {
		return fmt.Errorf("injectionSite is required")
	}

	now := time.Now()
	v.CertificateID = certificate.NewID(now)
	payload, err := certificate.NewPayload(v.CertificateID, v.PatientID, v.VaccineID, now, v.LotNumber)
	if err != nil {
		return err
	}
	v.QRCodeData = payload

	return s.repo.Create(ctx, v)
}

func (s *Service) Get(ctx context.Context, id int) (*Vaccination, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]*Vaccination, error) {
	return s.repo.Recent(ctx, limit)
}

// RecentEnriched returns the most recent vaccinations joined with their
// patient and vaccine records.
func (s *Service) RecentEnriched(ctx context.Context, limit int) ([]*Enriched, error) {
	items, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	enriched := make([]*Enriched, 0, len(items))
	for _, v := range items {
		e := &Enriched{Vaccination: *v}
		e.Patient, _ = s.patients.Get(ctx, v.PatientID)
		e.Vaccine, _ = s.vaccines.Get(ctx, v.VaccineID)
		enriched = append(enriched, e)
	}
	return enriched, nil
}

// ByPatientEnriched returns a patient's vaccinations joined with their
// vaccine records.
func (s *Service) ByPatientEnriched(ctx context.Context, patientID int) ([]*Enriched, error) {
	items, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	enriched := make([]*Enriched, 0, len(items))
	for _, v := range items {
		e := &Enriched{Vaccination: *v}
		e.Vaccine, _ = s.vaccines.Get(ctx, v.VaccineID)
		enriched = append(enriched, e)
	}
	return enriched, nil
}
