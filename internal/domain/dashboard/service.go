package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/vaccicare/vaccicare/internal/domain/appointment"
	"github.com/vaccicare/vaccicare/internal/domain/vaccination"
)

// recentScanWindow bounds how far back the stats computation looks. Only
// the most recent rows are scanned, so on a busy day the today counter
// undercounts once more than this many vaccinations have been recorded.
const recentScanWindow = 100

// upcomingFetchLimit caps the upcoming-appointments counter.
const upcomingFetchLimit = 7

// Stats is the aggregate summary shown on the clinic dashboard.
type Stats struct {
	TodayVaccinations     int `json:"todayVaccinations"`
	ActivePatients        int `json:"activePatients"`
	UpcomingAppointments  int `json:"upcomingAppointments"`
	CertificatesGenerated int `json:"certificatesGenerated"`
}

// VaccinationSource yields the most recent vaccinations, newest first.
type VaccinationSource interface {
	Recent(ctx context.Context, limit int) ([]*vaccination.Vaccination, error)
}

// PatientCounter reports the total number of patient records.
type PatientCounter interface {
	Count(ctx context.Context) (int, error)
}

// AppointmentSource yields upcoming appointments in ascending date order.
type AppointmentSource interface {
	Upcoming(ctx context.Context, limit int) ([]*appointment.Appointment, error)
}

type Service struct {
	vaccinations VaccinationSource
	patients     PatientCounter
	appointments AppointmentSource
	now          func() time.Time
}

func NewService(vaccinations VaccinationSource, patients PatientCounter, appointments AppointmentSource) *Service {
	return &Service{
		vaccinations: vaccinations,
		patients:     patients,
		appointments: appointments,
		now:          time.Now,
	}
}

// Stats recomputes the dashboard counters from the stores. Today-based
// counters compare calendar days in UTC.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	recent, err := s.vaccinations.Recent(ctx, recentScanWindow)
	if err != nil {
		return nil, fmt.Errorf("recent vaccinations: %w", err)
	}
	today := s.now().UTC()
	todayCount := 0
	certificates := 0
	for _, v := range recent {
		if sameUTCDay(v.AdministeredAt, today) {
			todayCount++
		}
		if v.CertificateID != "" {
			certificates++
		}
	}

	patients, err := s.patients.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}
	upcoming, err := s.appointments.Upcoming(ctx, upcomingFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("upcoming appointments: %w", err)
	}

	return &Stats{
		TodayVaccinations:     todayCount,
		ActivePatients:        patients,
		UpcomingAppointments:  len(upcoming),
		CertificatesGenerated: certificates,
	}, nil
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
