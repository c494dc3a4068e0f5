package appointment

import (
	"time"

	"github.com/vaccicare/vaccicare/internal/domain/patient"
)

// Appointment statuses. No transition rules are enforced between them.
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Appointment struct {
	ID              int       `json:"id"`
	PatientID       int       `json:"patientId"`
	DoctorID        int       `json:"doctorId"`
	AppointmentDate time.Time `json:"appointmentDate"`
	AppointmentType string    `json:"appointmentType"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Update carries a partial appointment update. Nil fields keep their stored
// value.
type Update struct {
	PatientID       *int       `json:"patientId"`
	DoctorID        *int       `json:"doctorId"`
	AppointmentDate *time.Time `json:"appointmentDate"`
	AppointmentType *string    `json:"appointmentType"`
	Status          *string    `json:"status"`
	Notes           *string    `json:"notes"`
}

// Enriched is an appointment joined with its patient record at read time.
type Enriched struct {
	Appointment
	Patient *patient.Patient `json:"patient,omitempty"`
}
