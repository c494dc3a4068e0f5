package vaccination

import (
	"time"

	"github.com/vaccicare/vaccicare/internal/domain/patient"
	"github.com/vaccicare/vaccicare/internal/domain/vaccine"
)

// Vaccination is an administered dose. Records are immutable once created;
// certificateId and qrCodeData are issued by the server at creation time and
// never supplied by the caller. The signature, when present, is an opaque
// client-drawn image payload with no cryptographic meaning.
type Vaccination struct {
	ID             int       `json:"id"`
	PatientID      int       `json:"patientId"`
	VaccineID      int       `json:"vaccineId"`
	DoctorID       int       `json:"doctorId"`
	LotNumber      string    `json:"lotNumber"`
	ExpirationDate string    `json:"expirationDate"`
	InjectionSite  string    `json:"injectionSite"`
	Dosage         *string   `json:"dosage"`
	Notes          *string   `json:"notes"`
	CertificateID  string    `json:"certificateId"`
	QRCodeData     string    `json:"qrCodeData"`
	Signature      *string   `json:"signature"`
	AdministeredAt time.Time `json:"administeredAt"`
}

// Enriched is a vaccination joined with its related records at read time.
// A dangling reference leaves the joined field null rather than failing the
// request.
type Enriched struct {
	Vaccination
	Patient *patient.Patient `json:"patient,omitempty"`
	Vaccine *vaccine.Vaccine `json:"vaccine,omitempty"`
}
