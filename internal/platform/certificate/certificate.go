// Package certificate issues vaccination certificate identifiers and their
// QR payloads. An identifier carries no cryptographic binding to the record
// it names; the QR symbol encodes the payload verbatim and nothing more.
package certificate

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// NewID returns a certificate identifier of the form VAC-<year>-<6 digits>.
// Issued identifiers are not checked against previously issued ones, so a
// collision window exists within a calendar year.
func NewID(now time.Time) string {
	return fmt.Sprintf("VAC-%d-%06d", now.Year(), rand.Intn(1000000))
}

// Payload is the record serialized into a certificate's QR code.
type Payload struct {
	CertificateID  string `json:"certificateId"`
	PatientID      int    `json:"patientId"`
	VaccineID      int    `json:"vaccineId"`
	AdministeredAt string `json:"administeredAt"`
	LotNumber      string `json:"lotNumber"`
}

// NewPayload serializes the certificate payload for the given vaccination
// fields. The timestamp is rendered in RFC 3339 UTC.
func NewPayload(certificateID string, patientID, vaccineID int, administeredAt time.Time, lotNumber string) (string, error) {
	data, err := json.Marshal(Payload{
		CertificateID:  certificateID,
		PatientID:      patientID,
		VaccineID:      vaccineID,
		AdministeredAt: administeredAt.UTC().Format(time.RFC3339),
		LotNumber:      lotNumber,
	})
	if err != nil {
		return "", fmt.Errorf("marshal certificate payload: %w", err)
	}
	return string(data), nil
}

// PNG renders the payload as a scannable QR symbol of size x size pixels.
func PNG(payload string, size int) ([]byte, error) {
	img, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return img, nil
}
