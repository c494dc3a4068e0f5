package integration

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/vaccicare/vaccicare/internal/domain/appointment"
	"github.com/vaccicare/vaccicare/internal/domain/patient"
	"github.com/vaccicare/vaccicare/internal/domain/vaccination"
	"github.com/vaccicare/vaccicare/internal/domain/vaccine"
)

const jeanDupont = `{
	"firstName": "Jean",
	"lastName": "Dupont",
	"dateOfBirth": "1985-03-15",
	"socialSecurityNumber": "185037503612345",
	"phone": "0612345678",
	"email": "jean.dupont@example.fr"
}`

func TestPatientLifecycle(t *testing.T) {
	e := newServer()

	var created patient.Patient
	t.Run("Create", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/patients", jeanDupont)
		requireStatus(t, rec, http.StatusCreated)
		decode(t, rec, &created)
		if created.ID != 1 {
			t.Errorf("expected first patient to get id 1, got %d", created.ID)
		}
		if created.CreatedAt.IsZero() {
			t.Error("expected createdAt to be set")
		}
	})

	t.Run("DuplicateSSN", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/patients", jeanDupont)
		requireStatus(t, rec, http.StatusBadRequest)
		if !strings.Contains(rec.Body.String(), "social security number") {
			t.Errorf("expected duplicate-SSN message, got %s", rec.Body.String())
		}
	})

	t.Run("Get", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/patients/1", "")
		requireStatus(t, rec, http.StatusOK)
		var got patient.Patient
		decode(t, rec, &got)
		if got.LastName != "Dupont" {
			t.Errorf("wrong patient returned: %+v", got)
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/patients/42", "")
		requireStatus(t, rec, http.StatusNotFound)
	})

	t.Run("Search", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/patients/search?q=dup", "")
		requireStatus(t, rec, http.StatusOK)
		var got []patient.Patient
		decode(t, rec, &got)
		if len(got) != 1 || got[0].ID != 1 {
			t.Errorf("expected to find Jean Dupont, got %+v", got)
		}
	})

	t.Run("Update", func(t *testing.T) {
		rec := do(t, e, http.MethodPatch, "/api/patients/1", `{"phone":"0699999999"}`)
		requireStatus(t, rec, http.StatusOK)
		var got patient.Patient
		decode(t, rec, &got)
		if got.Phone == nil || *got.Phone != "0699999999" {
			t.Errorf("phone not updated: %+v", got.Phone)
		}
		if got.LastName != "Dupont" {
			t.Error("untouched field lost on partial update")
		}
	})
}

func TestVaccineCatalog(t *testing.T) {
	e := newServer()

	rec := do(t, e, http.MethodGet, "/api/vaccines", "")
	requireStatus(t, rec, http.StatusOK)
	var got []vaccine.Vaccine
	decode(t, rec, &got)
	if len(got) != 5 {
		t.Fatalf("expected 5 seeded vaccines, got %d", len(got))
	}
	if got[0].Name != "COVID-19 - Pfizer/BioNTech" {
		t.Errorf("unexpected first catalog entry: %q", got[0].Name)
	}

	rec = do(t, e, http.MethodPost, "/api/vaccines",
		`{"name":"Tétanos","manufacturer":"Sanofi","type":"toxoid"}`)
	requireStatus(t, rec, http.StatusCreated)
	var added vaccine.Vaccine
	decode(t, rec, &added)
	if added.ID != 6 {
		t.Errorf("expected catalog ids to continue at 6, got %d", added.ID)
	}
	if !added.IsActive {
		t.Error("expected new vaccine to default to active")
	}
}

func TestVaccinationFlow(t *testing.T) {
	e := newServer()
	do(t, e, http.MethodPost, "/api/patients", jeanDupont)

	var created vaccination.Vaccination
	t.Run("Record", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/vaccinations",
			`{"patientId":1,"vaccineId":1,"doctorId":1,"lotNumber":"EW0553","expirationDate":"2027-06-30","injectionSite":"left_arm"}`)
		requireStatus(t, rec, http.StatusCreated)
		decode(t, rec, &created)
		if !strings.HasPrefix(created.CertificateID, "VAC-") {
			t.Errorf("expected issued certificate id, got %q", created.CertificateID)
		}
		if created.QRCodeData == "" {
			t.Error("expected QR payload to be issued")
		}
		if created.AdministeredAt.IsZero() {
			t.Error("expected administeredAt to be stamped")
		}
	})

	t.Run("UnknownPatientAccepted", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/vaccinations",
			`{"patientId":99,"vaccineId":1,"doctorId":1,"lotNumber":"EW0554","expirationDate":"2027-06-30","injectionSite":"right_arm"}`)
		requireStatus(t, rec, http.StatusCreated)
	})

	t.Run("Recent", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/vaccinations/recent?limit=10", "")
		requireStatus(t, rec, http.StatusOK)
		var got []vaccination.Enriched
		decode(t, rec, &got)
		if len(got) != 2 {
			t.Fatalf("expected 2 vaccinations, got %d", len(got))
		}
		// The dose against the unknown patient has no joined record, the
		// other one does.
		for _, v := range got {
			switch v.PatientID {
			case 1:
				if v.Patient == nil || v.Patient.LastName != "Dupont" {
					t.Error("expected patient join on enriched listing")
				}
			case 99:
				if v.Patient != nil {
					t.Error("expected nil patient for dangling reference")
				}
			}
		}
	})

	t.Run("ByPatient", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/vaccinations/patient/1", "")
		requireStatus(t, rec, http.StatusOK)
		var got []vaccination.Enriched
		decode(t, rec, &got)
		if len(got) != 1 {
			t.Fatalf("expected 1 vaccination for patient 1, got %d", len(got))
		}
		if got[0].Vaccine == nil || got[0].Vaccine.Manufacturer != "Pfizer" {
			t.Error("expected vaccine join on patient history")
		}
	})

	t.Run("QRCode", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/vaccinations/1/qrcode", "")
		requireStatus(t, rec, http.StatusOK)
		if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("expected image/png, got %q", ct)
		}
		body := rec.Body.Bytes()
		if len(body) < 8 || body[0] != 0x89 || string(body[1:4]) != "PNG" {
			t.Error("response is not a PNG image")
		}
	})
}

func TestAppointmentFlow(t *testing.T) {
	e := newServer()
	do(t, e, http.MethodPost, "/api/patients", jeanDupont)

	at := time.Now().Add(24 * time.Hour)
	rec := do(t, e, http.MethodPost, "/api/appointments",
		`{"patientId":1,"doctorId":1,"appointmentDate":"`+at.Format(time.RFC3339)+`","appointmentType":"vaccination"}`)
	requireStatus(t, rec, http.StatusCreated)
	var created appointment.Appointment
	decode(t, rec, &created)
	if created.Status != appointment.StatusScheduled {
		t.Errorf("expected default status scheduled, got %q", created.Status)
	}

	t.Run("Upcoming", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/appointments/upcoming", "")
		requireStatus(t, rec, http.StatusOK)
		var got []appointment.Enriched
		decode(t, rec, &got)
		if len(got) != 1 || got[0].Patient == nil {
			t.Fatalf("expected 1 enriched upcoming appointment, got %+v", got)
		}
	})

	t.Run("ByDate", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/appointments/date/"+at.Local().Format("2006-01-02"), "")
		requireStatus(t, rec, http.StatusOK)
		var got []appointment.Enriched
		decode(t, rec, &got)
		if len(got) != 1 {
			t.Errorf("expected the appointment on its date, got %d", len(got))
		}
	})

	t.Run("Confirm", func(t *testing.T) {
		rec := do(t, e, http.MethodPatch, "/api/appointments/1", `{"status":"confirmed"}`)
		requireStatus(t, rec, http.StatusOK)
		var got appointment.Appointment
		decode(t, rec, &got)
		if got.Status != appointment.StatusConfirmed {
			t.Errorf("status not updated: %q", got.Status)
		}
	})
}

func TestDashboardStats(t *testing.T) {
	e := newServer()
	do(t, e, http.MethodPost, "/api/patients", jeanDupont)
	do(t, e, http.MethodPost, "/api/vaccinations",
		`{"patientId":1,"vaccineId":1,"doctorId":1,"lotNumber":"EW0553","expirationDate":"2027-06-30","injectionSite":"left_arm"}`)
	at := time.Now().Add(2 * time.Hour).Format(time.RFC3339)
	do(t, e, http.MethodPost, "/api/appointments",
		`{"patientId":1,"doctorId":1,"appointmentDate":"`+at+`","appointmentType":"vaccination"}`)

	rec := do(t, e, http.MethodGet, "/api/dashboard/stats", "")
	requireStatus(t, rec, http.StatusOK)
	var got map[string]int
	decode(t, rec, &got)
	if got["todayVaccinations"] != 1 {
		t.Errorf("todayVaccinations: expected 1, got %d", got["todayVaccinations"])
	}
	if got["activePatients"] != 1 {
		t.Errorf("activePatients: expected 1, got %d", got["activePatients"])
	}
	if got["upcomingAppointments"] != 1 {
		t.Errorf("upcomingAppointments: expected 1, got %d", got["upcomingAppointments"])
	}
	if got["certificatesGenerated"] != 1 {
		t.Errorf("certificatesGenerated: expected 1, got %d", got["certificatesGenerated"])
	}
}
