package integration

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vaccicare/vaccicare/internal/domain/appointment"
	"github.com/vaccicare/vaccicare/internal/domain/dashboard"
	"github.com/vaccicare/vaccicare/internal/domain/patient"
	"github.com/vaccicare/vaccicare/internal/domain/vaccination"
	"github.com/vaccicare/vaccicare/internal/domain/vaccine"
)

// newServer wires the full API against fresh in-memory stores, the same way
// the serve command does minus logging and rate limiting.
func newServer() *echo.Echo {
	e := echo.New()

	patientSvc := patient.NewService(patient.NewMemRepo())
	vaccineSvc := vaccine.NewService(vaccine.NewMemRepo())
	vaccinationSvc := vaccination.NewService(vaccination.NewMemRepo(), patientSvc, vaccineSvc)
	appointmentSvc := appointment.NewService(appointment.NewMemRepo(), patientSvc)
	dashboardSvc := dashboard.NewService(vaccinationSvc, patientSvc, appointmentSvc)

	api := e.Group("/api")
	patient.NewHandler(patientSvc).RegisterRoutes(api)
	vaccine.NewHandler(vaccineSvc).RegisterRoutes(api)
	vaccination.NewHandler(vaccinationSvc).RegisterRoutes(api)
	appointment.NewHandler(appointmentSvc).RegisterRoutes(api)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(api)

	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
