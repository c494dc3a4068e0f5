package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestDashboardStats(t *testing.T) {
	e := echo.New()
	svc := NewService(&fakeVaccinations{}, &fakePatients{n: 3}, &fakeAppointments{})
	NewHandler(svc).RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	for _, key := range []string{"todayVaccinations", "activePatients", "upcomingAppointments", "certificatesGenerated"} {
		if _, ok := got[key]; !ok {
			t.Errorf("missing field %q in response", key)
		}
	}
	if got["activePatients"] != 3 {
		t.Errorf("activePatients: expected 3, got %d", got["activePatients"])
	}
}
