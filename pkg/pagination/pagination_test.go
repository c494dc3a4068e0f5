package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func testContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestLimit_Default(t *testing.T) {
	c := testContext("/")
	if got := Limit(c, DefaultLimit); got != DefaultLimit {
		t.Errorf("expected %d, got %d", DefaultLimit, got)
	}
}

func TestLimit_Explicit(t *testing.T) {
	c := testContext("/?limit=25")
	if got := Limit(c, DefaultLimit); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}
}

func TestLimit_Zero(t *testing.T) {
	c := testContext("/?limit=0")
	if got := Limit(c, DefaultLimit); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestLimit_Negative(t *testing.T) {
	c := testContext("/?limit=-5")
	if got := Limit(c, DefaultLimit); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestLimit_NonNumeric(t *testing.T) {
	c := testContext("/?limit=abc")
	if got := Limit(c, 10); got != 10 {
		t.Errorf("expected fallback 10, got %d", got)
	}
}
