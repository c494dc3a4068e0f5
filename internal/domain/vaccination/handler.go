package vaccination

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vaccicare/vaccicare/internal/platform/certificate"
	"github.com/vaccicare/vaccicare/pkg/pagination"
)

const qrImageSize = 256

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/vaccinations", h.CreateVaccination)
	api.GET("/vaccinations/recent", h.RecentVaccinations)
	api.GET("/vaccinations/patient/:patientId", h.PatientVaccinations)
	api.GET("/vaccinations/:id", h.GetVaccination)
	api.GET("/vaccinations/:id/qrcode", h.VaccinationQRCode)
}

func (h *Handler) CreateVaccination(c echo.Context) error {
	var v Vaccination
	if err := c.Bind(&v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *Handler) GetVaccination(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	v, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "vaccination not found")
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) RecentVaccinations(c echo.Context) error {
	limit := pagination.Limit(c, pagination.DefaultLimit)
	items, err := h.svc.RecentEnriched(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get recent vaccinations")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) PatientVaccinations(c echo.Context) error {
	patientID, err := strconv.Atoi(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	items, err := h.svc.ByPatientEnriched(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get patient vaccinations")
	}
	return c.JSON(http.StatusOK, items)
}

// VaccinationQRCode renders the stored certificate payload as a scannable
// QR symbol.
func (h *Handler) VaccinationQRCode(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	v, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "vaccination not found")
	}
	img, err := certificate.PNG(v.QRCodeData, qrImageSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render qr code")
	}
	return c.Blob(http.StatusOK, "image/png", img)
}
