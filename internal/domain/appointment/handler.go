package appointment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vaccicare/vaccicare/internal/store"
	"github.com/vaccicare/vaccicare/pkg/pagination"
)

const dayLayout = "2006-01-02"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/appointments", h.CreateAppointment)
	api.GET("/appointments/upcoming", h.UpcomingAppointments)
	api.GET("/appointments/date/:date", h.AppointmentsByDate)
	api.PATCH("/appointments/:id", h.UpdateAppointment)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpcomingAppointments(c echo.Context) error {
	limit := pagination.Limit(c, pagination.DefaultLimit)
	items, err := h.svc.UpcomingEnriched(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get upcoming appointments")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AppointmentsByDate(c echo.Context) error {
	day, err := time.ParseInLocation(dayLayout, c.Param("date"), time.Local)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	items, err := h.svc.ByDayEnriched(c.Request().Context(), day)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get appointments for date")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var upd Update
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Update(c.Request().Context(), id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}
