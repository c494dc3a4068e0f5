package vaccine

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/vaccines", h.ListVaccines)
	api.POST("/vaccines", h.CreateVaccine)
}

func (h *Handler) ListVaccines(c echo.Context) error {
	vaccines, err := h.svc.ListActive(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get vaccines")
	}
	return c.JSON(http.StatusOK, vaccines)
}

// createRequest mirrors Vaccine but lets an omitted isActive default to true.
type createRequest struct {
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer"`
	Type         string  `json:"type"`
	Description  *string `json:"description"`
	IsActive     *bool   `json:"isActive"`
}

func (h *Handler) CreateVaccine(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	v := Vaccine{
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Type:         req.Type,
		Description:  req.Description,
		IsActive:     true,
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}
	if err := h.svc.Create(c.Request().Context(), &v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, v)
}
