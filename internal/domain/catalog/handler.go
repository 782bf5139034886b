package catalog

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/luminadental/clinic/internal/platform/apperr"
)

type Handler struct {
	svc      *Svc
	validate *validator.Validate
}

func NewHandler(svc *Svc) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

// RegisterRoutes wires the public catalog listing and the admin CRUD
// endpoints.
func (h *Handler) RegisterRoutes(public, admin *echo.Group) {
	public.GET("/services", h.ListPublic)

	admin.GET("/services", h.ListAll)
	admin.POST("/services", h.Create)
	admin.PUT("/services/:id", h.Update)
	admin.DELETE("/services/:id", h.Delete)
}

type upsertServiceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Price       float64 `json:"price" validate:"gte=0"`
	IconName    *string `json:"icon_name"`
	IsActive    bool    `json:"is_active"`
}

func (h *Handler) ListPublic(c echo.Context) error {
	items, err := h.svc.ListPublic(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListAll(c echo.Context) error {
	items, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c echo.Context) error {
	var req upsertServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc := Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		IconName:    req.IconName,
		IsActive:    req.IsActive,
	}
	if err := h.svc.Create(c.Request().Context(), &svc); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, svc)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req upsertServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc := Service{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		IconName:    req.IconName,
		IsActive:    req.IsActive,
	}
	if err := h.svc.Update(c.Request().Context(), &svc); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, svc)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
