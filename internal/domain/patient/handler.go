package patient

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

// RegisterRoutes wires the admin-only patient endpoints. Patient data
// never appears on the public surface.
func (h *Handler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/patients", h.List)
	admin.GET("/patients/:id", h.Get)
	admin.POST("/patients", h.Create)
	admin.PUT("/patients/:id", h.Update)
	admin.DELETE("/patients/:id", h.Delete)
}

type upsertPatientRequest struct {
	FullName         string  `json:"full_name" validate:"required"`
	DOB              *string `json:"dob"`
	Gender           *string `json:"gender"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact"`
	MedicalHistory   *string `json:"medical_history"`
}

func (req *upsertPatientRequest) toModel() Patient {
	return Patient{
		FullName:         req.FullName,
		DOB:              req.DOB,
		Gender:           req.Gender,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		MedicalHistory:   req.MedicalHistory,
	}
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c echo.Context) error {
	var req upsertPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p := req.toModel()
	if err := h.svc.Create(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req upsertPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p := req.toModel()
	p.ID = id
	if err := h.svc.Update(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, p)
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
