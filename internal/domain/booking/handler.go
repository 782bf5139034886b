package booking

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/luminadental/clinic/internal/platform/apperr"
)

type Handler struct {
	svc      *Service
	validate *validator.Validate
	now      func() time.Time
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, validate: validator.New(), now: time.Now}
}

// RegisterRoutes wires the public booking endpoints and the admin
// lifecycle, calendar, and dashboard endpoints.
func (h *Handler) RegisterRoutes(public, admin *echo.Group) {
	public.POST("/appointments", h.SubmitBooking)
	public.GET("/appointments/reschedule", h.GetRescheduleProposal)
	public.POST("/appointments/reschedule/confirm", h.ConfirmReschedule)

	admin.GET("/appointments", h.List)
	admin.GET("/appointments/calendar", h.Calendar)
	admin.GET("/appointments/:id", h.Get)
	admin.POST("/appointments/:id/confirm", h.Confirm)
	admin.POST("/appointments/:id/reject", h.Reject)
	admin.POST("/appointments/:id/reschedule", h.ProposeReschedule)
	admin.DELETE("/appointments/:id", h.Delete)
	admin.GET("/dashboard", h.Dashboard)
}

type bookingRequest struct {
	FirstName     string  `json:"first_name" validate:"required"`
	LastName      string  `json:"last_name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	ServiceID     *string `json:"service_id"`
	PreferredDate string  `json:"preferred_date" validate:"required"`
	PreferredTime *string `json:"preferred_time"`
	Message       *string `json:"message"`
}

type rescheduleRequest struct {
	NewDate string `json:"new_date" validate:"required"`
	NewTime string `json:"new_time"`
}

// codedError keeps the taxonomy code in the response body so the
// reschedule page can distinguish already-confirmed from expired links.
func codedError(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), map[string]string{
		"code":  string(apperr.CodeOf(err)),
		"error": err.Error(),
	})
}

func (h *Handler) SubmitBooking(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt := Appointment{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
	}
	if req.ServiceID != nil && *req.ServiceID != "" {
		sid, err := uuid.Parse(*req.ServiceID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid service_id")
		}
		appt.ServiceID = &sid
	}

	if err := h.svc.SubmitBooking(c.Request().Context(), &appt); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *Handler) GetRescheduleProposal(c echo.Context) error {
	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appt, err := h.svc.GetRescheduleProposal(c.Request().Context(), id)
	if err != nil {
		return codedError(c, err)
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) ConfirmReschedule(c echo.Context) error {
	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appt, err := h.svc.ConfirmReschedule(c.Request().Context(), id)
	if err != nil {
		return codedError(c, err)
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context(), Status(c.QueryParam("status")))
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
	appt, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) Confirm(c echo.Context) error {
	return h.resolve(c, h.svc.Confirm)
}

func (h *Handler) Reject(c echo.Context) error {
	return h.resolve(c, h.svc.Reject)
}

func (h *Handler) resolve(c echo.Context, fn func(ctx context.Context, id uuid.UUID) (*Appointment, error)) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appt, err := fn(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) ProposeReschedule(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req rescheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.svc.ProposeReschedule(c.Request().Context(), id, req.NewDate, req.NewTime)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, appt)
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

// Calendar returns the month grid for ?month=YYYY-MM (defaults to the
// current month).
func (h *Handler) Calendar(c echo.Context) error {
	now := h.now()
	year, month := now.Year(), now.Month()
	if m := c.QueryParam("month"); m != "" {
		parsed, err := time.Parse("2006-01", m)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "month must be YYYY-MM")
		}
		year, month = parsed.Year(), parsed.Month()
	}

	appts, err := h.svc.List(c.Request().Context(), "")
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"year":  year,
		"month": int(month),
		"grid":  BuildCalendarGrid(appts, year, month),
	})
}

type dashboardResponse struct {
	TotalAppointments int            `json:"total_appointments"`
	PendingCount      int            `json:"pending_count"`
	PendingToday      int            `json:"pending_today"`
	WeeklyHistogram   []WeekdayCount `json:"weekly_histogram"`
	NextUpcoming      []*Appointment `json:"next_upcoming"`
}

func (h *Handler) Dashboard(c echo.Context) error {
	appts, err := h.svc.List(c.Request().Context(), "")
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}

	now := h.now()
	pending := 0
	for _, a := range appts {
		if a.Status == StatusPending {
			pending++
		}
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		TotalAppointments: len(appts),
		PendingCount:      pending,
		PendingToday:      PendingToday(appts, now),
		WeeklyHistogram:   BuildWeeklyHistogram(appts),
		NextUpcoming:      NextUpcoming(appts, now),
	})
}
