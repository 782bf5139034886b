package blog

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/luminadental/clinic/internal/platform/apperr"
	"github.com/luminadental/clinic/pkg/pagination"
)

type Handler struct {
	svc      *Svc
	validate *validator.Validate
}

func NewHandler(svc *Svc) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

// RegisterRoutes wires the public paginated listing and the admin CRUD
// endpoints.
func (h *Handler) RegisterRoutes(public, admin *echo.Group) {
	public.GET("/blog", h.Paginate)
	public.GET("/blog/categories", h.Categories)
	public.GET("/blog/:slug", h.GetBySlug)

	admin.GET("/blog", h.ListAll)
	admin.POST("/blog", h.Create)
	admin.PUT("/blog/:id", h.Update)
	admin.DELETE("/blog/:id", h.Delete)
}

type upsertPostRequest struct {
	Title            string  `json:"title" validate:"required"`
	Slug             string  `json:"slug"`
	Content          string  `json:"content" validate:"required"`
	Excerpt          string  `json:"excerpt" validate:"required"`
	Category         *string `json:"category"`
	FeaturedImageURL *string `json:"featured_image_url"`
	AuthorName       *string `json:"author_name"`
	SEOTitle         *string `json:"seo_title"`
	SEODescription   *string `json:"seo_description"`
}

func (req *upsertPostRequest) toModel() BlogPost {
	return BlogPost{
		Title:            req.Title,
		Slug:             req.Slug,
		Content:          req.Content,
		Excerpt:          req.Excerpt,
		Category:         req.Category,
		FeaturedImageURL: req.FeaturedImageURL,
		AuthorName:       req.AuthorName,
		SEOTitle:         req.SEOTitle,
		SEODescription:   req.SEODescription,
	}
}

func (h *Handler) Paginate(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.Paginate(c.Request().Context(), pg.Page, pg.PageSize, c.QueryParam("category"))
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg))
}

func (h *Handler) Categories(c echo.Context) error {
	counts, err := h.svc.CategoryCounts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *Handler) GetBySlug(c echo.Context) error {
	post, err := h.svc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, post)
}

func (h *Handler) ListAll(c echo.Context) error {
	items, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c echo.Context) error {
	var req upsertPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := req.toModel()
	if err := h.svc.Create(c.Request().Context(), &post); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, post)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req upsertPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := req.toModel()
	post.ID = id
	if err := h.svc.Update(c.Request().Context(), &post); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, post)
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
