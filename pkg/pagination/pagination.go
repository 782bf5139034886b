package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Params holds pagination parameters extracted from a request. Page is
// 1-indexed; Offset is derived as (Page-1)*PageSize.
type Params struct {
	Page     int
	PageSize int
}

// FromContext extracts pagination parameters from the echo context. It accepts
// page/page_size and falls back to limit/offset for callers that think in
// offsets.
func FromContext(c echo.Context) Params {
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	if size <= 0 {
		size, _ = strconv.Atoi(c.QueryParam("limit"))
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		if offset > 0 {
			page = offset/size + 1
		} else {
			page = 1
		}
	}

	return Params{Page: page, PageSize: size}
}

// Offset returns the row offset for SQL queries.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the page size; alias kept for repository signatures.
func (p Params) Limit() int {
	return p.PageSize
}

// Response wraps a paginated API response. Total is the filtered count across
// all pages, not the count of the current page.
type Response struct {
	Data     interface{} `json:"data"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	HasMore  bool        `json:"has_more"`
}

func NewResponse(data interface{}, total int, p Params) *Response {
	return &Response{
		Data:     data,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
		HasMore:  p.Offset()+p.PageSize < total,
	}
}
