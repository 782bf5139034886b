package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func setupHandler(t *testing.T) (*Handler, *mockRepo) {
	t.Helper()
	repo := newMockRepo()
	return NewHandler(NewSvc(repo)), repo
}

func TestHandlerCreate_Valid(t *testing.T) {
	h, repo := setupHandler(t)

	body := `{"name":"Cleaning","price":80,"is_active":true}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/services", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(repo.services) != 1 {
		t.Fatalf("expected one stored service, got %d", len(repo.services))
	}
}

func TestHandlerCreate_MissingName(t *testing.T) {
	h, _ := setupHandler(t)

	body := `{"price":80}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/services", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandlerCreate_NegativePrice(t *testing.T) {
	h, _ := setupHandler(t)

	body := `{"name":"Cleaning","price":-5}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/services", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandlerListPublic_OnlyActive(t *testing.T) {
	h, repo := setupHandler(t)

	active := &Service{Name: "Cleaning", Price: 80, IsActive: true}
	inactive := &Service{Name: "Implants", Price: 1200}
	_ = repo.Create(context.Background(), active)
	_ = repo.Create(context.Background(), inactive)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListPublic(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var items []Service
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Cleaning" {
		t.Fatalf("expected the active service only, got %v", items)
	}
}

func TestHandlerDelete_InvalidID(t *testing.T) {
	h, _ := setupHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/admin/services/nope", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
