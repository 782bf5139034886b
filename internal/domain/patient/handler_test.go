package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func setupHandler() (*echo.Echo, *Handler) {
	e := echo.New()
	h := NewHandler(NewSvc(newMockRepo()))
	h.RegisterRoutes(e.Group("/api/v1/admin"))
	return e, h
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandlerCreate_ReturnsCreatedPatient(t *testing.T) {
	e, _ := setupHandler()
	rec := doJSON(e, http.MethodPost, "/api/v1/admin/patients",
		`{"full_name":"Jordan Reyes","phone":"555-0101"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var p Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if p.FullName != "Jordan Reyes" {
		t.Errorf("expected full name round-tripped, got %q", p.FullName)
	}
	if p.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected an assigned id")
	}
}

func TestHandlerCreate_RejectsMissingName(t *testing.T) {
	e, _ := setupHandler()
	rec := doJSON(e, http.MethodPost, "/api/v1/admin/patients", `{"phone":"555-0101"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandlerCreate_RejectsBadEmail(t *testing.T) {
	e, _ := setupHandler()
	rec := doJSON(e, http.MethodPost, "/api/v1/admin/patients",
		`{"full_name":"Jordan Reyes","email":"not-an-email"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandlerGet_UnknownIDReturns404(t *testing.T) {
	e, _ := setupHandler()
	rec := doJSON(e, http.MethodGet, "/api/v1/admin/patients/6f1f9f1a-0f58-4f3c-9f0c-2f4f6b7a8c9d", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandlerDelete_MissingIsNoContent(t *testing.T) {
	e, _ := setupHandler()
	rec := doJSON(e, http.MethodDelete, "/api/v1/admin/patients/6f1f9f1a-0f58-4f3c-9f0c-2f4f6b7a8c9d", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
