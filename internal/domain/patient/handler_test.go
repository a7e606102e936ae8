package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinrec/clinrec/internal/platform/validation"
	"github.com/clinrec/clinrec/pkg/response"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	e.Validator = validation.New()
	return h, e
}

func decodeEnvelope(t *testing.T, body []byte) response.Envelope {
	t.Helper()
	var env response.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestHandler_CreatePatient(t *testing.T) {
	h, e := newTestHandler()

	body := `{"identifier":"MRN-1","givenName":"A","familyName":"B","birthDate":"1990-01-01","gender":"MALE"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec.Body.Bytes())
	if env.Message != "Patient created successfully" {
		t.Errorf("unexpected message %q", env.Message)
	}
	if env.Status != http.StatusCreated {
		t.Errorf("envelope status: expected 201, got %d", env.Status)
	}
	data := env.Data.(map[string]interface{})
	if data["identifier"] != "MRN-1" {
		t.Errorf("expected identifier MRN-1, got %v", data["identifier"])
	}
}

func TestHandler_CreatePatient_ValidationError(t *testing.T) {
	h, e := newTestHandler()

	// missing givenName, future birthDate
	body := `{"identifier":"MRN-1","familyName":"B","birthDate":"2990-01-01","gender":"MALE"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec.Body.Bytes())
	if env.Data != nil {
		t.Errorf("expected null data on failure, got %v", env.Data)
	}
}

func TestHandler_CreatePatient_InvalidGenderCase(t *testing.T) {
	h, e := newTestHandler()

	body := `{"identifier":"MRN-1","givenName":"A","familyName":"B","birthDate":"1990-01-01","gender":"male"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for lowercase gender, got %d", rec.Code)
	}
}

func TestHandler_GetPatient_NotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.GetPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec.Body.Bytes())
	if env.Message != "Patient not found" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestHandler_GetPatient_InvalidID(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.GetPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_UpdatePatient_FullReplace(t *testing.T) {
	h, e := newTestHandler()

	if _, err := h.svc.CreatePatient(nil, validDTO()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	body := `{"identifier":"MRN-1","givenName":"Ada","familyName":"Byron","birthDate":"1990-01-01","gender":"FEMALE"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.UpdatePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec.Body.Bytes())
	data := env.Data.(map[string]interface{})
	if data["familyName"] != "Byron" {
		t.Errorf("expected familyName Byron, got %v", data["familyName"])
	}
	if data["identifier"] != "MRN-1" {
		t.Errorf("expected identifier MRN-1, got %v", data["identifier"])
	}
}

func TestHandler_DeletePatient(t *testing.T) {
	h, e := newTestHandler()

	if _, err := h.svc.CreatePatient(nil, validDTO()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.DeletePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec.Body.Bytes())
	if env.Message != "Patient deleted successfully" {
		t.Errorf("unexpected message %q", env.Message)
	}

	// second delete
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.DeletePatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestHandler_SearchPatients_BadBirthDate(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/patients?birthDate=not-a-date", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SearchPatients(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_BirthDateRange_MissingBounds(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/patients/birthdate-range", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SearchByBirthDateRange(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_BirthDateRange_StartAfterEnd(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/patients/birthdate-range?start=2000-01-01&end=1990-01-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SearchByBirthDateRange(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
