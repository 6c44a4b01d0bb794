package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quiz-form/internal/domain"
	"quiz-form/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"form not found", domain.NewFormNotFoundError("x"), http.StatusNotFound, "FORM_NOT_FOUND"},
		{"result not ready", domain.NewResultNotReadyError("x"), http.StatusNotFound, "RESULT_NOT_READY"},
		{"unknown field", domain.NewUnknownFieldError("instructor"), http.StatusBadRequest, "UNKNOWN_FIELD"},
		{"invalid input", domain.NewInvalidInputError("bad"), http.StatusBadRequest, "INVALID_INPUT"},
		{"submit in progress", domain.NewSubmitInProgressError("x"), http.StatusConflict, "SUBMIT_IN_PROGRESS"},
		{"internal", domain.NewInternalError("boom", errors.New("cause")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"validation", domain.ValidationErrors{{Field: "id", Message: "bad"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"fiber", fiber.NewError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"unknown", errors.New("raw"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body["code"])
		})
	}
}

func TestErrorHandler_DetailsFromContext(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error { return domain.NewFormNotFoundError("01ABC") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "01ABC", body.Details["form_id"])
}

func TestValidateFormID(t *testing.T) {
	vm := NewValidationMiddleware()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/forms/:id", vm.ValidateFormID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalFormID).(string))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/forms/not-a-ulid", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	id := "01ARZ3NDEKTSV4RRFFQ69G5FAV"
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/forms/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, id, string(body))
}

func TestValidateFieldEvent(t *testing.T) {
	vm := NewValidationMiddleware()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Post("/change", vm.ValidateFieldEvent(), func(c *fiber.Ctx) error {
		field := c.Locals(LocalField).(domain.FieldName)
		return c.SendString(string(field) + "=" + c.Locals(LocalValue).(string))
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"valid", `{"field":"section","value":"A"}`, http.StatusOK, "section=A"},
		{"blur body", `{"field":"sem"}`, http.StatusOK, "sem="},
		{"unknown field", `{"field":"instructor","value":"x"}`, http.StatusBadRequest, ""},
		{"malformed", `{"field":`, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/change", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestRequestLogger_RecordsFinalStatus(t *testing.T) {
	registry := prometheus.NewRegistry()
	recorder := metrics.New(metrics.WithRegistry(registry), metrics.WithNamespace("test"))

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestLogger(recorder))
	app.Get("/missing", func(c *fiber.Ctx) error { return domain.NewFormNotFoundError("x") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	expected := `
# HELP test_http_requests_total HTTP requests, by method and status.
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",status="404"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "test_http_requests_total"))
}
