package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"studybyte/internal/domain"
	"studybyte/internal/util"
	"studybyte/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	logger := zap.NewNop()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger)})
	app.Use(requestid.New())
	app.Use(RequestLogger(logger))
	app.Get("/test", handler)
	return app
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"material not found", domain.NewMaterialNotFoundError("01HZY"), http.StatusNotFound, string(domain.CodeMaterialNotFound)},
		{"unsupported type", domain.NewUnsupportedFileTypeError(".exe"), http.StatusBadRequest, string(domain.CodeUnsupportedFileType)},
		{"empty content", domain.NewEmptyContentError(), http.StatusBadRequest, string(domain.CodeEmptyContent)},
		{"too large", domain.NewContentTooLargeError(2048, 1024), http.StatusRequestEntityTooLarge, string(domain.CodeContentTooLarge)},
		{"llm", domain.NewLLMServiceError(errors.New("down")), http.StatusServiceUnavailable, string(domain.CodeLLMServiceError)},
		{"internal", domain.NewInternalError("boom", nil), http.StatusInternalServerError, string(domain.CodeInternal)},
		{"wrapped", errors.Join(errors.New("ctx"), domain.NewInvalidInputError("bad")), http.StatusBadRequest, string(domain.CodeInvalidInput)},
		{"fiber", fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"unknown", errors.New("mystery"), http.StatusInternalServerError, string(domain.CodeInternal)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

			var body ErrorResponse
			raw, _ := io.ReadAll(resp.Body)
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
		})
	}
}

func TestErrorHandler_DetailsFromContext(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error { return domain.NewUnsupportedFileTypeError(".exe") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, ".exe", body.Details["extension"])
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return domain.ValidationErrors{domain.NewMissingFieldError("filename")}
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeValidation), body.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "filename", body.Errors[0].Field)
}

func TestValidationMiddleware(t *testing.T) {
	vm := NewValidationMiddleware(validation.NewValidator(50))
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Get("/sections/:section", vm.ValidateSection(), func(c *fiber.Ctx) error {
		return c.SendString(string(c.Locals(LocalSection).(domain.Section)))
	})
	app.Get("/materials/:id", vm.ValidateMaterialID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalMaterialID).(string))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sections/Concepts", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "concepts", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/sections/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	id := util.NewULID()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/materials/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/materials/123", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
