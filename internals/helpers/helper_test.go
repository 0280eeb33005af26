package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendance_backend/internals/helpers/apperror"
)

func serve(t *testing.T, h fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Post("/", h)

	req := httptest.NewRequest(fiber.MethodPost, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestFromErrorMapsKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"not found", apperror.NotFound("employee not found"), 404, "NOT_FOUND", "employee not found"},
		{"conflict", apperror.Conflict("emp_code already exists"), 409, "CONFLICT", "emp_code already exists"},
		{"validation", apperror.Validation("date is required"), 400, "BAD_REQUEST", "date is required"},
		{"fiber error", fiber.NewError(fiber.StatusUnauthorized, "Invalid token"), 401, "UNAUTHORIZED", "Invalid token"},
		{"plain error", errors.New("boom"), 500, "INTERNAL_ERROR", "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serve(t, func(c *fiber.Ctx) error { return FromError(c, tt.err) })
			assert.Equal(t, tt.status, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.code, body["error_code"])
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestFromErrorWithFields(t *testing.T) {
	err := &apperror.Error{Kind: apperror.KindValidation, Fields: map[string][]string{"name": {"is required"}}}
	status, body := serve(t, func(c *fiber.Ctx) error { return FromError(c, err) })

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	assert.Equal(t, map[string]any{"name": []any{"is required"}}, body["errors"])
}

func TestJsonListPagination(t *testing.T) {
	p := BuildPagination(45, NewPaging("2", "20", 25, 100))
	status, body := serve(t, func(c *fiber.Ctx) error {
		return JsonList(c, "", []string{"a", "b"}, &p)
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["message"])
	pg := body["pagination"].(map[string]any)
	assert.EqualValues(t, 2, pg["page"])
	assert.EqualValues(t, 3, pg["total_pages"])
	assert.EqualValues(t, 2, pg["count"])
	assert.Equal(t, true, pg["has_next"])
	assert.Equal(t, true, pg["has_prev"])
}

func TestNewPagingBounds(t *testing.T) {
	p := NewPaging("0", "1000", 25, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)
	assert.Equal(t, 0, p.Offset)

	p = NewPaging("3", "", 25, 100)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 50, p.Offset)
}

func TestBindAndValidate(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required"`
	}
	v := NewValidator()

	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var p payload
		if err := BindAndValidate(c, v, &p); err != nil {
			return FromError(c, err)
		}
		return JsonOK(c, "", p)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/", stringsReader(`{}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Errors, "name")

	req = httptest.NewRequest(fiber.MethodPost, "/", stringsReader(`{"name":"Ana"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func stringsReader(s string) io.Reader { return strings.NewReader(s) }
