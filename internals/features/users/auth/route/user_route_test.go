package route

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"attendance_backend/internals/configs"
	"attendance_backend/internals/databases/dbtest"
	authHelper "attendance_backend/internals/features/users/auth/helper"
	helper "attendance_backend/internals/helpers"
)

func send(t *testing.T, app *fiber.App, method, path, body, bearer string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp, out
}

func TestAuthFlow(t *testing.T) {
	authHelper.BcryptCost = bcrypt.MinCost
	cfg := &configs.Config{Env: "test", JWT: configs.JWTConfig{Secret: "route-secret", TTL: time.Hour}}
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromError})
	AuthRoutes(app, dbtest.Open(t), cfg)

	resp, _ := send(t, app, fiber.MethodPost, "/api/auth/register",
		`{"user_name":"ana","password":"password1","password_confirm":"password1"}`, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := send(t, app, fiber.MethodPost, "/api/auth/register",
		`{"user_name":"ana","password":"password1","password_confirm":"password1"}`, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["error_code"])

	resp, body = send(t, app, fiber.MethodPost, "/api/auth/login", `{"user_name":"ana","password":"password1"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	token := data["access_token"].(string)
	assert.Contains(t, resp.Header.Get(fiber.HeaderSetCookie), "access_token=")

	resp, body = send(t, app, fiber.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ana", body["data"].(map[string]any)["user_name"])

	resp, _ = send(t, app, fiber.MethodPost, "/api/auth/logout", "", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = send(t, app, fiber.MethodGet, "/api/auth/me", "", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "revoked token")
}
