package routes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"attendance_backend/internals/configs"
	"attendance_backend/internals/databases/dbtest"
	employeeModel "attendance_backend/internals/features/employees/employees/model"
	userModel "attendance_backend/internals/features/users/user/model"
	helper "attendance_backend/internals/helpers"
	helperAuth "attendance_backend/internals/helpers/auth"
)

const secret = "routes-secret"

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromError})
	SetupRoutes(app, db, &configs.Config{Env: "test", JWT: configs.JWTConfig{Secret: secret, TTL: time.Hour}})
	return app, db
}

// tokenFor inserts a user with role and returns a signed token for it.
func tokenFor(t *testing.T, db *gorm.DB, name, role string) string {
	t.Helper()
	u := userModel.UserModel{UserName: name, Password: "x", Role: role, IsActive: true}
	require.NoError(t, db.Create(&u).Error)
	tok, _, err := helperAuth.IssueToken(secret, helperAuth.Actor{UserID: u.ID, UserName: u.UserName, Role: role}, time.Hour, time.Now())
	require.NoError(t, err)
	return tok
}

func call(t *testing.T, app *fiber.App, method, path, body, token string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestHealthAndMetrics(t *testing.T) {
	app, _ := setup(t)

	status, body := call(t, app, fiber.MethodGet, "/health", "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", body["status"])

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPrivateRoutesNeedToken(t *testing.T) {
	app, _ := setup(t)
	for _, path := range []string{"/api/u/employees", "/api/u/attendance", "/api/u/reports/attendance"} {
		status, _ := call(t, app, fiber.MethodGet, path, "", "")
		assert.Equal(t, fiber.StatusUnauthorized, status, path)
	}
}

func TestEmployeeLifecycle(t *testing.T) {
	app, db := setup(t)
	tok := tokenFor(t, db, "ana", userModel.RoleUser)

	status, body := call(t, app, fiber.MethodPost, "/api/u/employees", `{"name":"Budi","emp_code":"E1","role":"Staff","salary":"1200.00"}`, tok)
	require.Equal(t, fiber.StatusCreated, status, body)
	id := body["data"].(map[string]any)["id"].(string)

	status, _ = call(t, app, fiber.MethodPost, "/api/u/employees", `{"name":"Other","emp_code":"E1","role":"Staff","salary":0}`, tok)
	assert.Equal(t, fiber.StatusConflict, status)

	status, body = call(t, app, fiber.MethodPost, "/api/u/employees", `{"emp_code":"E2"}`, tok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body["errors"], "name")

	status, _ = call(t, app, fiber.MethodPut, "/api/u/employees/"+id, `{"emp_code":"E9"}`, tok)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = call(t, app, fiber.MethodGet, "/api/u/employees?q=bud", "", tok)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)
	assert.EqualValues(t, 1, body["pagination"].(map[string]any)["total"])

	status, _ = call(t, app, fiber.MethodPost, "/api/u/attendance", `{"date":"2024-05-01","entries":[{"employee_id":"`+id+`","status":"Present"}]}`, tok)
	assert.Equal(t, fiber.StatusOK, status)

	status, body = call(t, app, fiber.MethodGet, "/api/u/employees/"+id+"/attendance?month=5&year=2024", "", tok)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"].(map[string]any)["records"], 1)

	status, _ = call(t, app, fiber.MethodDelete, "/api/u/employees/"+id, "", tok)
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = call(t, app, fiber.MethodGet, "/api/u/employees/"+id, "", tok)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestPurgeIsAdminOnly(t *testing.T) {
	app, db := setup(t)
	require.NoError(t, db.Create(&employeeModel.EmployeeModel{Name: "Budi", Code: "E1", Role: "Staff"}).Error)

	status, _ := call(t, app, fiber.MethodPost, "/api/a/maintenance/purge", `{"confirm":true}`, tokenFor(t, db, "ana", userModel.RoleUser))
	assert.Equal(t, fiber.StatusForbidden, status)

	admin := tokenFor(t, db, "root", userModel.RoleAdmin)
	status, _ = call(t, app, fiber.MethodPost, "/api/a/maintenance/purge", `{}`, admin)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := call(t, app, fiber.MethodPost, "/api/a/maintenance/purge", `{"confirm":true}`, admin)
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 1, body["data"].(map[string]any)["employees"])
}

func TestUserAdministration(t *testing.T) {
	app, db := setup(t)
	staffTok := tokenFor(t, db, "staff", userModel.RoleUser)
	adminTok := tokenFor(t, db, "root", userModel.RoleAdmin)

	status, _ := call(t, app, fiber.MethodGet, "/api/a/users", "", staffTok)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, body := call(t, app, fiber.MethodGet, "/api/a/users?q=sta", "", adminTok)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, body["data"], 1)

	var staff userModel.UserModel
	require.NoError(t, db.Where("user_name = ?", "staff").First(&staff).Error)
	status, body = call(t, app, fiber.MethodPatch, "/api/a/users/"+staff.ID.String(), `{"is_active":false}`, adminTok)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["data"].(map[string]any)["is_active"])

	status, _ = call(t, app, fiber.MethodPatch, "/api/a/users/"+staff.ID.String(), `{"role":"owner"}`, adminTok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, body = call(t, app, fiber.MethodPatch, "/api/u/users/me/profile", `{"phone_number":"0811"}`, staffTok)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "0811", body["data"].(map[string]any)["phone_number"])
}
