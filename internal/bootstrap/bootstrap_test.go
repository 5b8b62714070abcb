package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Quinhas/sgpg-api/internal/testutil/testdb"
	"github.com/Quinhas/sgpg-api/pkg/config"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:            "test",
		APIPrefix:      "/api",
		RequestTimeout: 5 * time.Second,
		BcryptCost:     bcrypt.MinCost,
		Metrics:        config.MetricsConfig{Enabled: true},
		Storage: config.StorageConfig{
			Driver:          config.StorageLocal,
			Dir:             t.TempDir(),
			SignedURLSecret: "test-secret",
			SignedURLTTL:    time.Minute,
			MaxLogoBytes:    1024,
		},
	}
	store, files, err := NewStore(context.Background(), cfg)
	require.NoError(t, err)

	router := NewRouter(Deps{
		Config: cfg,
		DB:     testdb.SQLite(t),
		Logger: zap.NewNop(),
		Store:  store,
		Files:  files,
	})
	return &apiClient{t: t, router: router}
}

func (a *apiClient) do(method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	a.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

// create posts body and returns the id column of the created record.
func (a *apiClient) create(path, idColumn, body string) int64 {
	a.t.Helper()
	w, resp := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return int64(resp["data"].(map[string]interface{})[idColumn].(float64))
}

func data(resp map[string]interface{}) map[string]interface{} {
	return resp["data"].(map[string]interface{})
}

func TestRoleLifecycle(t *testing.T) {
	api := newTestAPI(t)

	w, resp := api.do(http.MethodPost, "/api/roles", `{"role_title":"Teacher","created_by":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	role := data(resp)
	assert.Equal(t, "role created", resp["message"])
	assert.Equal(t, float64(1), role["role_id"])
	assert.Equal(t, "Teacher", role["role_title"])
	assert.NotEmpty(t, role["created_at"])
	assert.Equal(t, false, role["is_deleted"])
	assert.Nil(t, role["deleted_at"])

	w, resp = api.do(http.MethodPost, "/api/roles", `{"role_title":"Teacher","created_by":1}`)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", resp["error"])

	w, resp = api.do(http.MethodPost, "/api/roles", `{"role_desc":"no title","created_by":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = api.do(http.MethodGet, "/api/roles/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Teacher", data(resp)["role_title"])

	w, resp = api.do(http.MethodPut, "/api/roles/1", `{"role_desc":"Teaches instruments"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Teacher", data(resp)["role_title"])
	assert.Equal(t, "Teaches instruments", data(resp)["role_desc"])
	assert.NotNil(t, data(resp)["updated_at"])

	w, resp = api.do(http.MethodPatch, "/api/roles/1/soft-delete", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, data(resp)["is_deleted"])
	assert.NotNil(t, data(resp)["deleted_at"])

	w, resp = api.do(http.MethodGet, "/api/roles", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1 roles returned", resp["message"])

	w, resp = api.do(http.MethodPatch, "/api/roles/1/restore", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, data(resp)["is_deleted"])
	assert.Nil(t, data(resp)["deleted_at"])

	w, _ = api.do(http.MethodDelete, "/api/roles/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = api.do(http.MethodGet, "/api/roles/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", resp["error"])

	w, _ = api.do(http.MethodGet, "/api/roles/x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func seedEmployee(api *apiClient, roleID int64, email string) int64 {
	return api.create("/api/employees", "employee_id", fmt.Sprintf(`{
		"employee_name":"Ana Souza","employee_cpf":"12345678901","employee_email":%q,
		"employee_password":"s3cret-pass","employee_phone":"11999990000","employee_addr":"Rua A, 1",
		"employee_salary":"3200.50","employee_role":%d,"created_by":1}`, email, roleID))
}

func TestEmployeeLogin(t *testing.T) {
	api := newTestAPI(t)
	roleID := api.create("/api/roles", "role_id", `{"role_title":"Teacher","created_by":1}`)
	employeeID := seedEmployee(api, roleID, "ana@school.test")

	w, resp := api.do(http.MethodGet, fmt.Sprintf("/api/employees/%d", employeeID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "employee_password")
	assert.Equal(t, "Teacher", data(resp)["role"].(map[string]interface{})["role_title"])

	w, resp = api.do(http.MethodPost, "/api/employees/login", `{"employee_email":"ana@school.test","employee_password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "login successful", resp["message"])
	assert.Equal(t, float64(employeeID), data(resp)["employee_id"])
	assert.NotContains(t, w.Body.String(), "$2a$")

	w, _ = api.do(http.MethodPost, "/api/employees/login", `{"employee_email":"ana@school.test","employee_password":"wrong"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = api.do(http.MethodPost, "/api/employees/login", `{"employee_email":"nobody@school.test","employee_password":"s3cret-pass"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = api.do(http.MethodPost, "/api/employees", `{
		"employee_name":"Bia","employee_cpf":"98765432100","employee_email":"bia@school.test",
		"employee_password":"another-pass","employee_phone":"11888880000","employee_addr":"Rua B, 2",
		"employee_salary":"2000","employee_role":99,"created_by":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = api.do(http.MethodDelete, fmt.Sprintf("/api/roles/%d", roleID), "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = api.do(http.MethodGet, "/api/exports/employees?format=csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana@school.test")
	assert.NotContains(t, w.Body.String(), "employee_password")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestStudentsOfClass(t *testing.T) {
	api := newTestAPI(t)
	roleID := api.create("/api/roles", "role_id", `{"role_title":"Teacher","created_by":1}`)
	teacherID := seedEmployee(api, roleID, "teacher@school.test")
	classID := api.create("/api/classes", "class_id", fmt.Sprintf(
		`{"class_name":"Violin I","class_days":"mon,wed","class_duration":60,"class_teacher":%d,"created_by":1}`, teacherID))
	studentID := api.create("/api/students", "student_id",
		`{"student_name":"Caio","student_cpf":"11122233344","student_addr":"Rua C, 3","created_by":1}`)

	body := fmt.Sprintf(`{"student_id":%d,"created_by":1}`, studentID)
	w, resp := api.do(http.MethodPost, fmt.Sprintf("/api/classes/%d", classID), body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "student added to class", resp["message"])

	w, resp = api.do(http.MethodPost, fmt.Sprintf("/api/classes/%d", classID), body)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, fmt.Sprintf("student %d is already in class %d", studentID, classID), resp["message"])

	w, _ = api.do(http.MethodPost, "/api/classes/999", body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp = api.do(http.MethodGet, fmt.Sprintf("/api/classes/%d/students", classID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["data"], 1)

	w, _ = api.do(http.MethodGet, fmt.Sprintf("/api/classes/%d/students/%d", classID, studentID+1), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = api.do(http.MethodDelete, fmt.Sprintf("/api/classes/%d/%d", classID, studentID), "")
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = api.do(http.MethodDelete, fmt.Sprintf("/api/classes/%d/%d", classID, studentID), "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, fmt.Sprintf("student %d is not in class %d", studentID, classID), resp["message"])
}

func TestInstrumentBrandLogo(t *testing.T) {
	api := newTestAPI(t)
	brandID := api.create("/api/instrument-brands", "instrumentbrand_id", `{"instrumentbrand_name":"Yamaha","created_by":1}`)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile("file", "yamaha.png")
	require.NoError(t, err)
	_, err = part.Write(png)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/instrument-brands/%d/logo", brandID), buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = api.do(http.MethodGet, fmt.Sprintf("/api/instrument-brands/%d/logo", brandID), "")
	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/api/files/"), location)

	w, _ = api.do(http.MethodGet, location, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, png, w.Body.Bytes())
}

func TestRouterServesProbesAndUnknownRoutes(t *testing.T) {
	api := newTestAPI(t)

	w, resp := api.do(http.MethodGet, "/api/nowhere", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "endpoint not found", resp["message"])
	assert.Equal(t, "ROUTE_NOT_FOUND", resp["error"])

	w, _ = api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = api.do(http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)

	api.do(http.MethodGet, "/api/roles", "")
	w, _ = api.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `path="/api/roles"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
