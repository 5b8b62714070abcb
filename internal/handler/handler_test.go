package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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

	"github.com/Quinhas/sgpg-api/internal/dto"
	"github.com/Quinhas/sgpg-api/internal/models"
	"github.com/Quinhas/sgpg-api/internal/registry"
	"github.com/Quinhas/sgpg-api/internal/service"
	appErrors "github.com/Quinhas/sgpg-api/pkg/errors"
	"github.com/Quinhas/sgpg-api/pkg/storage"
)

type roleServiceStub struct {
	schema    *registry.Schema
	roles     map[int64]models.Role
	created   *dto.CreateRoleRequest
	removeErr error
}

func newRoleServiceStub() *roleServiceStub {
	return &roleServiceStub{
		schema: registry.School().MustGet(registry.ResourceRoles),
		roles: map[int64]models.Role{
			1: {ID: 1, Title: "Teacher"},
			2: {ID: 2, Title: "Secretary"},
		},
	}
}

func (s *roleServiceStub) Schema() *registry.Schema { return s.schema }

func (s *roleServiceStub) FindAll(context.Context) ([]models.Role, error) {
	return []models.Role{s.roles[1], s.roles[2]}, nil
}

func (s *roleServiceStub) FindByID(_ context.Context, id int64) (*models.Role, error) {
	role, ok := s.roles[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("role %d not found", id))
	}
	return &role, nil
}

func (s *roleServiceStub) Create(_ context.Context, req interface{}) (*models.Role, error) {
	s.created = req.(*dto.CreateRoleRequest)
	return &models.Role{ID: 3, Title: s.created.RoleTitle}, nil
}

func (s *roleServiceStub) Update(ctx context.Context, id int64, req interface{}) (*models.Role, error) {
	role, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if title := req.(*dto.UpdateRoleRequest).RoleTitle; title != nil {
		role.Title = *title
	}
	return role, nil
}

func (s *roleServiceStub) SoftDelete(ctx context.Context, id int64) (*models.Role, error) {
	role, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	deleted := true
	role.IsDeleted = &deleted
	return role, nil
}

func (s *roleServiceStub) Restore(ctx context.Context, id int64) (*models.Role, error) {
	return s.FindByID(ctx, id)
}

func (s *roleServiceStub) Remove(ctx context.Context, id int64) (*models.Role, error) {
	if s.removeErr != nil {
		return nil, s.removeErr
	}
	return s.FindByID(ctx, id)
}

func newTestRouter(providers ...RouteProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, Table(providers...))
	r.NoRoute(NotFound)
	return r
}

func serve(r http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestResourceHandlerList(t *testing.T) {
	r := newTestRouter(NewResourceHandler[models.Role, dto.CreateRoleRequest, dto.UpdateRoleRequest](newRoleServiceStub()))

	w := serve(r, http.MethodGet, "/roles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "2 roles returned", body["message"])
	assert.Len(t, body["data"], 2)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestResourceHandlerGet(t *testing.T) {
	r := newTestRouter(NewResourceHandler[models.Role, dto.CreateRoleRequest, dto.UpdateRoleRequest](newRoleServiceStub()))

	w := serve(r, http.MethodGet, "/roles/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "role found", body["message"])
	assert.Equal(t, "Teacher", body["data"].(map[string]interface{})["role_title"])

	w = serve(r, http.MethodGet, "/roles/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"statusCode":400,"error":"INVALID_ARGUMENT","message":"ID must be a number"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/roles/9", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "role 9 not found", decode(t, w)["message"])
}

func TestResourceHandlerCreate(t *testing.T) {
	svc := newRoleServiceStub()
	r := newTestRouter(NewResourceHandler[models.Role, dto.CreateRoleRequest, dto.UpdateRoleRequest](svc))

	w := serve(r, http.MethodPost, "/roles", strings.NewReader(`{"role_title":"Director","created_by":1}`))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "role created", decode(t, w)["message"])
	require.NotNil(t, svc.created)
	assert.Equal(t, "Director", svc.created.RoleTitle)
	assert.Equal(t, int64(1), svc.created.CreatedBy)

	w = serve(r, http.MethodPost, "/roles", strings.NewReader(`{"role_title":`))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid payload", decode(t, w)["message"])
}

func TestResourceHandlerUpdateAndSoftDelete(t *testing.T) {
	r := newTestRouter(NewResourceHandler[models.Role, dto.CreateRoleRequest, dto.UpdateRoleRequest](newRoleServiceStub()))

	w := serve(r, http.MethodPut, "/roles/2", strings.NewReader(`{"role_title":"Clerk"}`))
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "role updated", body["message"])
	assert.Equal(t, "Clerk", body["data"].(map[string]interface{})["role_title"])

	w = serve(r, http.MethodPatch, "/roles/2/soft-delete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "role soft-deleted", body["message"])
	assert.Equal(t, true, body["data"].(map[string]interface{})["is_deleted"])

	w = serve(r, http.MethodPatch, "/roles/2/restore", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "role restored", decode(t, w)["message"])
}

func TestResourceHandlerRemoveConflict(t *testing.T) {
	svc := newRoleServiceStub()
	svc.removeErr = appErrors.Clone(appErrors.ErrConflict, "role 1 is still referenced")
	r := newTestRouter(NewResourceHandler[models.Role, dto.CreateRoleRequest, dto.UpdateRoleRequest](svc))

	w := serve(r, http.MethodDelete, "/roles/1", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"statusCode":409,"error":"CONFLICT","message":"role 1 is still referenced"}`, w.Body.String())
}

func TestResourceHandlerHidesInternalErrors(t *testing.T) {
	svc := newRoleServiceStub()
	svc.removeErr = appErrors.Internal(errors.New("pq: connection reset"), "failed to remove role")
	r := newTestRouter(NewResourceHandler[models.Role, dto.CreateRoleRequest, dto.UpdateRoleRequest](svc))

	w := serve(r, http.MethodDelete, "/roles/1", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestNotFoundRoute(t *testing.T) {
	r := newTestRouter()

	w := serve(r, http.MethodGet, "/nowhere", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"statusCode":404,"error":"ROUTE_NOT_FOUND","message":"endpoint not found"}`, w.Body.String())
}

type exportSourceStub struct{}

func (exportSourceStub) Schema() *registry.Schema {
	return registry.School().MustGet(registry.ResourceRoles)
}

func (exportSourceStub) Records(context.Context) (interface{}, error) {
	return []models.Role{{ID: 1, Title: "Teacher"}}, nil
}

func TestExportHandler(t *testing.T) {
	exports := service.NewExportService([]service.ExportSource{exportSourceStub{}}, nil, zap.NewNop())
	r := newTestRouter(NewExportHandler(exports))

	w := serve(r, http.MethodGet, "/exports/roles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="roles_`)
	assert.Contains(t, w.Body.String(), "Teacher")

	w = serve(r, http.MethodGet, "/exports/roles?format=xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	w = serve(r, http.MethodGet, "/exports/roles?format=doc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodGet, "/exports/payments", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func newLocalStore(t *testing.T) *storage.LocalStorage {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir(), storage.NewSignedURLSigner("test-secret", time.Minute), "/files")
	require.NoError(t, err)
	return store
}

func TestFilesHandler(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "instrument-brands/1/logo.png", strings.NewReader("logo-bytes"), "image/png"))
	url, err := store.URL(ctx, "instrument-brands/1/logo.png")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/files/"))

	r := newTestRouter(NewFilesHandler(store))

	w := serve(r, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "logo-bytes", w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = serve(r, http.MethodGet, url+"x", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	require.NoError(t, store.Delete(ctx, "instrument-brands/1/logo.png"))
	w = serve(r, http.MethodGet, url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type brandServiceStub struct {
	brand models.InstrumentBrand
}

func (s *brandServiceStub) FindByID(_ context.Context, id int64) (*models.InstrumentBrand, error) {
	if id != s.brand.ID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("instrument brand %d not found", id))
	}
	cp := s.brand
	return &cp, nil
}

func (s *brandServiceStub) Update(_ context.Context, _ int64, req interface{}) (*models.InstrumentBrand, error) {
	s.brand.Logo = req.(*dto.SetInstrumentBrandLogo).InstrumentBrandLogo
	cp := s.brand
	return &cp, nil
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestLogoHandlerUploadAndDownload(t *testing.T) {
	store := newLocalStore(t)
	brands := &brandServiceStub{brand: models.InstrumentBrand{ID: 4, Name: "Fender"}}
	logos := service.NewLogoService(brands, store, 64, zap.NewNop())
	r := newTestRouter(NewLogoHandler(logos), NewFilesHandler(store))

	w := serve(r, http.MethodGet, "/instrument-brands/4/logo", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	body, contentType := multipartBody(t, "file", "fender.png", png)
	req := httptest.NewRequest(http.MethodPut, "/instrument-brands/4/logo", body)
	req.Header.Set("Content-Type", contentType)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "instrument brand logo updated", decode(t, w)["message"])

	w = serve(r, http.MethodGet, "/instrument-brands/4/logo", nil)
	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/files/"))

	w = serve(r, http.MethodGet, location, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, png, w.Body.Bytes())
}

func TestLogoHandlerRejectsBadUploads(t *testing.T) {
	store := newLocalStore(t)
	brands := &brandServiceStub{brand: models.InstrumentBrand{ID: 4, Name: "Fender"}}
	r := newTestRouter(NewLogoHandler(service.NewLogoService(brands, store, 64, zap.NewNop())))

	upload := func(field, filename string, content []byte) int {
		body, contentType := multipartBody(t, field, filename, content)
		req := httptest.NewRequest(http.MethodPut, "/instrument-brands/4/logo", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusBadRequest, upload("", "", nil))
	assert.Equal(t, http.StatusBadRequest, upload("file", "logo.exe", []byte("MZ")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, upload("file", "logo.png", bytes.Repeat([]byte{1}, 128)))
}

type pingerStub struct{ err error }

func (p pingerStub) PingContext(context.Context) error { return p.err }

func TestMetricsHandlerProbes(t *testing.T) {
	r := newTestRouter(routesOf(NewMetricsHandler(nil, pingerStub{}).Routes()))
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ready", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/metrics", nil).Code)

	r = newTestRouter(routesOf(NewMetricsHandler(service.NewMetricsService(), pingerStub{err: errors.New("down")}).Routes()))
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/ready", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/metrics", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/metrics/summary", nil).Code)
}

type routesOf []Route

func (r routesOf) Routes() []Route { return r }
