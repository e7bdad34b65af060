package controller

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms-presentation-be/internal/dto"
	"lms-presentation-be/internal/entity"
	"lms-presentation-be/internal/pkg/serverutils"
	"lms-presentation-be/internal/service"
	"lms-presentation-be/pkg/layout"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "controller-secret"

type fakeService struct {
	service.IPresentationService

	lastUser   string
	lastCreate *dto.CreatePresentationRequest
	lastEdit   *dto.EditSessionRequest
	lastImport []byte
	editErr    error
}

func (f *fakeService) Create(ctx context.Context, userId string, req *dto.CreatePresentationRequest) (*dto.CreatePresentationResponse, error) {
	f.lastUser = userId
	f.lastCreate = req
	return &dto.CreatePresentationResponse{Id: "p-1"}, nil
}

func (f *fakeService) Import(ctx context.Context, userId string, raw []byte) (*dto.CreatePresentationResponse, error) {
	f.lastImport = raw
	return &dto.CreatePresentationResponse{Id: "p-2"}, nil
}

func (f *fakeService) Show(ctx context.Context, userId string, id string) (*entity.Presentation, error) {
	if id != "p-1" {
		return nil, service.ErrPresentationNotFound
	}
	return &entity.Presentation{Id: id, Title: "Cells"}, nil
}

func (f *fakeService) ApplyEdit(ctx context.Context, userId string, sessionId string, req *dto.EditSessionRequest) (*dto.EditSessionResponse, error) {
	f.lastEdit = req
	if f.editErr != nil {
		return nil, f.editErr
	}
	return &dto.EditSessionResponse{SessionResponse: dto.SessionResponse{SessionId: sessionId, Revision: 1, IsDirty: true}}, nil
}

func (f *fakeService) ExportPresentation(ctx context.Context, userId string, id string) (*dto.ExportResponse, error) {
	return &dto.ExportResponse{
		FileName:    "cells.pptx",
		ContentType: service.PptxContentType,
		Data:        base64.StdEncoding.EncodeToString([]byte("PK deck")),
	}, nil
}

func (f *fakeService) ListLayouts(ctx context.Context) []dto.LayoutResponse {
	return []dto.LayoutResponse{{Id: "title-slide"}, {Id: "title-content"}}
}

func (f *fakeService) GetLayout(ctx context.Context, id string) (*dto.LayoutResponse, error) {
	if id != "title-slide" {
		return nil, layout.ErrLayoutNotFound
	}
	return &dto.LayoutResponse{Id: id}, nil
}

func newTestApp(t *testing.T, svc service.IPresentationService) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(
		serverutils.ErrorMapping{Err: service.ErrPresentationNotFound, Status: fiber.StatusNotFound},
		serverutils.ErrorMapping{Err: service.ErrReadOnlySession, Status: fiber.StatusForbidden},
		serverutils.ErrorMapping{Err: layout.ErrLayoutNotFound, Status: fiber.StatusNotFound},
	))
	api := app.Group("/api")
	NewLayoutController(svc).RegisterRoutes(api)
	NewPresentationController(svc).RegisterRoutes(api)
	return app
}

func authorized(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "instructor-1"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreatePresentation(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(t, svc)

	resp, err := app.Test(authorized(t, "POST", "/api/presentation/v1", map[string]any{
		"title":   "Cells",
		"chapter": "biology-1",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "instructor-1", svc.lastUser)
	assert.Equal(t, "biology-1", svc.lastCreate.Chapter)

	resp, err = app.Test(authorized(t, "POST", "/api/presentation/v1", map[string]any{"title": "No chapter"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPresentationRoutesRequireToken(t *testing.T) {
	app := newTestApp(t, &fakeService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/presentation/v1/p-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestShowPresentation(t *testing.T) {
	app := newTestApp(t, &fakeService{})

	resp, err := app.Test(authorized(t, "GET", "/api/presentation/v1/p-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authorized(t, "GET", "/api/presentation/v1/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestImportPassesRawBody(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(t, svc)

	doc := map[string]any{"presentation": map[string]any{"title": "Imported"}, "slides": []any{}}
	resp, err := app.Test(authorized(t, "POST", "/api/presentation/v1/import", doc))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(svc.lastImport), `"Imported"`)
}

func TestEditSession(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(t, svc)

	resp, err := app.Test(authorized(t, "POST", "/api/presentation/v1/session/s-1/edit", map[string]any{
		"op":               dto.EditUpdateSlideBackground,
		"slide_id":         "slide-1",
		"background_color": "#336699",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "#336699", svc.lastEdit.BackgroundColor)

	resp, err = app.Test(authorized(t, "POST", "/api/presentation/v1/session/s-1/edit", map[string]any{"op": "explode"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	svc.editErr = service.ErrReadOnlySession
	resp, err = app.Test(authorized(t, "POST", "/api/presentation/v1/session/s-1/edit", map[string]any{"op": dto.EditReload}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestDownloadExport(t *testing.T) {
	app := newTestApp(t, &fakeService{})

	resp, err := app.Test(authorized(t, "GET", "/api/presentation/v1/p-1/export/file", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, service.PptxContentType, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), `filename="cells.pptx"`)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "PK deck", string(body))
}

func TestLayoutRoutes(t *testing.T) {
	app := newTestApp(t, &fakeService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/layout/v1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res serverutils.Response[[]dto.LayoutResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Len(t, res.Data, 2)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/layout/v1/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
