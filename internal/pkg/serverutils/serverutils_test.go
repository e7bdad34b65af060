package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errGone = errors.New("gone")

type sampleRequest struct {
	Title string `json:"title" validate:"required,max=5"`
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(ErrorMapping{Err: errGone, Status: fiber.StatusNotFound}))
	app.Get("/gone", func(c *fiber.Ctx) error { return errGone })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("db down") })
	app.Get("/invalid", func(c *fiber.Ctx) error { return ValidateRequest(sampleRequest{Title: "too long"}) })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	app.Get("/me", JwtMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(SuccessResponse("ok", c.Locals("user_id").(string)))
	})
	return app
}

func decode(t *testing.T, body io.Reader) Response[any] {
	t.Helper()
	var res Response[any]
	require.NoError(t, json.NewDecoder(body).Decode(&res))
	return res
}

func TestErrorHandlerMapping(t *testing.T) {
	app := newApp()

	tests := []struct {
		path   string
		status int
	}{
		{"/gone", fiber.StatusNotFound},
		{"/boom", fiber.StatusInternalServerError},
		{"/invalid", fiber.StatusBadRequest},
		{"/teapot", fiber.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			res := decode(t, resp.Body)
			assert.False(t, res.Success)
			assert.Equal(t, tt.status, res.Code)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Title: "ok"}))

	err := ValidateRequest(sampleRequest{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "Title", ve.Fields[0].Field)
	assert.Equal(t, "is required", ve.Fields[0].Message)
}

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJwtMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newApp()

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + signed(t, "other", jwt.MapClaims{"user_id": "u-1"}), fiber.StatusUnauthorized},
		{"no user", "Bearer " + signed(t, "test-secret", jwt.MapClaims{"role": "x"}), fiber.StatusUnauthorized},
		{"user_id", "Bearer " + signed(t, "test-secret", jwt.MapClaims{"user_id": "u-1"}), fiber.StatusOK},
		{"sub", "Bearer " + signed(t, "test-secret", jwt.MapClaims{"sub": "u-2"}), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
