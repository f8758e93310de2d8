package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/domain"
)

func TestWriteError_MapeaErroresDeDominio(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validacion", domain.Invalid("quantity", "debe ser mayor que cero"), fiber.StatusBadRequest, "VALIDATION"},
		{"entrada invalida", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"sin fila de stock", fmt.Errorf("apply: %w", domain.ErrStockNotFound), fiber.StatusNotFound, "STOCK_NOT_FOUND"},
		{"no encontrado", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"stock insuficiente", &domain.InsufficientStockError{Available: 2, Requested: 5}, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{"duplicado", domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{"referenciado", domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{"inesperado", errors.New("conexión perdida"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return writeError(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body dto.ErrorResponse
			raw, _ := io.ReadAll(resp.Body)
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestWriteError_ValidacionIncluyeCampo(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, domain.Invalid("quantity", "debe ser mayor que cero"))
	})
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "quantity: debe ser mayor que cero", body.Message)
}

func TestWriteError_InternoNoExponeDetalle(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, errors.New("dial tcp 10.0.0.5:5432: password authentication failed for user inventario"))
	})
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno", body.Message)
	assert.NotContains(t, string(raw), "10.0.0.5")
	assert.NotContains(t, string(raw), "password")

	logged := buf.String()
	assert.Contains(t, logged, "password authentication failed")
	assert.Contains(t, logged, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestPageParams(t *testing.T) {
	cases := map[string][2]int{
		"/":                     {20, 0},
		"/?limit=5&offset=10":   {5, 10},
		"/?limit=0":             {20, 0},
		"/?limit=500":           {100, 0},
		"/?offset=-3":           {20, 0},
		"/?limit=abc&offset=xy": {20, 0},
	}
	for url, want := range cases {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			limit, offset := pageParams(c)
			return c.JSON(fiber.Map{"limit": limit, "offset": offset})
		})
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, url, nil))
		require.NoError(t, err, url)

		var got struct{ Limit, Offset int }
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got), url)
		assert.Equal(t, want[0], got.Limit, url)
		assert.Equal(t, want[1], got.Offset, url)
	}
}
