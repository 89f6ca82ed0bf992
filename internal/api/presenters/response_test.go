package presenters_test

import (
	"GiveHub-Backend/internal/api/presenters"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return presenters.SuccessResponse(c, fiber.Map{"id": "42"}, fiber.StatusCreated, "created")
	})

	res, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var parsed presenters.Response
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, "created", parsed.Message)
	assert.Empty(t, parsed.Error)
}

func TestErrorResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return presenters.ErrorResponse(c, fiber.StatusConflict, "failed", errors.New("already requested"))
	})

	res, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var parsed presenters.Response
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, "failed", parsed.Message)
	assert.Equal(t, "already requested", parsed.Error)
}
