package handlers_test

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/internal/api/handlers"
	"GiveHub-Backend/internal/api/presenters"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoutAcknowledges(t *testing.T) {
	handler := handlers.NewUserHandler(nil, validator.New())

	app := fiber.New()
	app.Post("/api/auth/logout", func(c *fiber.Ctx) error {
		c.Locals("user_id", "5f8d7a1e-0000-0000-0000-000000000000")
		return c.Next()
	}, handler.Logout)

	res, err := app.Test(httptest.NewRequest("POST", "/api/auth/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var parsed presenters.Response
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, domain.MessageSuccessLogout, parsed.Message)
	assert.Empty(t, parsed.Error)
}
