package middleware

import (
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig = &config.Config{
		JWTKey:             "test-secret",
		AccessTokenMinutes: 30,
		RefreshTokenHours:  24,
		SaltRound:          4,
	}
}

func testAccount() models.Account {
	return models.Account{
		ID:          uuid.New(),
		Username:    "admin",
		Email:       "admin@example.com",
		IsSuperuser: true,
	}
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"account_id":   c.Locals("accountId").(uuid.UUID).String(),
			"is_superuser": c.Locals("isSuperuser").(bool),
		})
	})
	return app
}

func TestGenerateTokenPair(t *testing.T) {
	account := testAccount()

	pair, err := GenerateTokenPair(account)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)
}

func TestJWTMiddlewareAcceptsAccessToken(t *testing.T) {
	account := testAccount()
	pair, err := GenerateTokenPair(account)
	require.NoError(t, err)

	app := protectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	app := protectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsRefreshTokenAsAccess(t *testing.T) {
	account := testAccount()
	pair, err := GenerateTokenPair(account)
	require.NoError(t, err)

	app := protectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Refresh)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsGarbageToken(t *testing.T) {
	app := protectedApp()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyRefreshToken(t *testing.T) {
	account := testAccount()
	pair, err := GenerateTokenPair(account)
	require.NoError(t, err)

	id, err := VerifyRefreshToken(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, account.ID, id)

	// An access token must not pass as a refresh token
	_, err = VerifyRefreshToken(pair.Access)
	assert.Error(t, err)
}
