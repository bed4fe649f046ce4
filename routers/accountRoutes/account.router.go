package accountRoutes

import (
	accountControllers "lms/controllers/account"
	"lms/middleware"
	accountValidators "lms/validators/account"

	"github.com/gofiber/fiber/v2"
)

// SetupAccountRoutes wires registration, login and account management.
func SetupAccountRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/accounts", accountValidators.Register(), accountControllers.Register)
	api.Get("/accounts", middleware.JWTMiddleware, middleware.AdminOnly(), accountControllers.ListAccounts)
	api.Delete("/accounts/:account_id", middleware.JWTMiddleware, middleware.AdminOnly(), accountControllers.DeleteAccount)

	api.Post("/login", accountValidators.Login(), accountControllers.Login)
	api.Post("/login/refresh", accountValidators.Refresh(), accountControllers.RefreshToken)
}
