package userRoutes

import (
	controllers "edumaster/controllers/userControllers"
	validators "edumaster/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up the profile routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", controllers.GetProfile)
	userGroup.Put("/profile", validators.UpdateProfile(), controllers.UpdateProfile)
}
