package courseRoutes

import (
	controllers "edumaster/controllers/course"
	validators "edumaster/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course management routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Post("/create", validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Delete("/:id", validators.DeleteCourse(), controllers.DeleteCourse)

	app.Get("/dashboard", controllers.GetDashboard)
}
