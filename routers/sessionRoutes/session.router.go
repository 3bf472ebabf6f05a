package sessionRoutes

import (
	enrollmentControllers "edumaster/controllers/enrollment"
	controllers "edumaster/controllers/session"
	enrollmentValidators "edumaster/validators/enrollment"
	validators "edumaster/validators/session"

	"github.com/gofiber/fiber/v2"
)

// SetupSessionRoutes sets up scheduling, calendar and enrollment routes
func SetupSessionRoutes(app *fiber.App) {
	sessionGroup := app.Group("/session")

	sessionGroup.Post("/schedule", validators.ScheduleSession(), controllers.ScheduleSession)
	sessionGroup.Get("/day/:date", validators.DayParam(), controllers.GetSessionsForDay)
	sessionGroup.Get("/:id/enrollments", controllers.GetSessionEnrollments)
	sessionGroup.Post("/:id/enroll", enrollmentValidators.EnrollSession(), enrollmentControllers.EnrollInSession)

	app.Get("/calendar/:year/:month", controllers.GetCalendar)
	app.Get("/enrollments", enrollmentControllers.GetEnrollments)
}
