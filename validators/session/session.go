package sessionValidator

import (
	"strings"
	"time"

	"edumaster/middleware"

	"github.com/gofiber/fiber/v2"
)

type ScheduleSessionRequest struct {
	CourseID  string `json:"courseId"`
	StartDate string `json:"startDate"` // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM
	Capacity  *int   `json:"capacity"`
}

func ScheduleSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ScheduleSessionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseID) == "" {
			errors["courseId"] = "Course id is required!"
		}
		if _, err := time.Parse("2006-01-02", reqData.StartDate); err != nil {
			errors["startDate"] = "Start date must be YYYY-MM-DD!"
		}
		if _, err := time.Parse("15:04", reqData.StartTime); err != nil {
			errors["startTime"] = "Start time must be HH:MM!"
		}
		if reqData.Capacity == nil || *reqData.Capacity < 1 {
			errors["capacity"] = "Capacity must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}

// DayParam validates the :date path segment of the day view.
func DayParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := time.Parse("2006-01-02", c.Params("date")); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Date must be YYYY-MM-DD!", nil)
		}
		return c.Next()
	}
}
