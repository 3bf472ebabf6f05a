package courseValidator

import (
	"strings"

	"edumaster/middleware"
	"edumaster/models"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Instructor  string   `json:"instructor"`
	Price       *float64 `json:"price"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
	Status      string   `json:"status"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.Instructor) == "" {
			errors["instructor"] = "Instructor is required!"
		}
		if reqData.Price == nil {
			errors["price"] = "Price is required!"
		} else if *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if strings.TrimSpace(reqData.Duration) == "" {
			errors["duration"] = "Duration is required!"
		}
		if strings.TrimSpace(reqData.Image) == "" {
			errors["image"] = "Image is required!"
		}
		if reqData.Status != "" && reqData.Status != models.CourseActive && reqData.Status != models.CourseInactive {
			errors["status"] = "Status must be active or inactive!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// DeleteCourse enforces the confirmation contract: deletion is irreversible
// and cascades, so the request must carry confirm=true.
func DeleteCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("id") == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id is required!", nil)
		}
		if c.Query("confirm") != "true" {
			return middleware.JsonResponse(c, fiber.StatusPreconditionRequired, false, "Deletion requires confirmation! Pass confirm=true.", nil)
		}
		return c.Next()
	}
}
