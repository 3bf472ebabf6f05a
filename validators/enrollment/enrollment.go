package enrollmentValidator

import (
	"strings"

	"edumaster/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type EnrollRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func EnrollSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "A valid email is required!"
		}
		if strings.TrimSpace(reqData.Phone) == "" {
			errors["phone"] = "Phone is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}
