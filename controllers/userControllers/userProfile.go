package userControllers

import (
	"edumaster/middleware"
	"edumaster/models"
	"edumaster/store"
	userValidator "edumaster/validators/user"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the current profile record.
func GetProfile(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", store.Data.Profile())
}

// UpdateProfile replaces the profile record.
func UpdateProfile(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	profile := store.Data.UpdateProfile(models.Profile{
		Name:   reqData.Name,
		Email:  reqData.Email,
		Phone:  reqData.Phone,
		Avatar: reqData.Avatar,
		Bio:    reqData.Bio,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", profile)
}
