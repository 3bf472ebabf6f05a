package controllers

import (
	"edumaster/middleware"
	"edumaster/store"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard aggregates the admin home view: headline stats, the per-course
// occupancy chart and the sessions needing attention.
func GetDashboard(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"stats":                 store.Data.Stats(),
		"occupancyChart":        store.Data.OccupancyChart(),
		"highOccupancySessions": store.Data.HighOccupancySessions(),
	})
}
