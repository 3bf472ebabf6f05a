package controllers

import (
	"log"
	"strconv"
	"time"

	"edumaster/middleware"
	"edumaster/store"
	sessionValidator "edumaster/validators/session"

	"github.com/gofiber/fiber/v2"
)

// ScheduleSession creates a two-hour session from the scheduling form. A
// mirror failure aborts the insert and surfaces a generic error.
func ScheduleSession(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSession").(*sessionValidator.ScheduleSessionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	start, err := store.CombineDateTime(reqData.StartDate, reqData.StartTime)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid session start!", nil)
	}

	session, res := store.Data.ScheduleSession(reqData.CourseID, start, *reqData.Capacity)
	if res.Outcome == store.Rejected {
		log.Printf("Session scheduling rejected: %v", res.Reason)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to schedule session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session scheduled successfully!", session)
}

// GetCalendar renders the month grid, full weeks Sunday through Saturday.
func GetCalendar(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid year!", nil)
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil || month < 1 || month > 12 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid month!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Calendar fetched successfully!", fiber.Map{
		"weeks": store.Data.MonthGrid(year, time.Month(month)),
	})
}

// GetSessionsForDay lists the sessions starting on one calendar day.
func GetSessionsForDay(c *fiber.Ctx) error {
	day, err := time.ParseInLocation("2006-01-02", c.Params("date"), time.Local)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Date must be YYYY-MM-DD!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", fiber.Map{
		"sessions": store.Data.SessionsForDay(day),
	})
}

// GetSessionEnrollments returns the roster for one session.
func GetSessionEnrollments(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if _, ok := store.Data.SessionByID(sessionID); !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": store.Data.EnrollmentsForSession(sessionID),
	})
}
