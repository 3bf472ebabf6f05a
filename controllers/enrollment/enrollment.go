package controllers

import (
	"errors"
	"log"

	"edumaster/middleware"
	"edumaster/models"
	"edumaster/store"
	"edumaster/utils"
	enrollmentValidator "edumaster/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// EnrollInSession enrolls a student into a session. A full session and a
// mirror failure both abort; nothing is recorded locally in either case.
func EnrollInSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	enrollment, res := store.Data.Enroll(sessionID, reqData.Name, reqData.Email, reqData.Phone)
	if res.Outcome == store.Rejected {
		switch {
		case errors.Is(res.Reason, store.ErrSessionNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
		case errors.Is(res.Reason, store.ErrSessionFull):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Session is already full!", nil)
		default:
			log.Printf("Enrollment rejected: %v", res.Reason)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to save enrollment!", nil)
		}
	}

	// Confirmation email is best-effort and never blocks the response.
	if session, ok := store.Data.SessionByID(sessionID); ok {
		courseTitle := ""
		if course, ok := store.Data.CourseByID(session.CourseID); ok {
			courseTitle = course.Title
		}
		go utils.SendEnrollmentConfirmation(enrollment.StudentEmail, enrollment.StudentName, courseTitle, session.StartDate)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

// EnrollmentWithCourse enriches an enrollment with its session and course for
// the student directory view. Lookups that no longer resolve degrade to
// missing fields.
type EnrollmentWithCourse struct {
	models.Enrollment
	CourseTitle  string `json:"courseTitle"`
	SessionStart string `json:"sessionStart"`
}

// GetEnrollments lists every enrollment with its course context.
func GetEnrollments(c *fiber.Ctx) error {
	enrollments := store.Data.Enrollments()

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		result[i] = EnrollmentWithCourse{Enrollment: e}
		session, ok := store.Data.SessionByID(e.SessionID)
		if !ok {
			continue
		}
		result[i].SessionStart = session.StartDate.Format("2006-01-02 15:04")
		if course, ok := store.Data.CourseByID(session.CourseID); ok {
			result[i].CourseTitle = course.Title
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
	})
}
