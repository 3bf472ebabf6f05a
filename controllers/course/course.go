package controllers

import (
	"log"

	"edumaster/middleware"
	"edumaster/store"
	courseValidator "edumaster/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses returns the catalog, newest course first.
func GetAllCourses(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": store.Data.Courses(),
	})
}

// CreateCourse adds a course. A mirror failure is swallowed: the local copy
// stands and the response still succeeds.
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, res := store.Data.AddCourse(store.CourseInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		Instructor:  reqData.Instructor,
		Price:       *reqData.Price,
		Duration:    reqData.Duration,
		Image:       reqData.Image,
		Status:      reqData.Status,
	})
	if res.Outcome == store.AppliedLocalOnly && res.Reason != nil {
		log.Printf("Course %s kept locally, mirror write failed: %v", course.ID, res.Reason)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// DeleteCourse removes a course and cascades to its sessions. The validator
// already required confirm=true. A mirror failure aborts the deletion.
func DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	res := store.Data.DeleteCourse(id)
	if res.Outcome == store.Rejected {
		log.Printf("Course %s deletion rejected: %v", id, res.Reason)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to delete from the remote store!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
