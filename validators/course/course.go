package courseValidator

import (
	"strings"

	"microlearn/mapper"
	"microlearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// SaveCourse validates the nested course body for the save endpoint. The
// mapper is total, so the validator only rejects input that would otherwise
// persist an unusable course.
func SaveCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(mapper.Course)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// A course shown in the editor always has at least one day
		if len(reqData.Days) == 0 {
			errors["days"] = "A course must have at least one day!"
		}

		// Validate Price
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		// Validate Status
		switch reqData.Status {
		case "", mapper.StatusActive, mapper.StatusDraft, mapper.StatusArchived:
		default:
			errors["status"] = "Status must be active, draft or archived!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseSave", reqData)
		return c.Next()
	}
}
