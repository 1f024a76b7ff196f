package whatsappValidator

import (
	"strings"

	"microlearn/middleware"

	"github.com/gofiber/fiber/v2"
)

var allowedEndpoints = map[string]bool{
	"getMessageTemplates": true,
	"getContacts":         true,
	"sendTemplateMessage": true,
	"analytics":           true,
	"getMessages":         true,
}

func Proxy() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Endpoint     string            `json:"endpoint"`
			PhoneNumber  string            `json:"phoneNumber"`
			TemplateName string            `json:"templateName"`
			Parameters   map[string]string `json:"parameters"`
			StartDate    string            `json:"startDate"`
			EndDate      string            `json:"endDate"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Endpoint
		if strings.TrimSpace(reqData.Endpoint) == "" {
			errors["endpoint"] = "Endpoint is required!"
		} else if !allowedEndpoints[reqData.Endpoint] {
			errors["endpoint"] = "Unknown endpoint!"
		}

		// Endpoint-specific requirements
		switch reqData.Endpoint {
		case "sendTemplateMessage":
			if strings.TrimSpace(reqData.PhoneNumber) == "" {
				errors["phoneNumber"] = "Phone number is required!"
			}
			if strings.TrimSpace(reqData.TemplateName) == "" {
				errors["templateName"] = "Template name is required!"
			}
		case "getMessages":
			if strings.TrimSpace(reqData.PhoneNumber) == "" {
				errors["phoneNumber"] = "Phone number is required!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProxy", reqData)
		return c.Next()
	}
}
