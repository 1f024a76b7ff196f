package whatsappController

import (
	"log"

	"microlearn/database"
	"microlearn/middleware"
	"microlearn/models"
	"microlearn/utils"

	"github.com/gofiber/fiber/v2"
)

// Proxy forwards a named WATI endpoint call with the server-held credential
// attached and relays the upstream JSON response or error envelope.
func Proxy(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProxy").(*struct {
		Endpoint     string            `json:"endpoint"`
		PhoneNumber  string            `json:"phoneNumber"`
		TemplateName string            `json:"templateName"`
		Parameters   map[string]string `json:"parameters"`
		StartDate    string            `json:"startDate"`
		EndDate      string            `json:"endDate"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	status, body, err := utils.WatiProxy(reqData.Endpoint, utils.WatiProxyParams{
		PhoneNumber:  reqData.PhoneNumber,
		TemplateName: reqData.TemplateName,
		Parameters:   reqData.Parameters,
		StartDate:    reqData.StartDate,
		EndDate:      reqData.EndDate,
	})
	if err != nil {
		log.Printf("WATI proxy error: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "upstream_failed",
		})
	}

	// Relay the upstream response as-is, status code included.
	c.Set("Content-Type", "application/json")
	return c.Status(status).Send(body)
}

// Sync refreshes the local template and contact caches from WATI and
// returns the fresh listings.
func Sync(c *fiber.Ctx) error {
	db := database.Database.Db

	if err := utils.SyncWhatsAppCache(db); err != nil {
		log.Printf("WhatsApp cache sync error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to sync WhatsApp cache!", nil)
	}

	var templates []models.WhatsAppTemplate
	var contacts []models.WhatsAppContact
	db.Where("is_deleted = ?", false).Find(&templates)
	db.Where("is_deleted = ?", false).Find(&contacts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "WhatsApp cache synced successfully!", fiber.Map{
		"templates": templates,
		"contacts":  contacts,
	})
}

// ListTemplates serves the cached template listing.
func ListTemplates(c *fiber.Ctx) error {
	var templates []models.WhatsAppTemplate
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&templates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch templates!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Templates fetched successfully!", fiber.Map{
		"templates": templates,
	})
}

// ListContacts serves the cached contact listing.
func ListContacts(c *fiber.Ctx) error {
	var contacts []models.WhatsAppContact
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&contacts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contacts!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contacts fetched successfully!", fiber.Map{
		"contacts": contacts,
	})
}
