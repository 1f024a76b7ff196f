package adminController

import (
	"encoding/json"
	"log"

	"microlearn/config"
	"microlearn/database"
	"microlearn/mapper"
	"microlearn/middleware"
	"microlearn/models"
	"microlearn/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

// ManageUsersRequest is the RPC-style body: an action name plus an
// action-specific payload.
type ManageUsersRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// userView is the display shape served to the admin console.
type userView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"` // active, inactive
	Created   string `json:"created"`
	LastLogin string `json:"last_login,omitempty"`
}

func toUserView(user models.User) userView {
	view := userView{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		Status:  "active",
		Created: user.CreatedAt.Format("2006-01-02"),
	}
	if user.IsBanned {
		view.Status = "inactive"
	}
	if !user.LastLogin.IsZero() {
		view.LastLogin = user.LastLogin.Format("2006-01-02")
	}
	return view
}

// rpcError renders the serverless-style failure envelope.
func rpcError(c *fiber.Ctx, status int, message, code string) error {
	body := fiber.Map{"error": message}
	if code != "" {
		body["code"] = code
	}
	return c.Status(status).JSON(body)
}

// ManageUsers dispatches the admin user-management actions. The route is
// guarded by JWTMiddleware and AdminOnlyMiddleware, so the caller is a
// verified ADMIN by the time this runs.
func ManageUsers(c *fiber.Ctx) error {
	var req ManageUsersRequest
	if err := c.BodyParser(&req); err != nil {
		return rpcError(c, fiber.StatusBadRequest, "Invalid request body", "")
	}

	switch req.Action {
	case "fetchUsers":
		return fetchUsers(c)
	case "inviteUser":
		return inviteUser(c, req.Payload)
	case "updateUser":
		return updateUser(c, req.Payload)
	case "deleteUser":
		return deleteUser(c, req.Payload)
	default:
		return rpcError(c, fiber.StatusBadRequest, "Unknown action: "+req.Action, "")
	}
}

func fetchUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return rpcError(c, fiber.StatusInternalServerError, "Failed to fetch users", "")
	}

	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}
	return c.JSON(fiber.Map{"users": views})
}

func inviteUser(c *fiber.Ctx, payload json.RawMessage) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
		Role  string `json:"role" validate:"required,oneof=USER ADMIN"`
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		return rpcError(c, fiber.StatusBadRequest, "Invalid payload", "")
	}
	if err := validate.Struct(req); err != nil {
		return rpcError(c, fiber.StatusUnprocessableEntity, "Invalid email or role", "")
	}

	db := database.Database.Db

	if err := db.Where("email = ?", req.Email).First(&models.User{}).Error; err == nil {
		return rpcError(c, fiber.StatusConflict, "Email is already registered", "")
	}

	tempPassword := utils.GenerateTempPassword(12)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing invite password: %v", err)
		return rpcError(c, fiber.StatusInternalServerError, "Failed to create user", "")
	}

	user := models.User{
		Email:    req.Email,
		Role:     req.Role,
		Password: string(hashedPassword),
	}
	if err := db.Create(&user).Error; err != nil {
		return rpcError(c, fiber.StatusInternalServerError, "Failed to create user", "")
	}

	go func(email, role, password string) {
		if err := utils.SendInviteEmail(email, role, password); err != nil {
			log.Printf("Error sending invite email to %s: %v", email, err)
		}
	}(req.Email, req.Role, tempPassword)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": toUserView(user)})
}

func updateUser(c *fiber.Ctx, payload json.RawMessage) error {
	var req struct {
		UserID  uint `json:"userId"`
		Updates struct {
			Name   *string `json:"name"`
			Role   *string `json:"role"`
			Status *string `json:"status"` // active, inactive
		} `json:"updates"`
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		return rpcError(c, fiber.StatusBadRequest, "Invalid payload", "")
	}

	db := database.Database.Db

	// Resolve before touching anything so an unknown id has no side effects.
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", req.UserID, false).First(&user).Error; err != nil {
		return rpcError(c, fiber.StatusNotFound, "User not found", "")
	}

	if req.Updates.Name != nil {
		user.Name = *req.Updates.Name
	}
	if req.Updates.Role != nil {
		if *req.Updates.Role != "USER" && *req.Updates.Role != "ADMIN" {
			return rpcError(c, fiber.StatusUnprocessableEntity, "Invalid role", "")
		}
		user.Role = *req.Updates.Role
	}
	if req.Updates.Status != nil {
		user.IsBanned = *req.Updates.Status == "inactive"
	}

	if err := db.Save(&user).Error; err != nil {
		return rpcError(c, fiber.StatusInternalServerError, "Failed to update user", "")
	}

	return c.JSON(fiber.Map{"user": toUserView(user)})
}

func deleteUser(c *fiber.Ctx, payload json.RawMessage) error {
	var req struct {
		UserID uint `json:"userId"`
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		return rpcError(c, fiber.StatusBadRequest, "Invalid payload", "")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", req.UserID, false).First(&user).Error; err != nil {
		return rpcError(c, fiber.StatusNotFound, "User not found", "")
	}

	user.IsDeleted = true
	if err := db.Save(&user).Error; err != nil {
		return rpcError(c, fiber.StatusInternalServerError, "Failed to delete user", "")
	}

	return c.JSON(fiber.Map{"deleted": true})
}

// ResolveContact maps a contact display id back to its cached WhatsApp
// contact row. Kept for the admin console, which still shows compact
// numeric ids for messaging contacts.
func ResolveContact(c *fiber.Ctx) error {
	displayID, err := c.ParamsInt("display_id")
	if err != nil || displayID < 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid display id!", nil)
	}

	var contacts []models.WhatsAppContact
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&contacts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contacts!", nil)
	}

	contact, found := mapper.FindContactByDisplayID(contacts, uint32(displayID))
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Contact not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact resolved successfully!", fiber.Map{
		"display_id": mapper.DisplayID(contact.WAID),
		"contact":    contact,
	})
}
