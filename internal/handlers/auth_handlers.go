package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/duetalk/chat-backend/internal/services"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello, Worldx!"})
}

func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.svc.ListUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

type registerReq struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.Fullname == "" {
		return fiber.NewError(fiber.StatusBadRequest, "fullname is required")
	}
	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}
	if req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "password is required")
	}

	userID, err := h.svc.Register(c.Context(), req.Fullname, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "user registered",
		"user_id": userID,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}
	if req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "password is required")
	}

	user, err := h.svc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	// models.User hides the password hash from JSON
	return c.JSON(fiber.Map{
		"message": "login success",
		"user":    user,
	})
}
