package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/duetalk/chat-backend/internal/events"
	"github.com/duetalk/chat-backend/internal/services"
)

type ChatHandler struct {
	svc *services.ChatService
	pub *events.Publisher
}

func NewChatHandler(svc *services.ChatService, pub *events.Publisher) *ChatHandler {
	return &ChatHandler{svc: svc, pub: pub}
}

type addMessageReq struct {
	SenderID   int64  `json:"sender_id"`
	ReceiverID int64  `json:"receiver_id"`
	Message    string `json:"message"`
}

func (h *ChatHandler) AddMessage(c *fiber.Ctx) error {
	var req addMessageReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.SenderID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "sender_id is required")
	}
	if req.ReceiverID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "receiver_id is required")
	}
	if req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}

	roomID, messageID, err := h.svc.SendMessage(c.Context(), req.SenderID, req.ReceiverID, req.Message)
	if err != nil {
		return err
	}
	if h.pub != nil {
		h.pub.MessageSent(roomID, messageID, req.SenderID, req.ReceiverID, req.Message)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "message sent",
		"roomId":  roomID,
	})
}

func (h *ChatHandler) ChatList(c *fiber.Ctx) error {
	raw := c.Query("user_id")
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "user_id is required")
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "user_id must be numeric")
	}

	chats, err := h.svc.RoomsForUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "chat list fetched",
		"chats":   chats,
	})
}

func (h *ChatHandler) AllChat(c *fiber.Ctx) error {
	chats, err := h.svc.AllMessages(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "all chat fetched",
		"chats":   chats,
	})
}
