package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/duetalk/chat-backend/internal/handlers"
)

// Register mounts the HTTP surface. Paths are flat, no version prefix.
func Register(app *fiber.App, auth *handlers.AuthHandler, chat *handlers.ChatHandler) {
	app.Get("/hello", auth.Hello)
	app.Get("/list-users", auth.ListUsers)
	app.Post("/register", auth.Register)
	app.Post("/login", auth.Login)

	app.Post("/add-message", chat.AddMessage)
	app.Get("/chat-list", chat.ChatList)
	app.Get("/all-chat", chat.AllChat)
}
