package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"event-discovery-app/handler"
	"event-discovery-app/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.EventHandler
	*handler.AttendanceHandler
	*handler.ChatHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api")

	app.Post("/register", rc.AuthHandler.RegisterUser)
	app.Post("/login", rc.AuthHandler.LoginUser)
	app.Post("/change-password", rc.UserHandler.ChangePassword)
	app.Put("/update-user", rc.UserHandler.UpdateUser)

	app.Post("/add-events", rc.EventHandler.AddEvent)
	app.Get("/events", rc.EventHandler.GetEvents)
	app.Get("/events-names-for-search-bar", rc.EventHandler.GetEventNames)
	app.Get("/events/:id", rc.EventHandler.GetEventByID)

	app.Post("/check-event-conflict", rc.AttendanceHandler.CheckEventConflict)
	app.Post("/participants", rc.AttendanceHandler.AddParticipant)
	app.Post("/user-events", rc.AttendanceHandler.GetUserEvents)
	app.Post("/delete-event", rc.AttendanceHandler.DeleteEvent)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api")
	app.Use("/chats", rc.Middleware.JWTProtected, rc.Middleware.ExtractUserID)

	app.Post("/chats", rc.ChatHandler.PostMessage)
	app.Get("/chats/:eventId", rc.ChatHandler.GetMessages)
}

func (rc *ConfigRoute) GetWebSocketRoute(wsHandler *handler.WebSocketHandler) {
	rc.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	rc.App.Get("/ws/:eventId", websocket.New(wsHandler.HandleWebSocket))
}
