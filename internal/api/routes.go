package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	// Public share pages need no session.
	app.Get("/shared/:token", handler.SharedRecord)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	api.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	api.Get("/calendar", handler.AuthRequired, handler.GetCalendar)

	records := api.Group("/records", handler.AuthRequired)
	records.Get("", handler.ListRecords)
	records.Post("", handler.CreateRecord)
	records.Delete("/:id", handler.DeleteRecord)
	records.Post("/:id/mastery", handler.ToggleMastery)
	records.Post("/:id/share", handler.CreateShareLink)
	records.Get("/:id/share/qr", handler.ShareQR)

	api.Get("/levels/history", handler.AuthRequired, handler.LevelHistory)
	api.Get("/friends", handler.AuthRequired, handler.Friends)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("", handler.ShowSettings)
	settings.Post("/username", handler.UpdateUsername)
	settings.Post("/avatar", handler.UpdateAvatar)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
