package http

import (
	"github.com/gofiber/fiber/v3"

	"signupcheck/internal/availability/adapters/http/middleware"
	"signupcheck/internal/availability/app"
)

// SetupRouter настраивает маршрутизацию HTTP сервера.
func SetupRouter(fiberApp *fiber.App, registry *app.UsernameRegistry) {
	handler := NewHandler(registry)

	// Middleware для всех запросов.
	fiberApp.Use(middleware.NewRequestIDMiddleware())
	fiberApp.Use(middleware.NewLoggerMiddleware())
	fiberApp.Use(middleware.NewRecoveryMiddleware())

	fiberApp.Get("/isUserNameAvailable", handler.CheckUserName)

	// Обработчик для несуществующих маршрутов.
	fiberApp.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
