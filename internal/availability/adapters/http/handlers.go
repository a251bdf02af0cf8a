// Package http содержит HTTP обработчики сервиса доступности имен.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"signupcheck/internal/availability/adapters/http/middleware"
	"signupcheck/internal/availability/app"
	"signupcheck/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerAvailability = "availability handler: check username"

	ErrorFailedToServeRequest = "failed to serve request"
)

// availabilityResponse - успешный ответ проверки доступности.
type availabilityResponse struct {
	IsAvailable bool   `json:"isAvailable"`
	UserName    string `json:"userName"`
}

// validationResponse - ответ с причиной отказа валидации.
type validationResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// Handler содержит HTTP обработчики сервиса доступности.
type Handler struct {
	registry *app.UsernameRegistry
}

// NewHandler создает новый экземпляр обработчика.
func NewHandler(registry *app.UsernameRegistry) *Handler {
	return &Handler{registry: registry}
}

// CheckUserName обрабатывает запрос проверки доступности имени пользователя.
func (h *Handler) CheckUserName(ctx fiber.Ctx) error {
	requestCtx, ok := ctx.Locals(middleware.RequestContextKey).(context.Context)
	if !ok {
		requestCtx = ctx.Context() // Запасной вариант
	}
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerAvailability)

	userName := ctx.Query("userName")

	available, err := h.registry.IsAvailable(requestCtx, userName)
	if err != nil {
		if errors.Is(err, app.ErrEmptyUserName) || errors.Is(err, app.ErrUserNameTooShort) {
			if sendErr := ctx.Status(http.StatusBadRequest).JSON(validationResponse{
				Error:  true,
				Reason: err.Error(),
			}); sendErr != nil {
				return fmt.Errorf("sending validation response: %w", sendErr)
			}
			return nil
		}

		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		if sendErr := ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorFailedToServeRequest,
		}); sendErr != nil {
			return fmt.Errorf("sending error response: %w", sendErr)
		}
		return nil
	}

	if err := ctx.Status(http.StatusOK).JSON(availabilityResponse{
		IsAvailable: available,
		UserName:    userName,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
