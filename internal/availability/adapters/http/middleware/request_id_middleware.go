// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"signupcheck/pkg/logger"
)

// Константы промежуточного ПО идентификатора запроса.
const (
	// RequestIDHeader - заголовок с идентификатором запроса клиента.
	RequestIDHeader = "X-Request-ID"
	// RequestContextKey - ключ контекста запроса в Locals.
	RequestContextKey = "requestContext"
)

// NewRequestIDMiddleware прокидывает идентификатор запроса в контекст.
// При отсутствии заголовка идентификатор генерируется.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(RequestIDHeader))
		ctx.Locals(RequestContextKey, requestCtx)

		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(RequestIDHeader, id)
		}

		return ctx.Next()
	}
}
