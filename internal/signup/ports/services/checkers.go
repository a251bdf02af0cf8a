// Package services определяет порты удаленных проверок конвейера регистрации.
package services

import (
	"context"

	"signupcheck/internal/signup/domain/entities"
)

// AvailabilityChecker проверяет доступность имени пользователя
// во внешнем сервисе.
type AvailabilityChecker interface {
	// Check возвращает результат проверки. Любая ошибка классифицируется
	// в entities.CheckError; повторные попытки не выполняются.
	Check(ctx context.Context, username string) entities.AvailabilityOutcome
}

// BreachChecker проверяет, встречался ли пароль в известных утечках.
type BreachChecker interface {
	// IsBreached никогда не возвращает ошибку: любой сбой трактуется
	// как "не скомпрометирован" (fail-open).
	IsBreached(ctx context.Context, password string) bool
}
