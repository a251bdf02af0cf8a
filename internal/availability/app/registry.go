// Package app реализует проверку доступности имен пользователей
// по списку занятых имен, хранящемуся в памяти процесса.
package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"signupcheck/pkg/logger"
)

// Ошибки валидации имени пользователя.
var (
	ErrEmptyUserName    = errors.New("userName query parameter is required")
	ErrUserNameTooShort = errors.New("Username must be at least 3 characters")
)

// minUserNameLength - минимальная длина имени, принимаемая сервисом.
const minUserNameLength = 3

// Константы для логирования.
const (
	LogCheckingName = "checking username"
	LogNameRejected = "username rejected"
	LogNameChecked  = "username checked"
)

// defaultTakenNames - стартовый список занятых имен.
var defaultTakenNames = []string{
	"admin",
	"administrator",
	"root",
	"support",
	"peterfriese",
	"johnnyappleseed",
	"page",
	"johndoe",
}

// UsernameRegistry хранит занятые имена и отвечает на запросы доступности.
// Сравнение имен нечувствительно к регистру.
type UsernameRegistry struct {
	mu    sync.RWMutex
	taken map[string]struct{}
}

// NewUsernameRegistry создает реестр со стартовым списком занятых имен.
func NewUsernameRegistry() *UsernameRegistry {
	taken := make(map[string]struct{}, len(defaultTakenNames))
	for _, name := range defaultTakenNames {
		taken[strings.ToLower(name)] = struct{}{}
	}
	return &UsernameRegistry{taken: taken}
}

// IsAvailable проверяет доступность имени. Пустое или слишком короткое имя
// отклоняется ошибкой валидации с причиной для клиента.
func (r *UsernameRegistry) IsAvailable(ctx context.Context, userName string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("username", userName))
	log.Debug(ctx, LogCheckingName)

	if strings.TrimSpace(userName) == "" {
		log.Debug(ctx, LogNameRejected, zap.Error(ErrEmptyUserName))
		return false, ErrEmptyUserName
	}
	if len(userName) < minUserNameLength {
		log.Debug(ctx, LogNameRejected, zap.Error(ErrUserNameTooShort))
		return false, ErrUserNameTooShort
	}

	r.mu.RLock()
	_, exists := r.taken[strings.ToLower(userName)]
	r.mu.RUnlock()

	log.Debug(ctx, LogNameChecked, zap.Bool("available", !exists))
	return !exists, nil
}

// Reserve помечает имя занятым. Используется для наполнения реестра
// в тестах и демонстрационных сценариях.
func (r *UsernameRegistry) Reserve(userName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.taken[strings.ToLower(userName)] = struct{}{}
}
