// Package http содержит HTTP клиенты удаленных проверок формы регистрации.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"signupcheck/internal/signup/domain/entities"
	"signupcheck/pkg/logger"
)

// Путь и параметр запроса проверки доступности.
const (
	availabilityPath = "/isUserNameAvailable"
	userNameParam    = "userName"
	defaultTimeout   = 5 * time.Second
)

// Константы для логирования.
const (
	LogCheckingAvailability = "checking username availability"
	LogAvailabilityResult   = "availability check completed"
	LogAvailabilityFailed   = "availability check failed"
)

// availabilityResponse - успешный ответ сервиса доступности.
type availabilityResponse struct {
	IsAvailable bool   `json:"isAvailable"`
	UserName    string `json:"userName"`
}

// validationResponse - тело ответа HTTP 400 с причиной отказа.
type validationResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// AvailabilityClientConfig содержит настройки клиента проверки доступности.
type AvailabilityClientConfig struct {
	// BaseURL - базовый адрес локального сервиса доступности.
	BaseURL string
	// Timeout ограничивает длительность одного запроса; превышение
	// классифицируется как транспортная ошибка.
	Timeout time.Duration
}

// AvailabilityClient выполняет GET запросы к сервису доступности имен.
type AvailabilityClient struct {
	httpClient *http.Client
	cfg        AvailabilityClientConfig
}

// NewAvailabilityClient создает новый клиент. При nil httpClient
// используется http.DefaultClient.
func NewAvailabilityClient(cfg AvailabilityClientConfig, httpClient *http.Client) *AvailabilityClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &AvailabilityClient{httpClient: httpClient, cfg: cfg}
}

// Check выполняет одну проверку доступности имени пользователя.
// Повторные попытки не выполняются: вызывающая сторона вытесняет проверку
// следующим значением вместо повтора.
func (c *AvailabilityClient) Check(ctx context.Context, username string) entities.AvailabilityOutcome {
	log := logger.Log(ctx).With(zap.String("username", username))
	log.Debug(ctx, LogCheckingAvailability)

	requestURL, err := c.buildURL(username)
	if err != nil {
		log.Warn(ctx, LogAvailabilityFailed, zap.Error(err))
		return outcomeError(entities.NewCheckError(entities.KindInvalidRequest, err))
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		log.Warn(ctx, LogAvailabilityFailed, zap.Error(err))
		return outcomeError(entities.NewCheckError(entities.KindInvalidRequest, err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, LogAvailabilityFailed, zap.Error(err))
		return outcomeError(entities.NewCheckError(entities.KindTransport, err))
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var body availabilityResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			log.Warn(ctx, LogAvailabilityFailed, zap.Error(err))
			return outcomeError(entities.NewCheckError(entities.KindDecoding, err))
		}
		log.Debug(ctx, LogAvailabilityResult, zap.Bool("available", body.IsAvailable))
		return entities.AvailabilityOutcome{Available: body.IsAvailable}

	case resp.StatusCode == http.StatusBadRequest:
		var body validationResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			log.Warn(ctx, LogAvailabilityFailed, zap.Error(err))
			return outcomeError(entities.NewCheckError(entities.KindDecoding, err))
		}
		log.Debug(ctx, LogAvailabilityResult, zap.String("reason", body.Reason))
		return outcomeError(entities.NewServerValidationError(body.Reason))

	default:
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		log.Warn(ctx, LogAvailabilityFailed, zap.Error(err))
		return outcomeError(entities.NewCheckError(entities.KindInvalidResponse, err))
	}
}

// buildURL собирает URL запроса. Ошибка разбора базового адреса означает
// локальный отказ без обращения к сети.
func (c *AvailabilityClient) buildURL(username string) (string, error) {
	base, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}

	base.Path = availabilityPath
	query := url.Values{}
	query.Set(userNameParam, username)
	base.RawQuery = query.Encode()

	return base.String(), nil
}

func outcomeError(err *entities.CheckError) entities.AvailabilityOutcome {
	return entities.AvailabilityOutcome{Err: err}
}
