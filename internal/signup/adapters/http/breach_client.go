package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"signupcheck/internal/signup/domain/services"
	"signupcheck/pkg/logger"
)

// rangePath - путь k-анонимного range-запроса.
const rangePath = "/range/"

// Константы для логирования.
const (
	LogCheckingBreach   = "checking password against breach corpus"
	LogBreachResult     = "breach check completed"
	LogBreachFailedOpen = "breach check failed, treating password as not breached"
)

// BreachClientConfig содержит настройки клиента проверки утечек.
type BreachClientConfig struct {
	// BaseURL - базовый адрес сервиса range-запросов.
	BaseURL string
	// Timeout ограничивает длительность одного запроса.
	Timeout time.Duration
}

// BreachClient проверяет пароль по опубликованному списку утечек через
// k-анонимный range-запрос: сервер видит только первые пять символов
// дайджеста, но не сам пароль и не полный дайджест.
type BreachClient struct {
	httpClient *http.Client
	cfg        BreachClientConfig
}

// NewBreachClient создает новый клиент. При nil httpClient используется
// http.DefaultClient.
func NewBreachClient(cfg BreachClientConfig, httpClient *http.Client) *BreachClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &BreachClient{httpClient: httpClient, cfg: cfg}
}

// IsBreached возвращает true, если пароль встречался в известных утечках.
// Любой сбой (транспорт, не-2xx ответ, ошибка чтения) дает false:
// недоступность проверки не должна блокировать регистрацию, ценой
// пропуска утечек на время сбоя.
func (c *BreachClient) IsBreached(ctx context.Context, password string) bool {
	log := logger.Log(ctx)
	log.Debug(ctx, LogCheckingBreach)

	digest := services.PasswordDigest(password)
	prefix, suffix := services.SplitDigest(digest)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	requestURL := strings.TrimSuffix(c.cfg.BaseURL, "/") + rangePath + prefix
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		log.Warn(ctx, LogBreachFailedOpen, zap.Error(err))
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, LogBreachFailedOpen, zap.Error(err))
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn(ctx, LogBreachFailedOpen,
			zap.Error(fmt.Errorf("unexpected status %d", resp.StatusCode)))
		return false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, LogBreachFailedOpen, zap.Error(err))
		return false
	}

	breached := strings.Contains(string(body), suffix)
	log.Debug(ctx, LogBreachResult, zap.Bool("breached", breached))
	return breached
}
