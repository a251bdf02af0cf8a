package config

import "time"

// EndpointsConfig содержит базовые адреса внешних сервисов проверок.
type EndpointsConfig struct {
	AvailabilityURL string `yaml:"availability_url" env:"SIGNUP_AVAILABILITY_URL" env-default:"http://127.0.0.1:8080"`
	BreachURL       string `yaml:"breach_url" env:"SIGNUP_BREACH_URL" env-default:"https://api.pwnedpasswords.com"`
}

// PipelineConfig содержит настройки формирования входных сигналов.
type PipelineConfig struct {
	// DebounceWindow - окно тишины перед запуском проверки доступности.
	DebounceWindow time.Duration `yaml:"debounce_window" env:"SIGNUP_DEBOUNCE_WINDOW" env-default:"800ms"`
	// RequestTimeout ограничивает каждый исходящий запрос проверки.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"SIGNUP_REQUEST_TIMEOUT" env-default:"5s"`
}
