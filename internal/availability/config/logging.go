package config

import (
	"time"

	"signupcheck/pkg/logger"
)

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"AVAILABILITY_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"AVAILABILITY_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment преобразует строку режима в logger.Environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == "production" {
		return logger.Production
	}
	return logger.Development
}

// ShutdownConfig представляет конфигурацию корректного завершения работы.
type ShutdownConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"AVAILABILITY_SHUTDOWN_TIMEOUT" env-default:"5s"`
}
