// Package main реализует консольную оболочку над конвейером валидации
// формы регистрации. Оболочка только связывает ввод полей с конвейером
// и печатает его выходные сигналы; аутентификация не выполняется.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	httpclient "signupcheck/internal/signup/adapters/http"
	"signupcheck/internal/signup/app"
	"signupcheck/internal/signup/config"
	"signupcheck/internal/signup/domain/entities"
	"signupcheck/pkg/logger"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "SIGNUP_LOGGER_MODE"
	EnvLoggerLevel = "SIGNUP_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrReadInput            = "failed to read input"
)

// Команды консольной оболочки.
const (
	cmdUsername = "username"
	cmdPassword = "password"
	cmdConfirm  = "confirm"
	cmdShow     = "show"
	cmdExit     = "exit"
)

const usage = `commands:
  username <value>   edit the username field
  password <value>   edit the password field
  confirm <value>    edit the password confirmation field
  show               print the current validation snapshot
  exit               quit`

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error(ctx, ErrLoadConfig, zap.Error(err))
		os.Exit(1)
	}

	finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
	if err != nil {
		log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
		os.Exit(1)
	}

	logger.SetGlobalLogger(finalLogger)
	log = finalLogger

	availabilityClient := httpclient.NewAvailabilityClient(httpclient.AvailabilityClientConfig{
		BaseURL: cfg.Endpoints.AvailabilityURL,
		Timeout: cfg.Pipeline.RequestTimeout,
	}, nil)
	breachClient := httpclient.NewBreachClient(httpclient.BreachClientConfig{
		BaseURL: cfg.Endpoints.BreachURL,
		Timeout: cfg.Pipeline.RequestTimeout,
	}, nil)

	pipeline := app.NewPipeline(ctx, &cfg.Pipeline, availabilityClient, breachClient)
	defer pipeline.Close(ctx)

	pipeline.Watch(func(snapshot entities.ValidationSnapshot) {
		printSnapshot(snapshot)
	})

	fmt.Println(usage)
	printSnapshot(pipeline.Snapshot())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		command, value, _ := strings.Cut(scanner.Text(), " ")

		switch command {
		case cmdUsername:
			pipeline.SetUsername(value)
		case cmdPassword:
			pipeline.SetPassword(value)
		case cmdConfirm:
			pipeline.SetConfirmPassword(value)
		case cmdShow:
			printSnapshot(pipeline.Snapshot())
		case cmdExit:
			return
		case "":
		default:
			fmt.Println(usage)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Error(ctx, ErrReadInput, zap.Error(err))
		os.Exit(1)
	}
}

func printSnapshot(snapshot entities.ValidationSnapshot) {
	if snapshot.ErrorMessage != "" {
		fmt.Printf("form valid: %-5v  %s\n", snapshot.IsFormValid, snapshot.ErrorMessage)
		return
	}
	fmt.Printf("form valid: %v\n", snapshot.IsFormValid)
}
