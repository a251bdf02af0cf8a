// Package app собирает реактивный конвейер валидации формы регистрации:
// редактирование полей и результаты удаленных проверок сводятся в два
// выходных сигнала - признак валидности формы и сообщение об ошибке.
package app

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"signupcheck/internal/signup/config"
	"signupcheck/internal/signup/domain/entities"
	svc "signupcheck/internal/signup/ports/services"
	"signupcheck/pkg/logger"
	"signupcheck/pkg/signals"
)

// Константы для логирования.
const (
	LogPipelineStarted   = "validation pipeline started"
	LogPipelineClosed    = "validation pipeline closed"
	LogAvailabilityKnown = "availability outcome applied"
	LogBreachKnown       = "breach outcome applied"
)

// Pipeline - граф сигналов валидации. Все поля пересчитываются
// детерминированно из последних известных входов; единственное
// разделяемое состояние - значения узлов графа, изменяемые только
// шагом распространения.
type Pipeline struct {
	graph *signals.Graph

	username        *signals.Signal[string]
	password        *signals.Signal[string]
	confirmPassword *signals.Signal[string]

	availability *signals.Signal[entities.AvailabilityOutcome]
	breached     *signals.Signal[bool]

	isUsernameValid *signals.Signal[bool]
	passwordCheck   *signals.Signal[entities.PasswordCheck]
	snapshot        *signals.Signal[entities.ValidationSnapshot]

	authState *signals.Signal[entities.AuthState]

	usernameTrigger *signals.Trigger[string]
	passwordTrigger *signals.Trigger[string]
}

// NewPipeline строит граф и подписывает триггеры удаленных проверок.
// Проверка доступности запускается после паузы ввода имени; проверка
// утечек - на каждое новое значение пароля. Повторяющиеся значения
// проверок не запускают.
func NewPipeline(
	ctx context.Context,
	cfg *config.PipelineConfig,
	availabilityChecker svc.AvailabilityChecker,
	breachChecker svc.BreachChecker,
) *Pipeline {
	log := logger.Log(ctx)

	graph := signals.NewGraph()

	p := &Pipeline{
		graph:           graph,
		username:        signals.Source(graph, ""),
		password:        signals.Source(graph, ""),
		confirmPassword: signals.Source(graph, ""),
		availability:    signals.Source(graph, entities.AvailabilityOutcome{}),
		breached:        signals.Source(graph, false),
		authState:       signals.Source(graph, entities.Unauthenticated),
	}

	p.isUsernameValid = signals.Derive1(p.username, entities.IsUsernameValid)
	p.passwordCheck = signals.Derive2(p.password, p.confirmPassword, entities.DerivePasswordCheck)

	isFormValid := signals.Derive4(
		p.availability, p.isUsernameValid, p.passwordCheck, p.breached,
		func(outcome entities.AvailabilityOutcome, usernameValid bool, check entities.PasswordCheck, breached bool) bool {
			return usernameAvailable(outcome) &&
				usernameValid &&
				check == entities.PasswordValid &&
				!breached
		},
	)

	errorMessage := signals.Derive4(
		p.availability, p.isUsernameValid, p.breached, p.passwordCheck,
		deriveErrorMessage,
	)

	p.snapshot = signals.Derive2(isFormValid, errorMessage,
		func(valid bool, message string) entities.ValidationSnapshot {
			return entities.ValidationSnapshot{IsFormValid: valid, ErrorMessage: message}
		},
	)

	p.usernameTrigger = signals.NewTrigger(p.username,
		func(taskCtx context.Context, username string, publish func(func())) {
			// Слишком короткое имя не отправляется на проверку; прежний
			// результат сбрасывается, чтобы устаревшая ошибка не заслоняла
			// подсказку о длине имени.
			if !entities.IsUsernameValid(username) {
				publish(func() { p.availability.Set(entities.AvailabilityOutcome{}) })
				return
			}

			outcome := availabilityChecker.Check(taskCtx, username)
			publish(func() {
				log.Debug(taskCtx, LogAvailabilityKnown,
					zap.String("username", username),
					zap.Bool("available", outcome.Available),
					zap.Bool("errored", outcome.Err != nil))
				p.availability.Set(outcome)
			})
		},
		signals.WithDebounce(cfg.DebounceWindow),
	)

	p.passwordTrigger = signals.NewTrigger(p.password,
		func(taskCtx context.Context, password string, publish func(func())) {
			breached := breachChecker.IsBreached(taskCtx, password)
			publish(func() {
				log.Debug(taskCtx, LogBreachKnown, zap.Bool("breached", breached))
				p.breached.Set(breached)
			})
		},
	)

	log.Info(ctx, LogPipelineStarted, zap.Duration("debounce_window", cfg.DebounceWindow))

	return p
}

// usernameAvailable трактует последний результат проверки доступности.
// Транспортная ошибка считается доступностью: кратковременный сбой
// собственного сервиса не должен блокировать пользователя. Любая другая
// ошибка означает недоступность имени.
func usernameAvailable(outcome entities.AvailabilityOutcome) bool {
	if outcome.Err != nil {
		return outcome.Err.Kind == entities.KindTransport
	}
	return outcome.Available
}

// deriveErrorMessage выбирает сообщение по строгому приоритету,
// повторяющему порядок полей на экране: ошибка проверки доступности,
// невалидное имя, скомпрометированный пароль, проверка пары паролей.
func deriveErrorMessage(
	outcome entities.AvailabilityOutcome,
	usernameValid bool,
	breached bool,
	check entities.PasswordCheck,
) string {
	if outcome.Err != nil {
		if msg := outcome.Err.Message(); msg != "" {
			return msg
		}
	}
	if !usernameValid {
		return entities.MsgUsernameInvalid
	}
	if breached {
		return entities.MsgPasswordBreached
	}
	return check.Message()
}

// SetUsername применяет редактирование поля имени пользователя.
func (p *Pipeline) SetUsername(username string) {
	p.username.Set(username)
}

// SetPassword применяет редактирование поля пароля.
func (p *Pipeline) SetPassword(password string) {
	p.password.Set(password)
}

// SetConfirmPassword применяет редактирование поля подтверждения пароля.
func (p *Pipeline) SetConfirmPassword(confirmPassword string) {
	p.confirmPassword.Set(confirmPassword)
}

// Fields возвращает текущие значения полей формы.
func (p *Pipeline) Fields() entities.FormFields {
	return entities.FormFields{
		Username:        p.username.Get(),
		Password:        p.password.Get(),
		ConfirmPassword: p.confirmPassword.Get(),
	}
}

// Snapshot возвращает текущие выходные сигналы конвейера.
func (p *Pipeline) Snapshot() entities.ValidationSnapshot {
	return p.snapshot.Get()
}

// Watch регистрирует наблюдателя выходных сигналов. Наблюдатель вызывается
// только при изменении снимка: редактирование, не меняющее ни валидность,
// ни сообщение, уведомления не дает.
func (p *Pipeline) Watch(fn func(entities.ValidationSnapshot)) {
	var mu sync.Mutex
	last := p.snapshot.Get()

	p.snapshot.Watch(func(snapshot entities.ValidationSnapshot) {
		mu.Lock()
		defer mu.Unlock()

		if snapshot == last {
			return
		}
		last = snapshot
		fn(snapshot)
	})
}

// AuthState возвращает состояние аутентификации сеанса. Конвейер валидации
// никогда его не изменяет.
func (p *Pipeline) AuthState() entities.AuthState {
	return p.authState.Get()
}

// Close останавливает триггеры и отменяет выполняющиеся проверки.
func (p *Pipeline) Close(ctx context.Context) {
	p.usernameTrigger.Stop()
	p.passwordTrigger.Stop()
	logger.Log(ctx).Info(ctx, LogPipelineClosed)
}
