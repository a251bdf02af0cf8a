package signals

import (
	"context"
	"sync"
	"time"
)

// Task - асинхронная задача, запускаемая триггером для нового значения.
// Результат применяется через publish: переданное замыкание выполняется
// только если запуск не был вытеснен более новым значением.
type Task[T any] func(ctx context.Context, value T, publish func(apply func()))

// Trigger наблюдает за сигналом и запускает асинхронную задачу для каждого
// нового отличного значения. Повторяющиеся подряд значения подавляются;
// значение, равное начальному состоянию источника, не запускает задачу.
// При необходимости запуск откладывается до паузы ввода (debounce).
// Новый запуск отменяет контекст предыдущего, а публикации устаревших
// запусков отбрасываются по монотонному номеру запуска.
type Trigger[T comparable] struct {
	mu      sync.Mutex
	task    Task[T]
	window  time.Duration
	timer   *time.Timer
	last    T
	pending T
	seq     uint64
	cancel  context.CancelFunc
	stopped bool

	// publishMu удерживается на всю публикацию: проверка номера запуска
	// и применение результата образуют одну атомарную секцию. Отдельный
	// мьютекс, поскольку apply может через Set сигнала повторно войти в mu.
	publishMu sync.Mutex
}

// TriggerOption - модификатор конфигурации триггера.
type TriggerOption func(*triggerOptions)

type triggerOptions struct {
	window time.Duration
}

// WithDebounce откладывает запуск задачи до тех пор, пока сигнал не будет
// неизменным в течение window.
func WithDebounce(window time.Duration) TriggerOption {
	return func(o *triggerOptions) {
		o.window = window
	}
}

// NewTrigger подписывает триггер на сигнал. Текущее значение сигнала
// становится базой для подавления повторов.
func NewTrigger[T comparable](src *Signal[T], task Task[T], opts ...TriggerOption) *Trigger[T] {
	var options triggerOptions
	for _, opt := range opts {
		opt(&options)
	}

	t := &Trigger[T]{
		task:   task,
		window: options.window,
		last:   src.Get(),
	}
	src.Watch(t.offer)
	return t
}

// offer обрабатывает очередное значение сигнала.
func (t *Trigger[T]) offer(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped || v == t.last {
		return
	}
	t.last = v

	if t.window <= 0 {
		t.launch(v)
		return
	}

	t.pending = v
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.window, t.fire)
}

func (t *Trigger[T]) fire() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}
	t.launch(t.pending)
}

// launch запускает задачу для значения v. Вызывается с удерживаемым t.mu.
func (t *Trigger[T]) launch(v T) {
	if t.cancel != nil {
		t.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.seq++
	seq := t.seq

	go t.task(ctx, v, func(apply func()) {
		t.publishMu.Lock()
		defer t.publishMu.Unlock()

		t.mu.Lock()
		superseded := t.stopped || seq != t.seq
		t.mu.Unlock()
		if superseded {
			return
		}
		apply()
	})
}

// Stop останавливает триггер: отменяет отложенный запуск и контекст
// выполняющейся задачи. Дальнейшие значения сигнала игнорируются.
func (t *Trigger[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.cancel != nil {
		t.cancel()
	}
}
