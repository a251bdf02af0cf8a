package signals_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signupcheck/pkg/signals"
)

// taskRecorder потокобезопасно записывает значения, для которых задача
// была запущена и опубликована.
type taskRecorder struct {
	mu        sync.Mutex
	launched  []string
	published []string
}

func (r *taskRecorder) recordLaunch(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.launched = append(r.launched, v)
}

func (r *taskRecorder) recordPublish(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, v)
}

func (r *taskRecorder) launchedValues() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.launched...)
}

func (r *taskRecorder) publishedValues() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.published...)
}

func (r *taskRecorder) task() signals.Task[string] {
	return func(_ context.Context, v string, publish func(func())) {
		r.recordLaunch(v)
		publish(func() { r.recordPublish(v) })
	}
}

func TestTriggerDebouncesBurstToLastValue(t *testing.T) {
	graph := signals.NewGraph()
	src := signals.Source(graph, "")
	recorder := &taskRecorder{}

	trigger := signals.NewTrigger(src, recorder.task(), signals.WithDebounce(40*time.Millisecond))
	defer trigger.Stop()

	src.Set("a")
	src.Set("al")
	src.Set("ali")
	src.Set("alice")

	require.Eventually(t, func() bool {
		return len(recorder.launchedValues()) == 1
	}, time.Second, 5*time.Millisecond)

	// Пауза дольше окна: новых запусков быть не должно.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"alice"}, recorder.launchedValues())
}

func TestTriggerDeduplicatesConsecutiveValues(t *testing.T) {
	graph := signals.NewGraph()
	src := signals.Source(graph, "")
	recorder := &taskRecorder{}

	trigger := signals.NewTrigger(src, recorder.task())
	defer trigger.Stop()

	src.Set("secret")
	src.Set("secret")

	require.Eventually(t, func() bool {
		return len(recorder.launchedValues()) == 1
	}, time.Second, 5*time.Millisecond)

	src.Set("another")

	require.Eventually(t, func() bool {
		return len(recorder.launchedValues()) == 2
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"secret", "another"}, recorder.launchedValues())
}

func TestTriggerSuppressesValueEqualToInitialState(t *testing.T) {
	graph := signals.NewGraph()
	src := signals.Source(graph, "")
	recorder := &taskRecorder{}

	trigger := signals.NewTrigger(src, recorder.task())
	defer trigger.Stop()

	src.Set("")

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, recorder.launchedValues())
}

func TestTriggerDiscardsSupersededPublish(t *testing.T) {
	graph := signals.NewGraph()
	src := signals.Source(graph, "")
	recorder := &taskRecorder{}

	slowGate := make(chan struct{})
	task := func(_ context.Context, v string, publish func(func())) {
		recorder.recordLaunch(v)
		if v == "bob" {
			<-slowGate
		}
		publish(func() { recorder.recordPublish(v) })
	}

	trigger := signals.NewTrigger(src, task)
	defer trigger.Stop()

	src.Set("bob")
	require.Eventually(t, func() bool {
		return len(recorder.launchedValues()) == 1
	}, time.Second, 5*time.Millisecond)

	src.Set("carol")
	require.Eventually(t, func() bool {
		return len(recorder.publishedValues()) == 1
	}, time.Second, 5*time.Millisecond)

	close(slowGate)

	// Публикация вытесненного запуска отбрасывается.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"carol"}, recorder.publishedValues())
}

func TestTriggerStaleApplyCannotOvertakeNewerRun(t *testing.T) {
	graph := signals.NewGraph()
	src := signals.Source(graph, "")
	result := signals.Source(graph, "")
	recorder := &taskRecorder{}

	applyEntered := make(chan struct{})
	applyGate := make(chan struct{})

	// Запуск для bob застревает внутри самого применения, уже после того,
	// как проверка вытеснения пройдена.
	task := func(_ context.Context, v string, publish func(func())) {
		recorder.recordLaunch(v)
		publish(func() {
			if v == "bob" {
				close(applyEntered)
				<-applyGate
			}
			recorder.recordPublish(v)
			result.Set(v)
		})
	}

	trigger := signals.NewTrigger(src, task)
	defer trigger.Stop()

	src.Set("bob")
	<-applyEntered

	src.Set("carol")
	require.Eventually(t, func() bool {
		return len(recorder.launchedValues()) == 2
	}, time.Second, 5*time.Millisecond)

	close(applyGate)

	// Публикация carol сериализована после bob: применения упорядочены,
	// и итог отражает последний запуск.
	require.Eventually(t, func() bool {
		return len(recorder.publishedValues()) == 2
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"bob", "carol"}, recorder.publishedValues())
	assert.Equal(t, "carol", result.Get())
}

func TestTriggerCancelsInFlightRunOnNewValue(t *testing.T) {
	graph := signals.NewGraph()
	src := signals.Source(graph, "")

	var mu sync.Mutex
	var cancelled []string

	task := func(ctx context.Context, v string, publish func(func())) {
		if v == "first" {
			<-ctx.Done()
			mu.Lock()
			cancelled = append(cancelled, v)
			mu.Unlock()
			return
		}
		publish(func() {})
	}

	trigger := signals.NewTrigger(src, task)
	defer trigger.Stop()

	src.Set("first")
	src.Set("second")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(cancelled) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestTriggerStopCancelsAndIgnoresFurtherValues(t *testing.T) {
	graph := signals.NewGraph()
	src := signals.Source(graph, "")
	recorder := &taskRecorder{}

	trigger := signals.NewTrigger(src, recorder.task())

	src.Set("before")
	require.Eventually(t, func() bool {
		return len(recorder.launchedValues()) == 1
	}, time.Second, 5*time.Millisecond)

	trigger.Stop()
	src.Set("after")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"before"}, recorder.launchedValues())
}
