package signals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signupcheck/pkg/signals"
)

func TestSourceHoldsInitialValue(t *testing.T) {
	graph := signals.NewGraph()
	src := signals.Source(graph, "hello")

	assert.Equal(t, "hello", src.Get())
}

func TestDerive1RecomputesOnSet(t *testing.T) {
	graph := signals.NewGraph()
	src := signals.Source(graph, "")
	length := signals.Derive1(src, func(s string) int { return len(s) })

	assert.Equal(t, 0, length.Get())

	src.Set("alice")
	assert.Equal(t, 5, length.Get())
}

func TestDerive2CombinesInputs(t *testing.T) {
	graph := signals.NewGraph()
	left := signals.Source(graph, "a")
	right := signals.Source(graph, "b")
	matched := signals.Derive2(left, right, func(l, r string) bool { return l == r })

	assert.False(t, matched.Get())

	right.Set("a")
	assert.True(t, matched.Get())

	left.Set("z")
	assert.False(t, matched.Get())
}

func TestDiamondPropagationIsGlitchFree(t *testing.T) {
	graph := signals.NewGraph()
	src := signals.Source(graph, 1)
	doubled := signals.Derive1(src, func(v int) int { return v * 2 })
	incremented := signals.Derive1(src, func(v int) int { return v + 1 })
	sum := signals.Derive2(doubled, incremented, func(a, b int) int { return a + b })

	assert.Equal(t, 4, sum.Get())

	var observed []int
	sum.Watch(func(v int) { observed = append(observed, v) })

	src.Set(10)

	// Оба промежуточных узла пересчитаны до суммирующего узла:
	// наблюдатель никогда не видит смешанного состояния.
	require.Equal(t, []int{31}, observed)
	assert.Equal(t, 31, sum.Get())
}

func TestWatchReceivesEveryPropagation(t *testing.T) {
	graph := signals.NewGraph()
	src := signals.Source(graph, 0)
	squared := signals.Derive1(src, func(v int) int { return v * v })

	var observed []int
	squared.Watch(func(v int) { observed = append(observed, v) })

	src.Set(2)
	src.Set(3)

	assert.Equal(t, []int{4, 9}, observed)
}

func TestDerive4CombinesAllInputs(t *testing.T) {
	graph := signals.NewGraph()
	a := signals.Source(graph, true)
	b := signals.Source(graph, true)
	c := signals.Source(graph, true)
	d := signals.Source(graph, false)

	all := signals.Derive4(a, b, c, d, func(a, b, c, d bool) bool {
		return a && b && c && d
	})

	assert.False(t, all.Get())

	d.Set(true)
	assert.True(t, all.Get())

	b.Set(false)
	assert.False(t, all.Get())
}

func TestIndependentSourceDoesNotRecomputeOthers(t *testing.T) {
	graph := signals.NewGraph()
	src := signals.Source(graph, "x")
	unrelated := signals.Source(graph, 7)

	recomputed := 0
	derived := signals.Derive1(src, func(s string) int {
		recomputed++
		return len(s)
	})

	require.Equal(t, 1, recomputed)

	unrelated.Set(8)
	assert.Equal(t, 1, recomputed)
	assert.Equal(t, 1, derived.Get())
}
