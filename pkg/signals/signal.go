// Package signals реализует явный граф реактивных сигналов: узлы-источники,
// производные узлы с объявленными входами и push-распространение обновлений
// в топологическом порядке.
package signals

import (
	"fmt"
	"sync"
)

// Graph владеет всеми узлами и сериализует их обновления одним мьютексом.
// Порядок создания узлов совпадает с топологическим порядком: входы
// производного узла обязаны существовать до него.
type Graph struct {
	mu         sync.Mutex
	nodes      []graphNode
	downstream map[int][]int
}

// graphNode - внутренний интерфейс узла графа.
type graphNode interface {
	recompute()
	notifications() []func()
}

// NewGraph создает пустой граф сигналов.
func NewGraph() *Graph {
	return &Graph{
		downstream: make(map[int][]int),
	}
}

// Signal представляет узел графа с текущим значением.
// Для узлов-источников compute равен nil.
type Signal[T any] struct {
	g        *Graph
	id       int
	val      T
	compute  func() T
	watchers []func(T)
}

// Source создает узел-источник с начальным значением.
func Source[T any](g *Graph, initial T) *Signal[T] {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := &Signal[T]{g: g, id: len(g.nodes), val: initial}
	g.nodes = append(g.nodes, s)
	return s
}

// Get возвращает текущее значение сигнала.
func (s *Signal[T]) Get() T {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	return s.val
}

// Set устанавливает новое значение источника и пересчитывает все
// транзитивно зависимые узлы в топологическом порядке. Наблюдатели
// вызываются после завершения распространения, вне блокировки графа.
func (s *Signal[T]) Set(v T) {
	s.g.mu.Lock()
	s.val = v
	notify := s.g.propagateFrom(s.id)
	s.g.mu.Unlock()

	for _, fn := range notify {
		fn()
	}
}

// Watch регистрирует наблюдателя, вызываемого после каждого распространения,
// затронувшего узел, в том числе когда пересчет дал прежнее значение.
// Наблюдатель получает значение, зафиксированное в момент распространения;
// отсечение повторов - забота подписчика.
func (s *Signal[T]) Watch(fn func(T)) {
	s.g.mu.Lock()
	defer s.g.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

func (s *Signal[T]) recompute() {
	if s.compute != nil {
		s.val = s.compute()
	}
}

func (s *Signal[T]) notifications() []func() {
	if len(s.watchers) == 0 {
		return nil
	}
	v := s.val
	fns := make([]func(), 0, len(s.watchers))
	for _, w := range s.watchers {
		w := w
		fns = append(fns, func() { w(v) })
	}
	return fns
}

// propagateFrom пересчитывает всех транзитивных зависимых узла id
// в порядке возрастания идентификаторов и собирает уведомления.
// Вызывается с удерживаемым мьютексом графа.
func (g *Graph) propagateFrom(id int) []func() {
	affected := g.collectDependents(id)

	notify := g.nodes[id].notifications()
	for _, depID := range affected {
		node := g.nodes[depID]
		node.recompute()
		notify = append(notify, node.notifications()...)
	}
	return notify
}

// collectDependents возвращает идентификаторы всех транзитивных зависимых
// в топологическом порядке. Итеративный обход вместо рекурсии.
func (g *Graph) collectDependents(start int) []int {
	visited := make(map[int]bool)
	stack := []int{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, dep := range g.downstream[current] {
			if !visited[dep] {
				visited[dep] = true
				stack = append(stack, dep)
			}
		}
	}

	result := make([]int, 0, len(visited))
	for id := range visited {
		result = append(result, id)
	}
	sortInts(result)
	return result
}

// addDerived регистрирует производный узел и его ребра.
// Вызывается с удерживаемым мьютексом графа.
func (g *Graph) addDerived(s graphNode, depIDs ...int) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, s)
	for _, dep := range depIDs {
		g.downstream[dep] = append(g.downstream[dep], id)
	}
	return id
}

func sortInts(ids []int) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}

func sameGraph(g *Graph, other *Graph) {
	if g != other {
		panic(fmt.Sprintf("signals: dependencies belong to different graphs (%p vs %p)", g, other))
	}
}
