package signals

// Derive1 создает производный узел от одного входа. Функция fn должна быть
// чистой: она пересчитывается при каждом обновлении входа.
func Derive1[T any, A any](a *Signal[A], fn func(A) T) *Signal[T] {
	g := a.g
	g.mu.Lock()
	defer g.mu.Unlock()

	s := &Signal[T]{g: g}
	s.compute = func() T { return fn(a.val) }
	s.val = s.compute()
	s.id = g.addDerived(s, a.id)
	return s
}

// Derive2 создает производный узел от двух входов.
func Derive2[T any, A any, B any](a *Signal[A], b *Signal[B], fn func(A, B) T) *Signal[T] {
	g := a.g
	sameGraph(g, b.g)
	g.mu.Lock()
	defer g.mu.Unlock()

	s := &Signal[T]{g: g}
	s.compute = func() T { return fn(a.val, b.val) }
	s.val = s.compute()
	s.id = g.addDerived(s, a.id, b.id)
	return s
}

// Derive3 создает производный узел от трех входов.
func Derive3[T any, A any, B any, C any](
	a *Signal[A], b *Signal[B], c *Signal[C],
	fn func(A, B, C) T,
) *Signal[T] {
	g := a.g
	sameGraph(g, b.g)
	sameGraph(g, c.g)
	g.mu.Lock()
	defer g.mu.Unlock()

	s := &Signal[T]{g: g}
	s.compute = func() T { return fn(a.val, b.val, c.val) }
	s.val = s.compute()
	s.id = g.addDerived(s, a.id, b.id, c.id)
	return s
}

// Derive4 создает производный узел от четырех входов.
func Derive4[T any, A any, B any, C any, D any](
	a *Signal[A], b *Signal[B], c *Signal[C], d *Signal[D],
	fn func(A, B, C, D) T,
) *Signal[T] {
	g := a.g
	sameGraph(g, b.g)
	sameGraph(g, c.g)
	sameGraph(g, d.g)
	g.mu.Lock()
	defer g.mu.Unlock()

	s := &Signal[T]{g: g}
	s.compute = func() T { return fn(a.val, b.val, c.val, d.val) }
	s.val = s.compute()
	s.id = g.addDerived(s, a.id, b.id, c.id, d.id)
	return s
}
