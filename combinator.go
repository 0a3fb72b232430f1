package await

// Map returns a [Future] that completes with fn applied to f's value.
//
// fn runs inside the poll that observes f's completion.
// Ownership of f passes to the combinator.
func Map[A, B any](f Future[A], fn func(A) B) Future[B] {
	return &mapFuture[A, B]{f: f, fn: fn}
}

type mapFuture[A, B any] struct {
	f    Future[A]
	fn   func(A) B
	done bool
}

func (m *mapFuture[A, B]) Poll(w Waker) Poll[B] {
	if m.done {
		panic("await: future polled after completion")
	}
	p := m.f.Poll(w)
	if !p.ready {
		return Pending[B]()
	}
	m.done = true
	return Ready(m.fn(p.value))
}

// Cancel implements the [Cancelable] interface.
func (m *mapFuture[A, B]) Cancel() {
	if m.done {
		return
	}
	m.done = true
	cancel(m.f)
}

// Then returns a [Future] that first awaits f, then awaits the future
// fn constructs from f's value, and completes with the latter's value.
//
// The second stage is constructed, and polled for the first time, inside
// the poll that observes f's completion.
// Ownership of both stages stays with the combinator.
func Then[A, B any](f Future[A], fn func(A) Future[B]) Future[B] {
	return &thenFuture[A, B]{first: f, fn: fn}
}

type thenFuture[A, B any] struct {
	first  Future[A]
	fn     func(A) Future[B]
	second Future[B]
	done   bool
}

func (t *thenFuture[A, B]) Poll(w Waker) Poll[B] {
	if t.done {
		panic("await: future polled after completion")
	}

	if t.second == nil {
		p := t.first.Poll(w)
		if !p.ready {
			return Pending[B]()
		}
		t.first = nil
		t.second = t.fn(p.value)
		if t.second == nil {
			panic("await: Then constructed a nil Future")
		}
	}

	p := t.second.Poll(w)
	if !p.ready {
		return Pending[B]()
	}
	t.done = true
	return Ready(p.value)
}

// Cancel implements the [Cancelable] interface.
func (t *thenFuture[A, B]) Cancel() {
	if t.done {
		return
	}
	t.done = true
	if t.second != nil {
		cancel(t.second)
		t.second = nil
		return
	}
	cancel(t.first)
	t.first = nil
}
