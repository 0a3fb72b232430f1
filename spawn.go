package await

// Spawn wraps f in a new task, enqueues it runnable on e, and returns
// a handle to its eventual outcome.
// Spawn never suspends; the spawned task proceeds interleaved with
// whatever called it.
//
// Discarding the handle does not cancel the task (fire-and-forget).
// Ownership of f passes to the executor; the caller must not poll it.
func Spawn[T any](e *Executor, f Future[T]) *JoinHandle[T] {
	if f == nil {
		panic("await: Spawn called with nil Future")
	}

	h := &JoinHandle[T]{}
	t := &task{executor: e}

	t.step = func(w Waker) bool {
		p := f.Poll(w)
		if !p.ready {
			return false
		}
		h.value = p.value
		return true
	}
	t.stop = func() { cancel(f) }

	h.task = t
	e.adopt(t)
	return h
}

// A JoinHandle observes the outcome of a spawned task.
//
// It is a [Future] that stays pending until the task completes or
// panics, then yields the outcome exactly once.
// A JoinHandle must be awaited by at most one task, and must not be
// shared with another [Executor].
type JoinHandle[T any] struct {
	task  *task
	value T
	done  bool
}

// Poll implements the [Future] interface.
func (h *JoinHandle[T]) Poll(w Waker) Poll[Result[T]] {
	if h.done {
		panic("await: future polled after completion")
	}

	t := h.task
	if !t.done() {
		t.waiter = w
		t.waiting = true
		return Pending[Result[T]]()
	}

	h.done = true
	if t.flag&flagPanicked != 0 {
		return Ready(Result[T]{err: t.panicv})
	}
	return Ready(Result[T]{value: h.value})
}

// Cancel implements the [Cancelable] interface.
// It detaches the handle from the task; the task itself keeps running
// (fire-and-forget).
func (h *JoinHandle[T]) Cancel() {
	if h.done {
		return
	}
	h.done = true
	h.task.waiting = false
}

// A Result is the outcome of a spawned task: its value, or the panic
// that ended it.
type Result[T any] struct {
	value T
	err   *PanicError
}

// Value returns the task's value.
// The value is only meaningful when the task did not panic.
func (r Result[T]) Value() T {
	return r.value
}

// Panicked reports whether the task ended by panicking.
func (r Result[T]) Panicked() bool {
	return r.err != nil
}

// Err returns the [*PanicError] that ended the task, or nil if the task
// completed.
func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}
