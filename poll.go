package await

// A Poll is the result of polling a [Future] once: either pending, or
// ready with the future's value.
//
// To create a Poll, use [Ready] or [Pending].
type Poll[T any] struct {
	value T
	ready bool
}

// Ready returns a [Poll] that carries a final value.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{value: v, ready: true}
}

// Pending returns a [Poll] that reports no value yet.
//
// A [Future] returning a pending Poll must have armed the [Waker] it was
// polled with; otherwise it is never polled again.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// Ready reports whether p carries a final value.
func (p Poll[T]) Ready() bool {
	return p.ready
}

// Value returns the value carried by p.
// The value is only meaningful when p is ready.
func (p Poll[T]) Value() T {
	return p.value
}

// A Future is a computation that may need multiple poll attempts before
// producing a value of type T.
//
// Poll attempts to advance the computation.
// A ready result is terminal; polling a future again after it reported
// ready panics.
// A pending result obliges the future to have arranged for w to be invoked
// when it becomes worth re-polling.
//
// A future is exclusively owned by whichever entity is driving it, a task
// or a combinator wrapping it, and must not be shared.
type Future[T any] interface {
	Poll(w Waker) Poll[T]
}

// A FutureFunc is a func that implements the [Future] interface.
type FutureFunc[T any] func(w Waker) Poll[T]

// Poll implements the [Future] interface.
func (f FutureFunc[T]) Poll(w Waker) Poll[T] { return f(w) }

// A Cancelable is a [Future] that registers resources, such as timer
// entries, which must be released when the future is dropped before
// completion.
//
// Combinators cancel the children they abandon, and a task whose future
// panics cancels what remains of its future tree.
// Cancel must be idempotent, and the future must not be polled afterwards.
type Cancelable interface {
	Cancel()
}

// cancel structurally drops f, releasing whatever it registered.
func cancel[T any](f Future[T]) {
	if c, ok := any(f).(Cancelable); ok {
		c.Cancel()
	}
}

// Resolved returns a [Future] that completes on its first poll with v.
func Resolved[T any](v T) Future[T] {
	return &resolvedFuture[T]{value: v}
}

type resolvedFuture[T any] struct {
	value T
	done  bool
}

func (f *resolvedFuture[T]) Poll(Waker) Poll[T] {
	if f.done {
		panic("await: future polled after completion")
	}
	f.done = true
	return Ready(f.value)
}

// Never returns a [Future] that never completes.
//
// Awaiting it arms nothing; a task driving only a Never future stalls, and
// an executor with nothing else to wake reports a deadlock.
func Never[T any]() Future[T] {
	return neverFuture[T]{}
}

type neverFuture[T any] struct{}

func (neverFuture[T]) Poll(Waker) Poll[T] { return Pending[T]() }

// Yield returns a [Future] that reports pending exactly once, waking its
// own task immediately.
// It suspends the running task to the back of the ready queue, giving
// other runnable tasks a chance to run.
func Yield() Future[struct{}] {
	return new(yieldFuture)
}

type yieldFuture struct {
	polled bool
	done   bool
}

func (f *yieldFuture) Poll(w Waker) Poll[struct{}] {
	if f.done {
		panic("await: future polled after completion")
	}
	if !f.polled {
		f.polled = true
		w.Wake()
		return Pending[struct{}]()
	}
	f.done = true
	return Ready(struct{}{})
}
