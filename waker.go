package await

// A Waker is the capability to mark one task runnable again.
//
// Every poll receives the waker of the task driving it; a future that
// suspends hands the waker to a readiness source, such as the timer
// registry, which invokes Wake when the future is worth re-polling.
// Wakers are small values and may be copied freely; holding one never
// implies ownership of the task.
//
// The zero Waker is not bound to any task; waking it panics.
type Waker struct {
	t *task
}

// Wake marks the bound task runnable and enqueues it.
//
// Waking a task that is already enqueued, or has already completed, is
// a no-op; at most one wake-up is pending per task at a time.
//
// One should only call Wake from code running on the task's executor.
func (w Waker) Wake() {
	if w.t == nil {
		panic("await: Wake on a zero Waker")
	}
	w.t.wake()
}

// Executor returns the executor that owns the bound task.
//
// It is how futures reach shared facilities, such as the timer registry
// and [Spawn], without any ambient state.
func (w Waker) Executor() *Executor {
	if w.t == nil {
		panic("await: Executor on a zero Waker")
	}
	return w.t.executor
}
