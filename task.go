package await

const (
	flagEnqueued = 1 << iota
	flagDone
	flagPanicked
)

// A task is an executor-owned unit wrapping one future plus scheduling
// state. The future itself is held behind the type-erased step and stop
// functions so that tasks of different result types can share one queue.
//
// A task is in exactly one of four states: runnable (enqueued), suspended
// (neither enqueued nor done), completed, or panicked.
type task struct {
	executor *Executor
	step     func(Waker) bool // polls the owned future; reports completion
	stop     func()           // cancels what remains of the owned future
	flag     uint8
	panicv   *PanicError
	waiter   Waker // the task awaiting this one's JoinHandle, if any
	waiting  bool
}

func (t *task) done() bool {
	return t.flag&flagDone != 0
}

func (t *task) wake() {
	flag := t.flag
	if flag&(flagDone|flagEnqueued) != 0 {
		return
	}
	t.flag = flag | flagEnqueued
	t.executor.enqueue(t)
}

// poll drives the task's future one step, catching any panic at the task
// boundary so that it can never terminate the executor loop.
func (t *task) poll() {
	t.flag &^= flagEnqueued

	if t.flag&flagDone != 0 {
		return
	}

	if !t.protectedStep() {
		return
	}

	t.flag |= flagDone

	if t.flag&flagPanicked != 0 {
		// The panic abandoned the future mid-poll; release whatever
		// the rest of its tree still has registered.
		t.stop()
	}

	if t.waiting {
		t.waiting = false
		t.waiter.Wake()
	}
}

func (t *task) protectedStep() (done bool) {
	defer func() {
		if v := recover(); v != nil {
			t.flag |= flagPanicked
			t.panicv = newPanicError(v)
			done = true
		}
	}()
	return t.step(Waker{t})
}

// cancelTask structurally drops an unfinished task during executor
// teardown.
func (t *task) cancelTask() {
	if t.flag&flagDone != 0 {
		return
	}
	t.flag |= flagDone
	t.stop()
}
