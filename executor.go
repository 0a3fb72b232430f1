package await

// An Executor is the single-threaded driver that advances tasks to
// completion.
//
// When a task is spawned or woken, it is added to an internal FIFO ready
// queue. The executor pops and polls each of them from the queue until
// the queue is emptied; it then advances its [Clock] to the earliest
// pending timer deadline and fires the timers due at that instant, in
// the order they were registered.
//
// An Executor must not be shared across goroutines; everything it
// schedules runs, and is woken, from within its own loop.
// The zero Executor is ready to use.
type Executor struct {
	ready   []*task
	rhead   int
	tasks   []*task
	timers  timerRegistry
	clock   Clock
	running bool
}

// NewExecutor creates a new [Executor].
func NewExecutor() *Executor {
	return new(Executor)
}

// SetClock sets the clock that drives e's timer registry.
//
// One should only call SetClock before any task is spawned on e.
func (e *Executor) SetClock(c Clock) {
	if c == nil {
		panic("await: SetClock called with nil Clock")
	}
	e.clock = c
}

// Clock returns the clock that drives e's timer registry.
func (e *Executor) Clock() Clock {
	if e.clock == nil {
		e.clock = systemClock{}
	}
	return e.clock
}

func (e *Executor) enqueue(t *task) {
	e.ready = append(e.ready, t)
}

func (e *Executor) adopt(t *task) {
	e.tasks = append(e.tasks, t)
	t.wake()
}

func (e *Executor) dequeue() *task {
	t := e.ready[e.rhead]
	e.ready[e.rhead] = nil
	e.rhead++
	if e.rhead == len(e.ready) {
		e.ready = e.ready[:0]
		e.rhead = 0
	}
	return t
}

// drain polls every runnable task in FIFO order until none remains.
// Tasks woken while draining are serviced in the same pass.
func (e *Executor) drain() {
	for e.rhead < len(e.ready) {
		e.dequeue().poll()
	}
}

// advance blocks on the clock until the earliest pending timer deadline,
// then fires every entry due at that instant, in registration order.
// It reports whether there was any timer to wait for.
func (e *Executor) advance() bool {
	next, ok := e.timers.peek()
	if !ok {
		return false
	}

	clock := e.Clock()
	now := clock.Now()
	if d := next.deadline.Sub(now); d > 0 {
		clock.Sleep(d)
		now = clock.Now()
	}

	for {
		next, ok := e.timers.peek()
		if !ok || next.deadline.After(now) {
			break
		}
		e.timers.pop()
		next.fired = true
		next.waker.Wake()
	}

	return true
}

// shutdown structurally cancels whatever tasks are still unfinished and
// resets the executor for reuse.
func (e *Executor) shutdown() {
	tasks := e.tasks
	e.tasks = nil

	for _, t := range tasks {
		t.cancelTask()
	}

	e.ready = e.ready[:0]
	e.rhead = 0
	e.timers.clear()
}

// Run drives e until f completes and returns f's value.
//
// When f completes, tasks spawned on e that are still in flight are
// canceled: their future trees release whatever they registered, the way
// select losers do.
// If f's task, or any future it drives inline, panics, Run panics with
// a [*PanicError].
// If at any point no task is runnable and no timer is pending while f is
// still incomplete, every task is stalled forever and Run panics.
//
// Run must not be called reentrantly.
func Run[T any](e *Executor, f Future[T]) T {
	if e.running {
		panic("await: Run called reentrantly")
	}
	e.running = true
	defer func() { e.running = false }()

	h := Spawn(e, f)
	root := h.task

	for {
		e.drain()
		if root.done() {
			break
		}
		if !e.advance() {
			panic("await: deadlock: no runnable tasks and no pending timers")
		}
	}

	e.shutdown()

	if root.flag&flagPanicked != 0 {
		panic(root.panicv)
	}
	return h.value
}

// BlockOn creates a fresh [Executor], drives f on it until completion and
// returns f's value.
// It is the entry point for use at a program's top level.
func BlockOn[T any](f Future[T]) T {
	return Run(NewExecutor(), f)
}
