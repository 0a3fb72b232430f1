package await

import "slices"

// A WaitGroup is a counter whose waiters complete when it reaches zero.
//
// Calling Add or Done from a task updates the counter and, when it
// becomes zero, wakes every task awaiting a [WaitGroup.Wait] future.
// A WaitGroup must not be shared by more than one [Executor].
type WaitGroup struct {
	n       int
	waiters []*wgWaiter
}

type wgWaiter struct {
	waker Waker
	ready bool
}

// Add adds delta, which may be negative, to the counter.
// If the counter becomes zero, Add wakes every waiter.
// If the counter goes negative, Add panics.
func (wg *WaitGroup) Add(delta int) {
	wg.n += delta
	if wg.n < 0 {
		panic("await(WaitGroup): negative counter")
	}
	if wg.n == 0 && delta != 0 {
		waiters := wg.waiters
		wg.waiters = nil
		for _, w := range waiters {
			w.ready = true
			w.waker.Wake()
		}
	}
}

// Done decrements the counter by one.
func (wg *WaitGroup) Done() {
	wg.Add(-1)
}

// Wait returns a [Future] that completes once the counter is zero.
func (wg *WaitGroup) Wait() Future[struct{}] {
	return &waitFuture{wg: wg}
}

type waitFuture struct {
	wg   *WaitGroup
	w    *wgWaiter
	done bool
}

func (f *waitFuture) Poll(w Waker) Poll[struct{}] {
	if f.done {
		panic("await: future polled after completion")
	}

	if f.w == nil {
		if f.wg.n == 0 {
			f.done = true
			return Ready(struct{}{})
		}
		f.w = &wgWaiter{waker: w}
		f.wg.waiters = append(f.wg.waiters, f.w)
		return Pending[struct{}]()
	}

	if f.w.ready {
		f.done = true
		f.w = nil
		return Ready(struct{}{})
	}

	f.w.waker = w
	return Pending[struct{}]()
}

// Cancel implements the [Cancelable] interface.
func (f *waitFuture) Cancel() {
	if f.done {
		return
	}
	f.done = true
	if f.w != nil && !f.w.ready {
		if i := slices.Index(f.wg.waiters, f.w); i != -1 {
			f.wg.waiters = slices.Delete(f.wg.waiters, i, i+1)
		}
	}
	f.w = nil
}
