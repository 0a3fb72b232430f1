package await

import "slices"

// Semaphore provides a way to bound asynchronous access to a resource.
// The callers can request access with a given weight.
//
// Waiters are granted access in FIFO order.
// A Semaphore must not be shared by more than one [Executor].
type Semaphore struct {
	size    int64
	cur     int64
	waiters []*semWaiter
}

type semWaiter struct {
	n     int64 // zero once granted
	waker Waker
}

// NewSemaphore creates a new weighted semaphore with the given maximum
// combined weight.
func NewSemaphore(n int64) *Semaphore {
	return &Semaphore{size: n}
}

// Acquire returns a [Future] that completes once a weight of n has been
// acquired from the semaphore.
//
// A weight greater than the semaphore's size can never be acquired; such
// a future stays pending forever.
// Canceling the future removes its waiter, or releases the weight back
// if it had already been granted but not yet observed.
func (s *Semaphore) Acquire(n int64) Future[struct{}] {
	if n < 0 {
		panic("await(Semaphore): negative weight")
	}
	return &acquireFuture{s: s, n: n}
}

type acquireFuture struct {
	s    *Semaphore
	n    int64
	w    *semWaiter
	done bool
}

func (f *acquireFuture) Poll(w Waker) Poll[struct{}] {
	if f.done {
		panic("await: future polled after completion")
	}
	s := f.s

	if f.w == nil {
		if s.size-s.cur >= f.n && len(s.waiters) == 0 {
			s.cur += f.n
			f.done = true
			return Ready(struct{}{})
		}
		if f.n > s.size {
			return Pending[struct{}]() // Impossible to succeed.
		}
		f.w = &semWaiter{n: f.n, waker: w}
		s.waiters = append(s.waiters, f.w)
		return Pending[struct{}]()
	}

	if f.w.n == 0 {
		// Granted by a Release.
		f.done = true
		f.w = nil
		return Ready(struct{}{})
	}

	f.w.waker = w
	return Pending[struct{}]()
}

// Cancel implements the [Cancelable] interface.
func (f *acquireFuture) Cancel() {
	if f.done {
		return
	}
	f.done = true
	if f.w == nil {
		return
	}
	if f.w.n != 0 {
		f.s.removeWaiter(f.w)
	} else {
		// Granted but never observed; give the weight back.
		f.s.Release(f.n)
	}
	f.w = nil
}

// TryAcquire acquires the semaphore with a weight of n without
// suspending. On success, it returns true.
// On failure, it returns false and leaves the semaphore unchanged.
func (s *Semaphore) TryAcquire(n int64) bool {
	if n < 0 {
		panic("await(Semaphore): negative weight")
	}
	if s.size-s.cur < n || len(s.waiters) != 0 {
		return false
	}
	s.cur += n
	return true
}

// Release releases the semaphore with a weight of n, waking waiters that
// now fit, in FIFO order.
//
// One should only call Release from a task running on the semaphore's
// executor.
func (s *Semaphore) Release(n int64) {
	if n < 0 {
		panic("await(Semaphore): negative weight")
	}
	s.cur -= n
	if s.cur < 0 {
		panic("await(Semaphore): released more than held")
	}
	s.notifyWaiters()
}

func (s *Semaphore) notifyWaiters() {
	i := 0
	for ; i < len(s.waiters); i++ {
		w := s.waiters[i]
		if s.size-s.cur < w.n {
			break
		}
		s.cur += w.n
		w.n = 0
		w.waker.Wake()
	}
	s.waiters = slices.Delete(s.waiters, 0, i)
}

func (s *Semaphore) removeWaiter(w *semWaiter) {
	if i := slices.Index(s.waiters, w); i != -1 {
		s.waiters = slices.Delete(s.waiters, i, i+1)
	}
}
