package await

import (
	"slices"
	"sort"
	"time"
)

// A timerEntry is one pending wake-up, owned by the timer registry.
// Entries are ordered by deadline, then by registration order, so that
// timers sharing a deadline fire exactly in the order they were armed.
type timerEntry struct {
	deadline time.Time
	seq      uint64
	waker    Waker
	fired    bool
}

func (en *timerEntry) less(other *timerEntry) bool {
	if !en.deadline.Equal(other.deadline) {
		return en.deadline.Before(other.deadline)
	}
	return en.seq < other.seq
}

type timerRegistry struct {
	entries []*timerEntry
	seq     uint64
}

func (r *timerRegistry) add(deadline time.Time, w Waker) *timerEntry {
	r.seq++
	en := &timerEntry{deadline: deadline, seq: r.seq, waker: w}
	i := sort.Search(len(r.entries), func(i int) bool {
		return en.less(r.entries[i])
	})
	r.entries = slices.Insert(r.entries, i, en)
	return en
}

func (r *timerRegistry) remove(en *timerEntry) {
	if i := slices.Index(r.entries, en); i != -1 {
		r.entries = slices.Delete(r.entries, i, i+1)
	}
}

func (r *timerRegistry) peek() (*timerEntry, bool) {
	if len(r.entries) == 0 {
		return nil, false
	}
	return r.entries[0], true
}

func (r *timerRegistry) pop() {
	r.entries = slices.Delete(r.entries, 0, 1)
}

func (r *timerRegistry) clear() {
	clear(r.entries)
	r.entries = r.entries[:0]
}

// Sleep returns a [Future] that completes once d has elapsed.
//
// The first poll computes the absolute deadline from the executor's
// [Clock] and registers a timer entry; the future then stays pending
// until the deadline has passed and the executor has fired the entry.
// Canceling the future before it fires removes the entry, leaving no
// dangling wake-up behind.
func Sleep(d time.Duration) Future[struct{}] {
	return &sleepFuture{d: d}
}

type sleepFuture struct {
	d     time.Duration
	exec  *Executor
	entry *timerEntry
	done  bool
}

func (f *sleepFuture) Poll(w Waker) Poll[struct{}] {
	if f.done {
		panic("await: future polled after completion")
	}

	if f.entry == nil {
		e := w.Executor()
		f.exec = e
		f.entry = e.timers.add(e.Clock().Now().Add(f.d), w)
		return Pending[struct{}]()
	}

	if f.entry.fired {
		f.done = true
		f.entry = nil
		return Ready(struct{}{})
	}

	// Re-polled before the deadline; keep the entry armed with the
	// latest waker.
	f.entry.waker = w
	return Pending[struct{}]()
}

// Cancel implements the [Cancelable] interface.
func (f *sleepFuture) Cancel() {
	if f.done {
		return
	}
	f.done = true
	if f.entry != nil && !f.entry.fired {
		f.exec.timers.remove(f.entry)
	}
	f.entry = nil
}
