package await

// Oneshot creates a single-use channel between tasks: a [Sender] that
// accepts exactly one value, and a [Receiver] future that completes with
// it.
//
// It is the simplest way for one task to hand a result to another
// without spawning.
// Both halves must stay on a single [Executor].
func Oneshot[T any]() (*Sender[T], *Receiver[T]) {
	o := new(oneshot[T])
	return &Sender[T]{o: o}, &Receiver[T]{o: o}
}

type oneshot[T any] struct {
	value  T
	sent   bool
	waker  Waker
	armed  bool
	closed bool
}

// A Sender is the sending half of a [Oneshot] pair.
type Sender[T any] struct {
	o *oneshot[T]
}

// Send stores v and wakes the receiver's task if it is awaiting.
// Sending twice panics.
// If the receiver was canceled, the value is discarded.
//
// One should only call Send from a task running on the receiver's
// executor.
func (s *Sender[T]) Send(v T) {
	o := s.o
	if o.sent {
		panic("await: Send on a Sender that already sent")
	}
	o.value = v
	o.sent = true
	if o.armed {
		o.armed = false
		o.waker.Wake()
	}
}

// Sent reports whether a value has been sent.
func (s *Sender[T]) Sent() bool {
	return s.o.sent
}

// Closed reports whether the receiver was canceled.
// A send after that is discarded; callers holding expensive values may
// want to check first.
func (s *Sender[T]) Closed() bool {
	return s.o.closed
}

// A Receiver is the receiving half of a [Oneshot] pair.
// It is a [Future] that completes with the sent value.
type Receiver[T any] struct {
	o    *oneshot[T]
	done bool
}

// Poll implements the [Future] interface.
func (r *Receiver[T]) Poll(w Waker) Poll[T] {
	if r.done {
		panic("await: future polled after completion")
	}
	o := r.o
	if o.sent {
		r.done = true
		return Ready(o.value)
	}
	o.waker = w
	o.armed = true
	return Pending[T]()
}

// Cancel implements the [Cancelable] interface.
// A canceled receiver never wakes; a later Send is discarded.
func (r *Receiver[T]) Cancel() {
	if r.done {
		return
	}
	r.done = true
	r.o.armed = false
	r.o.closed = true
}
