package await

import "slices"

// A Pair holds the results of [Join2].
type Pair[A, B any] struct {
	First  A
	Second B
}

// A Triple holds the results of [Join3].
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// A Quad holds the results of [Join4].
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Join2 returns a [Future] that awaits both fa and fb and completes with
// both results.
//
// On each poll, every not-yet-ready child is polled exactly once, in
// argument order; a child that already completed is not polled again.
// A panicking child propagates immediately, without the later children
// of that round being polled.
// Ownership of the children passes to the combinator.
func Join2[A, B any](fa Future[A], fb Future[B]) Future[Pair[A, B]] {
	return &join2Future[A, B]{fa: fa, fb: fb}
}

type join2Future[A, B any] struct {
	fa   Future[A]
	fb   Future[B]
	a    A
	b    B
	done bool
}

func (f *join2Future[A, B]) Poll(w Waker) Poll[Pair[A, B]] {
	if f.done {
		panic("await: future polled after completion")
	}

	if f.fa != nil {
		if p := f.fa.Poll(w); p.ready {
			f.a, f.fa = p.value, nil
		}
	}
	if f.fb != nil {
		if p := f.fb.Poll(w); p.ready {
			f.b, f.fb = p.value, nil
		}
	}

	if f.fa == nil && f.fb == nil {
		f.done = true
		return Ready(Pair[A, B]{f.a, f.b})
	}
	return Pending[Pair[A, B]]()
}

// Cancel implements the [Cancelable] interface.
func (f *join2Future[A, B]) Cancel() {
	if f.done {
		return
	}
	f.done = true
	if f.fa != nil {
		cancel(f.fa)
		f.fa = nil
	}
	if f.fb != nil {
		cancel(f.fb)
		f.fb = nil
	}
}

// Join3 is [Join2] over three futures.
func Join3[A, B, C any](fa Future[A], fb Future[B], fc Future[C]) Future[Triple[A, B, C]] {
	inner := Join2(Join2(fa, fb), fc)
	return Map(inner, func(v Pair[Pair[A, B], C]) Triple[A, B, C] {
		return Triple[A, B, C]{v.First.First, v.First.Second, v.Second}
	})
}

// Join4 is [Join2] over four futures.
func Join4[A, B, C, D any](fa Future[A], fb Future[B], fc Future[C], fd Future[D]) Future[Quad[A, B, C, D]] {
	inner := Join2(Join2(fa, fb), Join2(fc, fd))
	return Map(inner, func(v Pair[Pair[A, B], Pair[C, D]]) Quad[A, B, C, D] {
		return Quad[A, B, C, D]{v.First.First, v.First.Second, v.Second.First, v.Second.Second}
	})
}

// JoinAll returns a [Future] that awaits every future in fs and completes
// with all results, in argument order.
//
// With no arguments, JoinAll completes on its first poll with an empty
// slice.
// The per-poll child visiting order and the panic behavior are those of
// [Join2].
func JoinAll[T any](fs ...Future[T]) Future[[]T] {
	f := &joinAllFuture[T]{
		fs:      slices.Clone(fs),
		results: make([]T, len(fs)),
		left:    len(fs),
	}
	return f
}

type joinAllFuture[T any] struct {
	fs      []Future[T]
	results []T
	left    int
	done    bool
}

func (f *joinAllFuture[T]) Poll(w Waker) Poll[[]T] {
	if f.done {
		panic("await: future polled after completion")
	}

	for i, child := range f.fs {
		if child == nil {
			continue
		}
		if p := child.Poll(w); p.ready {
			f.results[i] = p.value
			f.fs[i] = nil
			f.left--
		}
	}

	if f.left == 0 {
		f.done = true
		return Ready(f.results)
	}
	return Pending[[]T]()
}

// Cancel implements the [Cancelable] interface.
func (f *joinAllFuture[T]) Cancel() {
	if f.done {
		return
	}
	f.done = true
	for i, child := range f.fs {
		if child != nil {
			cancel(child)
			f.fs[i] = nil
		}
	}
}
