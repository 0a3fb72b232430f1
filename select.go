package await

import "slices"

// A Selected2 is the tagged outcome of [Select2]: Index names the child
// that won, and only the corresponding field is set.
type Selected2[A, B any] struct {
	Index  int
	First  A
	Second B
}

// A Selected3 is the tagged outcome of [Select3].
type Selected3[A, B, C any] struct {
	Index  int
	First  A
	Second B
	Third  C
}

// Select2 returns a [Future] that awaits whichever of fa and fb completes
// first.
//
// On each poll, children are polled in argument order; as soon as one is
// ready, the select completes with that child's tagged result and the
// remaining child is not polled again but canceled, releasing whatever
// it registered.
// If several children would become ready within the same poll pass, the
// first in argument order wins; the tie-break is deterministic.
// A panicking child wins the same way: the panic propagates and the
// remaining children are canceled.
// Ownership of the children passes to the combinator.
func Select2[A, B any](fa Future[A], fb Future[B]) Future[Selected2[A, B]] {
	return &select2Future[A, B]{fa: fa, fb: fb}
}

type select2Future[A, B any] struct {
	fa   Future[A]
	fb   Future[B]
	done bool
}

func (f *select2Future[A, B]) Poll(w Waker) Poll[Selected2[A, B]] {
	if f.done {
		panic("await: future polled after completion")
	}

	if p := f.fa.Poll(w); p.ready {
		f.done = true
		cancel(f.fb)
		return Ready(Selected2[A, B]{Index: 0, First: p.value})
	}
	if p := f.fb.Poll(w); p.ready {
		f.done = true
		cancel(f.fa)
		return Ready(Selected2[A, B]{Index: 1, Second: p.value})
	}
	return Pending[Selected2[A, B]]()
}

// Cancel implements the [Cancelable] interface.
func (f *select2Future[A, B]) Cancel() {
	if f.done {
		return
	}
	f.done = true
	cancel(f.fa)
	cancel(f.fb)
}

// Select3 is [Select2] over three futures.
func Select3[A, B, C any](fa Future[A], fb Future[B], fc Future[C]) Future[Selected3[A, B, C]] {
	inner := Select2(fa, Select2(fb, fc))
	return Map(inner, func(v Selected2[A, Selected2[B, C]]) Selected3[A, B, C] {
		if v.Index == 0 {
			return Selected3[A, B, C]{Index: 0, First: v.First}
		}
		if v.Second.Index == 0 {
			return Selected3[A, B, C]{Index: 1, Second: v.Second.First}
		}
		return Selected3[A, B, C]{Index: 2, Third: v.Second.Second}
	})
}

// A Choice is the tagged outcome of [SelectAll]: the winning child's
// argument position and its value.
type Choice[T any] struct {
	Index int
	Value T
}

// SelectAll returns a [Future] that awaits whichever future in fs
// completes first.
//
// With no arguments, SelectAll never completes.
// The per-poll visiting order, tie-break and cancellation of losers are
// those of [Select2].
func SelectAll[T any](fs ...Future[T]) Future[Choice[T]] {
	return &selectAllFuture[T]{fs: slices.Clone(fs)}
}

type selectAllFuture[T any] struct {
	fs   []Future[T]
	done bool
}

func (f *selectAllFuture[T]) Poll(w Waker) Poll[Choice[T]] {
	if f.done {
		panic("await: future polled after completion")
	}

	for i, child := range f.fs {
		p := child.Poll(w)
		if !p.ready {
			continue
		}
		f.done = true
		for _, loser := range f.fs[i+1:] {
			cancel(loser)
		}
		for _, loser := range f.fs[:i] {
			cancel(loser)
		}
		return Ready(Choice[T]{Index: i, Value: p.value})
	}
	return Pending[Choice[T]]()
}

// Cancel implements the [Cancelable] interface.
func (f *selectAllFuture[T]) Cancel() {
	if f.done {
		return
	}
	f.done = true
	for _, child := range f.fs {
		cancel(child)
	}
}
