// Package await is a library for asynchronous programming built around
// explicitly polled futures.
//
// Since Go has already done a great job in bringing green/virtual threads
// into life, this library only implements a single-threaded [Executor] type,
// which some refer to as an async runtime.
// One can create as many executors as they like.
//
// # Futures
//
// A [Future] is a value describing a suspended computation.
// Futures are lazy: constructing one does no work; work happens only while
// the future is being polled.
// A future is polled repeatedly until it reports completion.
// Polling a future that has already completed is a programming error and
// panics.
//
// A poll that does not complete must have arranged for the provided [Waker]
// to be invoked when the future is worth polling again.
// A future that returns pending without arming its waker stalls forever.
// This is a caller obligation; the executor cannot detect it.
//
// # Scheduling
//
// An [Executor] owns a FIFO queue of runnable tasks and drives each of them
// by polling its future.
// It is done in a single-threaded manner.
// If one task blocks, no other tasks can run.
// The best practice is not to block; a future suspends only by returning
// pending from its poll.
//
// Two tasks that become runnable at the same time are resumed in the order
// they were enqueued.
// When the queue is emptied and the driven future has not yet completed,
// the executor advances its [Clock] to the earliest pending timer deadline
// and fires the timers due at that instant, in the order they were
// registered.
//
// An Executor and everything scheduled on it must not be shared across
// goroutines.
//
// # Composition
//
// [Join2], [Join3], [Join4] and [JoinAll] combine futures by awaiting all
// of them; [Select2], [Select3] and [SelectAll] by awaiting whichever
// completes first.
// Within one poll of a combinator, children are visited in argument order,
// which makes the interleaving, and the select tie-break among
// simultaneously ready children, deterministic.
// Children abandoned by a select are canceled: any resources they
// registered, such as timer entries, are released.
//
// # Spawning
//
// [Spawn] detaches a future into an independently scheduled task and
// returns a [JoinHandle] for observing its outcome.
// Discarding the handle does not cancel the task; spawned tasks run to
// completion on their own.
//
// # Panic Propagation
//
// A panic inside a polled future is caught at the task boundary and never
// terminates the executor loop.
// For a spawned task, the panic is delivered through its [JoinHandle] as
// a [Result] carrying a [PanicError].
// For the future driven by [Run] or [BlockOn], the panic is re-raised from
// that call.
// Panics are never silently swallowed.
package await
