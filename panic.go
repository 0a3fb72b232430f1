package await

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// A PanicError wraps a value recovered from a panicking task, along with
// the stack trace captured at the point of recovery.
//
// It is how panics surface: through a [JoinHandle] outcome for spawned
// tasks, or re-raised from [Run] and [BlockOn] for the driven future.
type PanicError struct {
	value any
	stack []byte
}

func newPanicError(v any) *PanicError {
	if pe, ok := v.(*PanicError); ok {
		// Already captured at an inner task boundary; keep the
		// original stack.
		return pe
	}
	return &PanicError{value: v, stack: debug.Stack()}
}

// Value returns the value the task panicked with.
func (e *PanicError) Value() any {
	return e.value
}

// Stack returns the stack trace captured when the panic was recovered.
func (e *PanicError) Stack() []byte {
	return e.stack
}

func (e *PanicError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "panic: %v", e.value)
	if e.stack != nil {
		b.WriteString("\n\n")
		b.Write(e.stack)
	}
	return b.String()
}

// Unwrap makes a PanicError match, with [errors.Is] and [errors.As],
// the error value its task panicked with, if it panicked with one.
func (e *PanicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
