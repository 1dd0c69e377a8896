package common

import "fmt"

// Assert checks a condition and panics if it is false.
//
// Assertions guard invariants: truths about the system state that must always
// hold. A broken invariant inside the optimizer means some rule or rewrite has
// a bug, and continuing would only produce a corrupt plan further away from
// the cause.
//
// WHEN TO USE:
// - Checking for "impossible" conditions (e.g., switch default cases that shouldn't be reached).
// - Verifying internal data structure integrity.
//
// WHEN NOT TO USE:
// - Validating user-supplied input, such as a plan file (return an error instead).
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// Require is Assert for contract violations that callers may want to
// identify. The panic value is an Error carrying code, so a recover site can
// inspect it with errors.As.
func Require(cond bool, code ErrorCode, format string, args ...any) {
	if !cond {
		panic(Error{Code: code, ErrString: fmt.Sprintf(format, args...)})
	}
}

// RecoverError runs f and returns the Error it panicked with, if any. Panics
// with any other value are re-raised.
func RecoverError(f func()) (err *Error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(Error); ok {
			err = &e
			return
		}
		panic(r)
	}()
	f()
	return nil
}

