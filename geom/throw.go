package geom

import "github.com/pkg/errors"

// Threading error returns through the ear clipping and contour stitching
// loops would complicate code that is already delicate. Instead the engines
// panic with a typed *Error and the public API recovers, converting the
// panic back into a returned error.

// throw panics with a typed *Error.
func throw(kind Kind, format string, args ...interface{}) {
	panic(errorf(kind, format, args...))
}

// RecoverError converts a recovered panic value back into the *Error it
// carries. Foreign panics are re-raised, with a stack attached if they were
// errors themselves.
func RecoverError(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(*Error); ok {
		return err
	}
	if err, ok := r.(error); ok {
		panic(errors.WithStack(err))
	}
	panic(r)
}
