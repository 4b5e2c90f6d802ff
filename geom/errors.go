package geom

import "fmt"

// Kind classifies an engine failure. Failures are ordinary values handed
// back to the caller, who decides whether to retry or discard the input; the
// engines never use them for normal control flow.
type Kind int

const (
	// InsufficientVertices: the input has fewer vertices than the operation
	// requires.
	InsufficientVertices Kind = iota
	// SelfIntersecting: two non-adjacent edges of the input cross.
	SelfIntersecting
	// ZeroLengthEdge: two consecutive input vertices coincide.
	ZeroLengthEdge
	// AlgorithmDivergence: an iteration guard tripped before the algorithm
	// finished. All partial output has been discarded.
	AlgorithmDivergence
)

func (k Kind) String() string {
	switch k {
	case InsufficientVertices:
		return "insufficient vertices"
	case SelfIntersecting:
		return "self-intersecting"
	case ZeroLengthEdge:
		return "zero-length edge"
	case AlgorithmDivergence:
		return "algorithm divergence"
	}
	return "unknown"
}

// Error is a typed engine failure: a machine-checkable kind plus a human
// readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
