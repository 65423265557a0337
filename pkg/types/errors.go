package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindSyntax   ErrKind = iota // malformed path (non-integer or empty segment)
	ErrKindRange                   // child index outside [0, len(children))
	ErrKindFormat                  // structured data that does not describe a tree
	ErrKindNotFound                // missing file or empty tree
	ErrKindType                    // stored value cannot be represented as the element type
	ErrKindState                   // operation invalid for the current graph (cycles, limits)
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindSyntax:
		return "syntax"
	case ErrKindRange:
		return "range"
	case ErrKindFormat:
		return "format"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindType:
		return "type"
	case ErrKindState:
		return "state"
	default:
		return fmt.Sprintf("UNKNOWN_KIND_%d", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by the tree engines.
var (
	// ErrInvalidPath indicates a path segment that is not a non-empty integer.
	ErrInvalidPath = &Error{Kind: ErrKindSyntax, Msg: "invalid path"}
	// ErrIndexOutOfRange indicates a path index that has no matching child.
	ErrIndexOutOfRange = &Error{Kind: ErrKindRange, Msg: "index out of range"}
	// ErrMalformed indicates structured input that cannot be turned into a tree.
	ErrMalformed = &Error{Kind: ErrKindFormat, Msg: "malformed tree data"}
	// ErrNotFound indicates a missing file or an empty tree.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrTypeMismatch indicates a value that does not fit the tree's element type.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "value has different type"}
	// ErrCycle indicates a link that would make a node its own ancestor.
	ErrCycle = &Error{Kind: ErrKindState, Msg: "node would become its own ancestor"}
	// ErrLimit indicates a tree that exceeds configured limits.
	ErrLimit = &Error{Kind: ErrKindState, Msg: "tree limit exceeded"}
)

// Errorf builds a typed error of the given kind with a formatted message.
// The cause may be nil.
func Errorf(kind ErrKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// IsKind reports whether err's chain contains an *Error of the given kind.
func IsKind(err error, kind ErrKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
