package seller

import (
	"errors"
	"fmt"
)

// Kind classifies a seller failure so callers can branch without matching
// on error strings.
type Kind int

// Kinds of seller failure. KindUnknown is reported for errors that did not
// come from this package.
const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindOutOfRange
	KindPreconditionFailed
	KindPersistenceFailure
)

var (
	// -- Kinds, matched with errors.Is --
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrOutOfRange         = errors.New("out of range")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrPersistenceFailure = errors.New("persistence failure")

	// -- Resource State --
	ErrSellerNotFound = errors.New("seller not found")
	ErrEmailExists    = errors.New("seller email already registered")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindOutOfRange:
		return "out_of_range"
	case KindPreconditionFailed:
		return "precondition_failed"
	case KindPersistenceFailure:
		return "persistence_failure"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindOutOfRange:
		return ErrOutOfRange
	case KindPreconditionFailed:
		return ErrPreconditionFailed
	case KindPersistenceFailure:
		return ErrPersistenceFailure
	default:
		return nil
	}
}

// Error is the tagged error returned by every operation in this package.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

func wrapError(kind Kind, op, msg string, err error) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg, Err: err}
}
