package common

import (
	"errors"
	"fmt"
)

type ErrorCode int

const (
	// ContractViolationError indicates that a caller broke a precondition of a
	// plan node, such as handing a logical node a physical trait set. It
	// signals a bug in the optimizer, never bad input data.
	ContractViolationError ErrorCode = iota
	// ArityMismatchError indicates a rewrite supplied the wrong number of
	// children for the node being copied.
	ArityMismatchError
	// FieldIndexOutOfRangeError indicates a reference to a field position that
	// does not exist in the row schema it was resolved against.
	FieldIndexOutOfRangeError
	// DuplicateObjectError indicates an attempt to create a table that already
	// exists in the catalog.
	DuplicateObjectError
	// NoSuchObjectError indicates a request for a table that does not exist in
	// the catalog.
	NoSuchObjectError
	// InvalidConfigError indicates a malformed plan description.
	InvalidConfigError
)

func (ec ErrorCode) String() string {
	switch ec {
	case ContractViolationError:
		return "ContractViolationError"
	case ArityMismatchError:
		return "ArityMismatchError"
	case FieldIndexOutOfRangeError:
		return "FieldIndexOutOfRangeError"
	case DuplicateObjectError:
		return "DuplicateObjectError"
	case NoSuchObjectError:
		return "NoSuchObjectError"
	case InvalidConfigError:
		return "InvalidConfigError"
	}
	return "unknown"
}

// Error is the error type shared by every relopt package.
// It wraps a specific ErrorCode with a detailed message, so callers can branch
// on the code with errors.As instead of matching strings.
type Error struct {
	Code      ErrorCode
	ErrString string
}

func (e Error) Error() string {
	return fmt.Sprintf("err: %s; msg: %s", e.Code.String(), e.ErrString)
}

// IsCode reports whether err, or anything it wraps, is an Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e Error
	return errors.As(err, &e) && e.Code == code
}
