package xgt

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an address string was rejected.
type ErrorKind uint8

const (
	KindMalformedPrefix   ErrorKind = iota + 1 // does not start with %, M or a type character
	KindAmbiguousType                          // zero or several type characters
	KindMalformedSegments                      // more than one comma
	KindInvalidOffset                          // offset is not an integer
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindMalformedPrefix:
		return "malformed prefix"
	case KindAmbiguousType:
		return "ambiguous type"
	case KindMalformedSegments:
		return "malformed segments"
	case KindInvalidOffset:
		return "invalid offset"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against an *AddressError.
var (
	ErrMalformedPrefix   = errors.New("malformed prefix")
	ErrAmbiguousType     = errors.New("ambiguous type")
	ErrMalformedSegments = errors.New("malformed segments")
	ErrInvalidOffset     = errors.New("invalid offset")
)

// AddressError reports a rejected address string.
type AddressError struct {
	Kind   ErrorKind
	Input  string // address as given by the caller
	Detail string
	Err    error // underlying parse error, if any
}

func (e *AddressError) Error() string {
	msg := fmt.Sprintf("bad address %q: %s", e.Input, e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AddressError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *AddressError) Is(target error) bool {
	switch target {
	case ErrMalformedPrefix:
		return e.Kind == KindMalformedPrefix
	case ErrAmbiguousType:
		return e.Kind == KindAmbiguousType
	case ErrMalformedSegments:
		return e.Kind == KindMalformedSegments
	case ErrInvalidOffset:
		return e.Kind == KindInvalidOffset
	}
	return false
}

func newAddressError(kind ErrorKind, input, detail string, err error) *AddressError {
	return &AddressError{Kind: kind, Input: input, Detail: detail, Err: err}
}

// unmanagedDataType is the panic value for a DataType outside the enumeration.
// Reaching it is a programming error, never bad input.
func unmanagedDataType(dt DataType) string {
	return fmt.Sprintf("xgt: unmanaged data type %d", uint8(dt))
}
