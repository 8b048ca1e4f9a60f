package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/tonylturner/lsaddr/internal/xgt"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapAddressError wraps address parse errors with user-friendly context
func WrapAddressError(err error, input string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Invalid device address %q", input),
		Reason:  extractAddressReason(err),
		Hint:    addressHint(err),
		Try:     fmt.Sprintf("lsaddr validate %q", input),
		Err:     err,
	}
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "Models need a name and a positive memory_size_bits; log_level is one of silent, error, info, verbose, debug",
		Try:     "lsaddr models --config " + configPath,
		Err:     err,
	}
}

// WrapModelError wraps an unknown controller model selection
func WrapModelError(err error, model string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Unknown controller model %q", model),
		Reason:  err.Error(),
		Hint:    "Model names are case-insensitive; custom models can be added under models: in the config file",
		Try:     "lsaddr models",
		Err:     err,
	}
}

func extractAddressReason(err error) string {
	switch {
	case stderrors.Is(err, xgt.ErrMalformedPrefix):
		return "Address must start with %M, M or a data type character"
	case stderrors.Is(err, xgt.ErrAmbiguousType):
		return "Address must contain exactly one data type character"
	case stderrors.Is(err, xgt.ErrMalformedSegments):
		return "Address may contain at most one comma"
	case stderrors.Is(err, xgt.ErrInvalidOffset):
		return "Offset is not an integer"
	}
	return "Address could not be parsed"
}

func addressHint(err error) string {
	if stderrors.Is(err, xgt.ErrMalformedSegments) || stderrors.Is(err, xgt.ErrInvalidOffset) {
		return "A byte range is written as start,end (e.g. %MB5,8)"
	}
	return "Data types are X (bit), B (byte), W (word) and D (double word), e.g. %MW100"
}
