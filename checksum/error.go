package checksum

import (
	"errors"
	"fmt"
)

// Kind categorizes why a digest attempt failed.
type Kind int

// Failure kinds.
const (
	// AlgorithmUnavailable means the registry has no such hash.
	AlgorithmUnavailable Kind = iota + 1
	// SourceUnavailable means the path is missing or not a regular file.
	SourceUnavailable
	// AccessDenied means the path exists but cannot be read.
	AccessDenied
	// IoFailure means reading failed after the file was opened.
	IoFailure
)

func (k Kind) String() string {
	switch k {
	case AlgorithmUnavailable:
		return "algorithm unavailable"
	case SourceUnavailable:
		return "source unavailable"
	case AccessDenied:
		return "access denied"
	case IoFailure:
		return "i/o failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrAlgorithmUnavailable = errors.New(AlgorithmUnavailable.String())
	ErrSourceUnavailable    = errors.New(SourceUnavailable.String())
	ErrAccessDenied         = errors.New(AccessDenied.String())
	ErrIoFailure            = errors.New(IoFailure.String())
)

// Error describes a failed digest attempt.
type Error struct {
	Kind      Kind
	Path      string
	Algorithm Algorithm
	// Detail is a short human description, e.g. "no such file".
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := "computing"

	switch {
	case e.Kind == AlgorithmUnavailable:
		msg += fmt.Sprintf(" %q", string(e.Algorithm))
	case e.Algorithm != "":
		msg += " " + string(e.Algorithm)
	}

	msg += " digest"
	if e.Path != "" {
		msg += " of " + e.Path
	}

	msg += ": " + e.Kind.String()

	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k Kind) sentinel() error {
	switch k {
	case AlgorithmUnavailable:
		return ErrAlgorithmUnavailable
	case SourceUnavailable:
		return ErrSourceUnavailable
	case AccessDenied:
		return ErrAccessDenied
	case IoFailure:
		return ErrIoFailure
	default:
		return nil
	}
}
