package checksum

import "fmt"

// Outcome is the immutable result of one digest attempt. It holds
// either a hex digest or an *Error, never both and never neither. Build
// one with Success or Failure; the zero Outcome reads as a failure.
type Outcome struct {
	value string
	ok    bool
	err   *Error
}

var errNoOutcome = &Error{
	Kind:   IoFailure,
	Detail: "no digest was computed",
}

// Success wraps a hex digest.
func Success(hexDigest string) Outcome {
	return Outcome{value: hexDigest, ok: true}
}

// Failure wraps err. A non-*Error is treated as an IoFailure; a nil err
// still produces a failed outcome.
func Failure(err error) Outcome {
	switch e := err.(type) { //nolint:errorlint // exact type wanted
	case *Error:
		if e != nil {
			return Outcome{err: e}
		}
	case nil:
	default:
		return Outcome{err: &Error{Kind: IoFailure, Err: err}}
	}

	return Outcome{err: errNoOutcome}
}

// Succeeded reports whether the digest was computed.
func (o Outcome) Succeeded() bool {
	return o.ok
}

// Value returns the hex digest; ok is false for a failed outcome.
func (o Outcome) Value() (string, bool) {
	if !o.ok {
		return "", false
	}

	return o.value, true
}

// ErrorMessage returns the failure text; ok is false on success.
func (o Outcome) ErrorMessage() (string, bool) {
	if o.ok {
		return "", false
	}

	return o.failure().Error(), true
}

// Err returns the failure as an *Error, or nil on success.
func (o Outcome) Err() error {
	if o.ok {
		return nil
	}

	return o.failure()
}

// Kind returns the failure kind, or 0 on success.
func (o Outcome) Kind() Kind {
	if o.ok {
		return 0
	}

	return o.failure().Kind
}

func (o Outcome) failure() *Error {
	if o.err == nil {
		return errNoOutcome
	}

	return o.err
}

func (o Outcome) String() string {
	if !o.ok {
		return fmt.Sprintf("failure: %s", o.failure())
	}

	return o.value
}
