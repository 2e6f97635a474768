/*
Package contract signals programmer errors in the container packages.

A contract violation (out-of-range index, pop from an empty container, a
position from a foreign container, …) is not a recoverable condition. The
container operations panic with an error value that is an assertion failure
in the sense of github.com/cockroachdb/errors and carries the ErrViolation
mark, so that tests and callers which recover can tell programmer errors
apart from environmental ones.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package contract

import (
	"github.com/cockroachdb/errors"
)

// Error is an error type allowing constant error values.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrViolation marks every panic value raised by Panicf.
const ErrViolation = Error("contract violation")

// Violation creates a marked assertion-failure error.
func Violation(format string, args ...interface{}) error {
	return violationf(1, format, args...)
}

// violationf reports the caller depth frames above its own caller as the
// origin of the violation.
func violationf(depth int, format string, args ...interface{}) error {
	err := errors.AssertionFailedWithDepthf(depth+1, format, args...)
	return errors.Mark(err, ErrViolation)
}

// Panicf panics with a contract violation.
func Panicf(format string, args ...interface{}) {
	panic(violationf(1, format, args...))
}

// Require panics with a contract violation if condition does not hold.
// Use it where building the message is cheap; hot paths should test the
// condition themselves and call Panicf.
func Require(condition bool, msg string) {
	if !condition {
		panic(violationf(1, "%s", msg))
	}
}

// IsViolation reports whether r, typically the result of recover(), is a
// contract violation raised by this package.
func IsViolation(r interface{}) bool {
	err, ok := r.(error)
	if !ok || err == nil {
		return false
	}
	return errors.Is(err, ErrViolation)
}
