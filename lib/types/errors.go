package types

import "fmt"

// RangeError reports a type parameter that falls outside the limits
// enforced at construction time. Formatting never raises it; only the
// TypeFactory methods that take parameters do.
type RangeError struct {
	msg string
}

func (e *RangeError) Error() string { return e.msg }

func rangeErrorf(format string, args ...any) *RangeError {
	return &RangeError{msg: fmt.Sprintf(format, args...)}
}
