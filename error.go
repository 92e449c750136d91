package gles1

import "fmt"

// Enum is the wire type every ALL_CAPS constant in this package is
// expressed in.
type Enum = uint32

// ValidationError describes why an entry point rejected its arguments
// without mutating state. It is never returned by the public API (the
// fixed-pipeline calling convention latches a single Enum error instead,
// see GetError) but is what gets logged and is the concrete type the
// single-latch error code is derived from.
type ValidationError struct {
	Call    string
	Code    Enum
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Call, e.Message)
}

func newError(call string, code Enum, format string, args ...any) *ValidationError {
	return &ValidationError{Call: call, Code: code, Message: fmt.Sprintf(format, args...)}
}

// latch implements the single-latch error model (§7): the first error
// since the last GetError call is retained, later ones are dropped.
type latch struct {
	code Enum
}

func (l *latch) set(err *ValidationError) {
	if l.code == NO_ERROR {
		l.code = err.Code
	}
	Logger().Warn("gles1 validation error", "call", err.Call, "message", err.Message)
}

// get returns and clears the latched error code.
func (l *latch) get() Enum {
	code := l.code
	l.code = NO_ERROR
	return code
}
