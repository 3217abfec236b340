package logger

import "errors"

// Errors behind a false result from the logging calls. Use errors.Is on
// the value returned by (*Logger).Err.
var (
	ErrInvalidLevel   = errors.New("invalid level")
	ErrFilteredOut    = errors.New("level requirement not met")
	ErrMissingMessage = errors.New("message not passed")
	ErrWrite          = errors.New("write failed")
)

// Diagnostic messages the logger emits about its own operation.
const (
	msgInvalidLevel   = "Invalid level passed."
	msgFilteredOut    = "Level requirement not met."
	msgMissingMessage = "Message not passed."
	msgNoMessage      = "Message was not passed."
)
