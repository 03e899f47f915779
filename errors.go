package fileqa

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The generic codes cover validation, lookup, and unexpected failures. The
// remaining codes classify the two fallible externals: file content
// extraction (EENCRYPTED, ECORRUPT, EUNSUPPORTED, EEMPTY) and the language
// model API (EUNAUTHORIZED, ERATELIMITED, EUNAVAILABLE, EREFUSED, ETIMEOUT).
const (
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EINTERNAL = "internal"

	EENCRYPTED   = "encrypted"
	ECORRUPT     = "corrupt"
	EUNSUPPORTED = "unsupported"
	EEMPTY       = "empty"

	EUNAUTHORIZED = "unauthorized"
	ERATELIMITED  = "rate_limited"
	EUNAVAILABLE  = "unavailable"
	EREFUSED      = "refused"
	ETIMEOUT      = "timeout"
)

// Error represents an application-specific error. Application errors can be
// unwrapped to extract machine-readable codes and human-readable messages.
type Error struct {
	// Code is a machine-readable error code.
	Code string

	// Message is a human-readable message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("fileqa error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
