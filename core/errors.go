/*
Package core holds definitions shared by all packages of the layout core,
most notably coded errors.

A coded error carries a numeric code and a message for the layout driver,
while still taking part in Go's error chain. Drivers may branch on the code

	if core.Code(err) == core.ESTRUCTURE {
	    // a frame tree has been handed an inconsistent request
	}

and at the same time test for package-level sentinel errors with errors.Is.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core

import (
	"errors"
	"fmt"
)

// Error codes
const (
	NOERROR    int = 0
	EMISSING   int = 122 // strategy, node or counter does not exist
	EINVALID   int = 123 // illegal argument
	ESTRUCTURE int = 124 // request would corrupt the frame tree
	EINTERNAL  int = 125 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "missing"
	case EINVALID:
		return "invalid"
	case ESTRUCTURE:
		return "structural fault"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type codedError struct {
	error
	code int
	msg  string
}

func (e codedError) Unwrap() error {
	return e.error
}

func (e codedError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("[%d] %v", e.code, e.error)
	}
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.error)
}

func (e codedError) ErrorCode() int {
	return e.code
}

func (e codedError) UserMessage() string {
	return e.msg
}

var _ AppError = codedError{}

// WrapError wraps err, adding a code and a message.
// A nil err is replaced by an error describing the code, so WrapError
// never returns nil.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return codedError{err, code, fmt.Sprintf(format, v...)}
}

// Error creates a coded error.
func Error(code int, format string, v ...interface{}) error {
	return codedError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// Code returns the code associated with an error.
// If err is nil, NOERROR is returned; errors without a code report EINTERNAL.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the message associated with an error, or the text
// for its code if it carries no message. If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) && e.UserMessage() != "" {
		return e.UserMessage()
	}
	return errorText(Code(err))
}
