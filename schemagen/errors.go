package schemagen

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so callers can branch without parsing messages.
type ErrorKind int

const (
	// KindTransport covers connection, DNS and timeout failures from the HTTP client.
	KindTransport ErrorKind = iota + 1
	// KindStatus means the server answered with a status outside the success range.
	KindStatus
	// KindDecode means the response body was not the JSON shape expected.
	KindDecode
	// KindMisuse means the caller invoked an operation on an object that cannot serve it.
	KindMisuse
	// KindConfig means the client is missing configuration needed for the call.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindMisuse:
		return "misuse"
	case KindConfig:
		return "config"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type returned by every operation in this package.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int // set for KindStatus
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schemagen: %s: %v", e.Message, e.Err)
	}
	return "schemagen: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrNoRequestFormat is returned by ExecuteRequest when the Definition has no Req.
var ErrNoRequestFormat = &Error{
	Kind:    KindMisuse,
	Message: "RequestFormat is not defined in the Definition",
}

func transportError(msg string, err error) *Error {
	return &Error{Kind: KindTransport, Message: msg, Err: err}
}

func statusError(msg string, code int) *Error {
	return &Error{Kind: KindStatus, Message: fmt.Sprintf("%s: %d", msg, code), StatusCode: code}
}

func decodeError(msg string, err error) *Error {
	return &Error{Kind: KindDecode, Message: msg, Err: err}
}

func misuseError(msg string) *Error {
	return &Error{Kind: KindMisuse, Message: msg}
}

func configError(msg string) *Error {
	return &Error{Kind: KindConfig, Message: msg}
}

func kindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool { return kindOf(err) == KindTransport }

// IsStatus reports whether err is a non-success HTTP status.
func IsStatus(err error) bool { return kindOf(err) == KindStatus }

// IsDecode reports whether err is a response decoding failure.
func IsDecode(err error) bool { return kindOf(err) == KindDecode }

// IsMisuse reports whether err was caused by calling an operation the receiver cannot serve.
func IsMisuse(err error) bool { return kindOf(err) == KindMisuse }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
