package errors

import (
	"errors"
)

type Code string

const (
	CodeUnsupportedScheme Code = "unsupported_scheme"
	CodeMalformedSalt     Code = "malformed_salt"
	CodeInvalidEncoding   Code = "invalid_encoding"
)

const (
	CodeUnknown     Code = "unknown"
	CodeUnavailable Code = "unavailable"
)

var ErrMissingCrypter = errors.New("cryptshim: crypter is required")

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	if e.Message != "" {
		return e.Message
	}

	if e.Err != nil {
		return e.Err.Error()
	}

	return string(e.Code)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func Wrap(code Code, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsCode(err error, code Code) bool {
	var typed *Error
	if !errors.As(err, &typed) {
		return false
	}
	return typed.Code == code
}

func IsInternalCode(err error) bool {
	return IsCode(err, CodeUnknown) || IsCode(err, CodeUnavailable)
}
