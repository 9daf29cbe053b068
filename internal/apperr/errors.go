package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for status-code mapping at the HTTP boundary.
type Kind int

const (
	Validation Kind = iota + 1 // missing or invalid input
	Conflict                   // duplicate email
	Auth                       // unknown account or wrong password
	Store                      // any failure from the document store
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the classification of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}
