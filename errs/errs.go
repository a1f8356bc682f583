// Package errs classifies the failures surfaced to users.
//
// Every error leaving the catalog, inspection or transfer code is either one of
// these kinds or passed through untouched; nothing is retried here.
package errs

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// ExitCode is the process status for any surfaced error.
const ExitCode = 2

// Kind names a failure class.
type Kind string

const (
	KindUserInput   Kind = "user_input"
	KindNotFound    Kind = "not_found"
	KindService     Kind = "service"
	KindConcurrency Kind = "concurrency"
)

// Error is a classified failure. Key is only set for KindNotFound.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error

	stack []byte
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindNotFound:
		return fmt.Sprintf("key %s not found.", e.Key)
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Stack is the goroutine stack captured where the error was created.
func (e *Error) Stack() string {
	return string(e.stack)
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err, stack: debug.Stack()}
}

// UserInput reports a missing or malformed argument.
func UserInput(format string, args ...any) *Error {
	return newError(KindUserInput, fmt.Sprintf(format, args...), nil)
}

// NotFound reports a metadata key that does not resolve.
func NotFound(key string) *Error {
	e := newError(KindNotFound, "", nil)
	e.Key = key
	return e
}

// Service wraps a failure of the catalog service or of the transfer mechanism.
// Errors that already carry a kind are returned unchanged, and nil stays nil.
func Service(err error) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	return newError(KindService, "", err)
}

// Servicef is Service with a message naming the failed operation.
func Servicef(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	return newError(KindService, fmt.Sprintf(format, args...), err)
}

// Concurrency reports a rejected duplicate operation.
func Concurrency(format string, args ...any) *Error {
	return newError(KindConcurrency, fmt.Sprintf(format, args...), nil)
}

// KindOf returns the kind of the first classified error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return ""
}

func IsUserInput(err error) bool   { return KindOf(err) == KindUserInput }
func IsNotFound(err error) bool    { return KindOf(err) == KindNotFound }
func IsService(err error) bool     { return KindOf(err) == KindService }
func IsConcurrency(err error) bool { return KindOf(err) == KindConcurrency }

// OneLine is the message shown to users without verbose mode.
func OneLine(err error) string {
	msg := strings.TrimSpace(err.Error())
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return msg
}

// Detail renders the whole wrap chain followed by the captured stack, for verbose mode.
func Detail(err error) string {
	var b strings.Builder

	depth := 0
	for e := err; e != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(&b, "%s%T: %s\n", strings.Repeat("  ", depth), e, e.Error())
		depth++
	}

	var classified *Error
	if errors.As(err, &classified) && len(classified.stack) > 0 {
		b.WriteString("\n")
		b.Write(classified.stack)
	}

	return b.String()
}
