// Package failure classifies the errors that can end a page load. Every kind
// is shown to the user the same way; the kind only matters to logs and
// tests.
package failure

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindRuntime is anything we didn't classify, like a malformed payload.
	KindRuntime Kind = iota
	// KindConfig means the credentials are missing from the store.
	KindConfig
	// KindTransport means the request failed or came back with a bad status.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransport:
		return "transport"
	default:
		return "runtime"
	}
}

// Error tags an underlying error with its Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrConfig)
// works without caring about the wrapped error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrRuntime   = &Error{Kind: KindRuntime}
	ErrConfig    = &Error{Kind: KindConfig}
	ErrTransport = &Error{Kind: KindTransport}
)

func Config(err error) error    { return wrap(KindConfig, err) }
func Transport(err error) error { return wrap(KindTransport, err) }
func Runtime(err error) error   { return wrap(KindRuntime, err) }

func wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of the outermost *Error in err's chain, or KindRuntime
// if there isn't one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindRuntime
}

// Message is the single line shown in place of the page content.
func Message(err error) string {
	return fmt.Sprintf("Ett fel inträffade: %s", err)
}
