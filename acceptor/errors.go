package acceptor

import (
	"github.com/dialogs/dialog-acceptor/enum"
)

// Kind of a fatal socket failure
type Kind int

const (
	KindBind Kind = iota + 1
	KindListen
	KindAccept
)

var kindMessages = enum.New().
	Add(KindBind, "failed to bind to port").
	Add(KindListen, "failed to listen on socket").
	Add(KindAccept, "failed to grab connection")

func (k Kind) String() string {
	return kindMessages.Name(k, "fatal socket error")
}

// A FatalError stops the acceptor. The process is expected to exit
// with a nonzero status when one reaches the top level.
type FatalError struct {
	Kind Kind
	Err  error
}

func newFatalError(kind Kind, err error) *FatalError {
	return &FatalError{
		Kind: kind,
		Err:  err,
	}
}

func (e *FatalError) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// AsFatal finds a FatalError in the chain of errors wrapped either by
// github.com/pkg/errors or with fmt.Errorf("%w")
func AsFatal(err error) (*FatalError, bool) {

	for err != nil {
		if f, ok := err.(*FatalError); ok {
			return f, true
		}

		switch e := err.(type) {
		case interface{ Cause() error }:
			err = e.Cause()
		case interface{ Unwrap() error }:
			err = e.Unwrap()
		default:
			return nil, false
		}
	}

	return nil, false
}

// IsFatal reports whether err carries a FatalError
func IsFatal(err error) bool {
	_, ok := AsFatal(err)
	return ok
}
