package acceptor

import (
	"github.com/dialogs/dialog-acceptor/enum"
)

// State of the listening socket
type State int

const (
	StateClosed State = iota
	StateBound
	StateListening
)

var stateNames = enum.New().
	Add(StateClosed, "closed").
	Add(StateBound, "bound").
	Add(StateListening, "listening")

func (s State) String() string {
	return stateNames.Name(s, "unknown")
}
