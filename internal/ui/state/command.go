package state

// Command is one classified input for the navigator.
type Command int

const (
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandEnter
	CommandBack
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandMoveUp:
		return "move-up"
	case CommandMoveDown:
		return "move-down"
	case CommandEnter:
		return "enter"
	case CommandBack:
		return "back"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// Status describes whether a session is still running after a command.
type Status int

const (
	StatusBrowsing Status = iota
	StatusSelected
	StatusQuit
)

// Result is the outcome of applying a command. Payload is only meaningful
// when Status is StatusSelected.
type Result struct {
	Status  Status
	Payload string
}

// Done reports whether the session has terminated.
func (r Result) Done() bool {
	return r.Status != StatusBrowsing
}
