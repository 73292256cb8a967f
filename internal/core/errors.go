package core

import "fmt"

// NotFoundError reports a user-supplied lookup that resolved to nothing.
// Kind names what was being looked up ("command or category", or
// "subcommand of command 'x'") and Input is the literal user text.
// Non-fatal: the dispatcher turns it into a user-visible message.
type NotFoundError struct {
	Kind  string
	Input string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s named '%s' was found", e.Kind, e.Input)
}
