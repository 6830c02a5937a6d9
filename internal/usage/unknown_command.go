package usage

import "fmt"

func UnknownCommand(command string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("chatmux: '%s' is not a chatmux command. See 'chatmux help'.", command),
	}
}
