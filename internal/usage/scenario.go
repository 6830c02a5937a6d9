package usage

import (
	"fmt"
	"strings"
)

// ScenarioNotFound is returned when the named scenario file does not exist.
func ScenarioNotFound(path string) *Error {
	return &Error{
		Kind:    ErrScenarioNotFound,
		Message: fmt.Sprintf("chatmux: scenario '%s' not found", path),
	}
}

// InvalidScenario is returned when a scenario file cannot be parsed or
// its command tree fails to register.
func InvalidScenario(path string, cause error) *Error {
	return &Error{
		Kind:    ErrInvalidScenario,
		Message: fmt.Sprintf("chatmux: invalid scenario '%s': %v", path, cause),
	}
}

// UnknownPersona is returned when the requested persona is not declared
// by the loaded scenario.
func UnknownPersona(name string, declared []string) *Error {
	return &Error{
		Kind:    ErrUnknownPersona,
		Message: fmt.Sprintf("chatmux: unknown persona '%s'. Scenario declares: %s", name, strings.Join(declared, ", ")),
	}
}
