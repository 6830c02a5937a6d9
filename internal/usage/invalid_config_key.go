package usage

import "fmt"

// InvalidConfigKey is returned when a config subcommand names an unknown key.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("chatmux: unknown config key '%s'. See 'chatmux config list'.", key),
	}
}
