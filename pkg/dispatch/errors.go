package dispatch

import "fmt"

// ConfigError reports a registration-time mistake: conflicting names
// or aliases, a command kind that is invalid for its position,
// configuration mutated after commands were added, or an out-of-range
// page size. These indicate programming errors and abort setup; they
// are never produced for user input at dispatch time.
type ConfigError struct {
	Op     string // the operation that failed, e.g. "Add", "PageSize"
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("dispatch: %s: %s", e.Op, e.Detail)
}

func configErrorf(op, format string, args ...any) *ConfigError {
	return &ConfigError{Op: op, Detail: fmt.Sprintf(format, args...)}
}
