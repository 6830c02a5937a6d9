package domain

import (
	"io"
)

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// GrantStore persists permission grants for scenario personas.
type GrantStore interface {
	// Grant records a permission for a persona within a scenario.
	// Granting an already-held permission is a no-op.
	Grant(scenario, persona, permission string) error

	// Revoke removes a grant and reports whether it existed.
	Revoke(scenario, persona, permission string) (bool, error)

	// Grants returns every grant for a scenario, oldest first.
	Grants(scenario string) ([]Grant, error)

	// HasGrant reports whether one specific grant exists.
	HasGrant(scenario, persona, permission string) (bool, error)

	// Permissions returns the granted permission keys for one persona.
	Permissions(scenario, persona string) ([]string, error)
}

// AuditStore persists dispatch audit events.
type AuditStore interface {
	// Record appends one audit event.
	Record(event AuditEvent) error

	// Recent returns the newest events, newest first, capped at limit.
	// A non-positive limit returns everything.
	Recent(limit int) ([]AuditEvent, error)
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Styler defines semantic text styling operations.
type Styler interface {
	// Enabled returns true if styling is active.
	Enabled() bool

	// Success styles text for successful operations.
	Success(text string) string

	// Warning styles text for warnings.
	Warning(text string) string

	// Error styles text for errors.
	Error(text string) string

	// Info styles text for informational messages.
	Info(text string) string

	// Muted styles text for secondary information.
	Muted(text string) string

	// Header styles text for section headers.
	Header(text string) string
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}
