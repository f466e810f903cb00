package config

import "fmt"

// ConfigurationError indicates a missing or invalid setting that the user
// must fix in the local configuration or environment before the command
// can proceed.
type ConfigurationError struct {
	// Key is the setting (dot notation) or environment variable at fault.
	Key string
	// Reason describes what is wrong with the setting.
	Reason string
	// Hint is an optional remediation command the user can run.
	Hint string
}

// Error returns a user-facing message with actionable guidance.
func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Key, e.Reason)
	if e.Hint != "" {
		msg += fmt.Sprintf("\n\nTo fix this, run:\n  %s", e.Hint)
	}
	return msg
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ConfigurationError) Is(target error) bool {
	_, ok := target.(*ConfigurationError)
	return ok
}
