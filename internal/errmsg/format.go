// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad    Op = "load configuration"
	OpOverrideParse Op = "parse settings override"

	// Store operations
	OpStoreOpen      Op = "open library database"
	OpSceneAdd       Op = "add scene"
	OpSceneLoad      Op = "load scene"
	OpSceneList      Op = "list scenes"
	OpSceneUpdate    Op = "update scene title"
	OpSettingsLoad   Op = "load formatter settings"
	OpSettingsSave   Op = "save formatter settings"
	OpSettingsDecode Op = "decode formatter settings"

	// File operations
	OpTagsRead  Op = "read file tags"
	OpTagsWrite Op = "write file title"
	OpInputRead Op = "read titles from input"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Error wraps err with the same wording as Format, for returning from
// command handlers.
func Error(op Op, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
