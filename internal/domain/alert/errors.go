package alert

import "errors"

var (
	// ErrSettingsNotFound is returned when no alert settings row exists
	ErrSettingsNotFound = errors.New("alert settings not found")

	// ErrDuplicateNotification is returned when a ledger entry for the same
	// (license, threshold) pair was already recorded by a concurrent run.
	// Callers treat it as success.
	ErrDuplicateNotification = errors.New("notification already recorded")

	// ErrNoRecipients is returned when the recipient list is empty after
	// trimming; no SMTP connection is attempted.
	ErrNoRecipients = errors.New("no recipients")
)
