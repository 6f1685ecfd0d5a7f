package alert

import "context"

// SettingsRepository persists the singleton alert configuration.
type SettingsRepository interface {
	// Get retrieves the settings row, or ErrSettingsNotFound
	Get(ctx context.Context) (*Settings, error)

	// Save creates or updates the settings row
	Save(ctx context.Context, settings *Settings) error

	// EnsureDefault creates the default row when none exists. Called once at
	// startup; a concurrent creation by another process is not an error.
	EnsureDefault(ctx context.Context) error
}

// LedgerRepository persists sent-notification entries. Record relies on a
// uniqueness constraint over (licenseID, threshold) so that two overlapping
// alert runs cannot both commit the same entry.
type LedgerRepository interface {
	// Exists reports whether a ledger entry exists for the pair
	Exists(ctx context.Context, licenseID uint, threshold int) (bool, error)

	// Record inserts a ledger entry, returning ErrDuplicateNotification when
	// a concurrent writer already recorded the same pair.
	Record(ctx context.Context, notification *Notification) error
}
