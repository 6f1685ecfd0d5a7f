package alert

import (
	"time"

	"licenza/internal/shared/biztime"
)

// Notification is one ledger entry: license X was notified at threshold T.
// Entries are created only after a confirmed send, never updated, and the
// (licenseID, threshold) pair is unique - that uniqueness is the sole
// deduplication barrier between alert runs.
type Notification struct {
	id        uint
	licenseID uint
	threshold int
	sentAt    time.Time
}

// NewNotification creates a ledger entry stamped with the current time.
func NewNotification(licenseID uint, threshold int) *Notification {
	return &Notification{
		licenseID: licenseID,
		threshold: threshold,
		sentAt:    biztime.NowUTC(),
	}
}

// ReconstructNotification reconstructs a Notification from the persistence layer
func ReconstructNotification(id uint, licenseID uint, threshold int, sentAt time.Time) *Notification {
	return &Notification{
		id:        id,
		licenseID: licenseID,
		threshold: threshold,
		sentAt:    sentAt,
	}
}

// Getters
func (n *Notification) ID() uint        { return n.id }
func (n *Notification) LicenseID() uint { return n.licenseID }
func (n *Notification) Threshold() int  { return n.threshold }
func (n *Notification) SentAt() time.Time { return n.sentAt }

// SetID sets the notification ID (only for persistence layer use)
func (n *Notification) SetID(id uint) {
	n.id = id
}
