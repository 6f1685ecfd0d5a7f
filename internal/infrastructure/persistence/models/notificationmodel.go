package models

import (
	"time"
)

// NotificationModel is the GORM model for the notifications ledger table.
// The composite unique index over (license_id, threshold) is the dedup
// barrier between overlapping alert runs.
type NotificationModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	LicenseID uint      `gorm:"column:license_id;not null;uniqueIndex:idx_license_threshold"`
	Threshold int       `gorm:"column:threshold;not null;uniqueIndex:idx_license_threshold"`
	SentAt    time.Time `gorm:"column:sent_at;not null"`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}
