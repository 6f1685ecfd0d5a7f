package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"licenza/internal/domain/alert"
	"licenza/internal/infrastructure/persistence/mappers"
	"licenza/internal/infrastructure/persistence/models"
	appErrors "licenza/internal/shared/errors"
	"licenza/internal/shared/logger"
)

// NotificationLedgerRepository implements alert.LedgerRepository on top of
// the notifications table and its (license_id, threshold) unique index.
type NotificationLedgerRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.NotificationMapper
}

// NewNotificationLedgerRepository creates a new NotificationLedgerRepository
func NewNotificationLedgerRepository(db *gorm.DB, logger logger.Interface) alert.LedgerRepository {
	return &NotificationLedgerRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewNotificationMapper(),
	}
}

// Exists reports whether a ledger entry exists for the pair
func (r *NotificationLedgerRepository) Exists(ctx context.Context, licenseID uint, threshold int) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("license_id = ? AND threshold = ?", licenseID, threshold).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check notification ledger", "license_id", licenseID, "threshold", threshold, "error", err)
		return false, fmt.Errorf("failed to check notification ledger: %w", err)
	}

	return count > 0, nil
}

// Record inserts a ledger entry. A unique-index conflict means a concurrent
// run already recorded the pair and surfaces as ErrDuplicateNotification.
func (r *NotificationLedgerRepository) Record(ctx context.Context, notification *alert.Notification) error {
	model := r.mapper.ToModel(notification)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "license_id"}, {Name: "threshold"}},
		DoNothing: true,
	}).Create(model)
	if result.Error != nil {
		// Drivers without ON CONFLICT support report the violation directly
		if appErrors.IsDuplicateError(result.Error) {
			return alert.ErrDuplicateNotification
		}
		r.logger.Errorw("failed to record notification", "license_id", notification.LicenseID(), "threshold", notification.Threshold(), "error", result.Error)
		return fmt.Errorf("failed to record notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return alert.ErrDuplicateNotification
	}

	notification.SetID(model.ID)
	return nil
}
