package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"licenza/internal/domain/alert"
	"licenza/internal/infrastructure/persistence/mappers"
	"licenza/internal/infrastructure/persistence/models"
	appErrors "licenza/internal/shared/errors"
	"licenza/internal/shared/logger"
)

// AlertSettingsRepository implements alert.SettingsRepository
type AlertSettingsRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.AlertSettingsMapper
}

// NewAlertSettingsRepository creates a new AlertSettingsRepository
func NewAlertSettingsRepository(db *gorm.DB, logger logger.Interface) alert.SettingsRepository {
	return &AlertSettingsRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewAlertSettingsMapper(),
	}
}

// Get retrieves the settings row
func (r *AlertSettingsRepository) Get(ctx context.Context) (*alert.Settings, error) {
	var model models.AlertSettingsModel

	err := r.db.WithContext(ctx).Order("id ASC").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, alert.ErrSettingsNotFound
		}
		r.logger.Errorw("failed to get alert settings", "error", err)
		return nil, fmt.Errorf("failed to get alert settings: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// Save creates or updates the settings row
func (r *AlertSettingsRepository) Save(ctx context.Context, settings *alert.Settings) error {
	model := r.mapper.ToModel(settings)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to save alert settings", "error", err)
		return fmt.Errorf("failed to save alert settings: %w", err)
	}

	if settings.ID() == 0 {
		settings.SetID(model.ID)
	}
	return nil
}

// EnsureDefault creates the default settings row when none exists
func (r *AlertSettingsRepository) EnsureDefault(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AlertSettingsModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check alert settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	model := r.mapper.ToModel(alert.DefaultSettings())
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// Another process may have seeded the row between the check and the insert
		if appErrors.IsDuplicateError(err) {
			return nil
		}
		r.logger.Errorw("failed to seed default alert settings", "error", err)
		return fmt.Errorf("failed to seed default alert settings: %w", err)
	}

	r.logger.Infow("seeded default alert settings")
	return nil
}
