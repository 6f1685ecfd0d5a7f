package mappers

import (
	"licenza/internal/domain/alert"
	"licenza/internal/infrastructure/persistence/models"
)

// AlertSettingsMapper provides methods for converting between domain and model
type AlertSettingsMapper interface {
	ToDomain(model *models.AlertSettingsModel) *alert.Settings
	ToModel(domain *alert.Settings) *models.AlertSettingsModel
}

type alertSettingsMapper struct{}

// NewAlertSettingsMapper creates a new AlertSettingsMapper
func NewAlertSettingsMapper() AlertSettingsMapper {
	return &alertSettingsMapper{}
}

// ToDomain converts an AlertSettingsModel to a Settings domain entity
func (m *alertSettingsMapper) ToDomain(model *models.AlertSettingsModel) *alert.Settings {
	if model == nil {
		return nil
	}

	return alert.ReconstructSettings(
		model.ID,
		model.SMTPHost,
		model.SMTPPort,
		alert.SecurityMode(model.Security),
		model.SMTPUser,
		model.SMTPPassword,
		model.FromAddress,
		model.Recipients,
		model.Thresholds,
	)
}

// ToModel converts a Settings domain entity to an AlertSettingsModel
func (m *alertSettingsMapper) ToModel(domain *alert.Settings) *models.AlertSettingsModel {
	if domain == nil {
		return nil
	}

	return &models.AlertSettingsModel{
		ID:           domain.ID(),
		SMTPHost:     domain.SMTPHost(),
		SMTPPort:     domain.SMTPPort(),
		Security:     string(domain.Security()),
		SMTPUser:     domain.SMTPUser(),
		SMTPPassword: domain.SMTPPassword(),
		FromAddress:  domain.FromAddress(),
		Recipients:   domain.Recipients(),
		Thresholds:   domain.Thresholds(),
	}
}
