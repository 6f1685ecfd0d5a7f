package alert

import (
	"context"
	"errors"

	"licenza/internal/domain/alert"
	appErrors "licenza/internal/shared/errors"
	"licenza/internal/shared/utils"
)

// GetSettings returns the stored alert configuration for display.
func (s *Service) GetSettings(ctx context.Context) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, alert.ErrSettingsNotFound) {
			return nil, appErrors.NewNotFoundError("alert settings not configured")
		}
		return nil, appErrors.NewInternalError("failed to load alert settings", err.Error())
	}

	return toSettingsResponse(settings), nil
}

// UpdateSettings applies a settings edit to the singleton row.
func (s *Service) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, alert.ErrSettingsNotFound) {
			return nil, appErrors.NewInternalError("failed to load alert settings", err.Error())
		}
		settings = alert.DefaultSettings()
	}

	err = settings.Update(
		req.SMTPHost,
		req.SMTPPort,
		alert.SecurityMode(req.Security),
		req.SMTPUser,
		req.SMTPPass,
		req.FromAddress,
		req.Recipients,
		req.Thresholds,
	)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, appErrors.NewInternalError("failed to save alert settings", err.Error())
	}

	s.logger.Infow("alert settings updated", "host", settings.SMTPHost(), "thresholds", settings.Thresholds())
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(settings *alert.Settings) *SettingsResponse {
	return &SettingsResponse{
		SMTPHost:    settings.SMTPHost(),
		SMTPPort:    settings.SMTPPort(),
		Security:    string(settings.Security()),
		SMTPUser:    settings.SMTPUser(),
		HasPassword: settings.SMTPPassword() != "",
		FromAddress: settings.FromAddress(),
		Recipients:  settings.Recipients(),
		Thresholds:  settings.Thresholds(),
	}
}
