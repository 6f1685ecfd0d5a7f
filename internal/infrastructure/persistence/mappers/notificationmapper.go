package mappers

import (
	"licenza/internal/domain/alert"
	"licenza/internal/infrastructure/persistence/models"
)

// NotificationMapper provides methods for converting between domain and model
type NotificationMapper interface {
	ToDomain(model *models.NotificationModel) *alert.Notification
	ToModel(domain *alert.Notification) *models.NotificationModel
}

type notificationMapper struct{}

// NewNotificationMapper creates a new NotificationMapper
func NewNotificationMapper() NotificationMapper {
	return &notificationMapper{}
}

// ToDomain converts a NotificationModel to a Notification domain entity
func (m *notificationMapper) ToDomain(model *models.NotificationModel) *alert.Notification {
	if model == nil {
		return nil
	}
	return alert.ReconstructNotification(model.ID, model.LicenseID, model.Threshold, model.SentAt)
}

// ToModel converts a Notification domain entity to a NotificationModel
func (m *notificationMapper) ToModel(domain *alert.Notification) *models.NotificationModel {
	if domain == nil {
		return nil
	}
	return &models.NotificationModel{
		ID:        domain.ID(),
		LicenseID: domain.LicenseID(),
		Threshold: domain.Threshold(),
		SentAt:    domain.SentAt(),
	}
}
