// internal/services/settings_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/repository"
)

// SettingsService stores per-user settings blobs and the in-app
// notification feed.
type SettingsService struct {
	settings repository.SettingsRepository
	bus      *events.Bus
}

func NewSettingsService(settings repository.SettingsRepository, bus *events.Bus) *SettingsService {
	return &SettingsService{settings: settings, bus: bus}
}

func (s *SettingsService) Settings(ownerKey string) (models.JSONB, error) {
	settings, err := s.settings.Settings(ownerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	if settings == nil {
		return models.JSONB{}, nil
	}
	return settings, nil
}

func (s *SettingsService) SaveSettings(ownerKey string, settings models.JSONB) error {
	if err := s.settings.SaveSettings(ownerKey, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Notify appends an in-app notification for ownerKey. Failures are logged
// and swallowed so a broken notification feed never fails the operation
// that produced it.
func (s *SettingsService) Notify(ownerKey, kind, message string) {
	notif := &models.Notification{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerKey: ownerKey,
		Type:     kind,
		Message:  message,
	}
	if err := s.settings.AppendNotification(notif); err != nil {
		logrus.WithError(err).WithField("owner", ownerKey).Warn("settings: notification append failed")
		return
	}
	s.bus.Publish(events.TopicNotifications, ownerKey)
}

func (s *SettingsService) Notifications(ownerKey string) ([]models.Notification, error) {
	return s.settings.Notifications(ownerKey)
}
