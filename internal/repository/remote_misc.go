// internal/repository/remote_misc.go
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/agrikom/agrimarket-backend/internal/models"
)

// RemoteRevenue credits through a single UPDATE ... total = total + amount
// upsert, so concurrent completions on the same seller cannot lose updates.
type RemoteRevenue struct {
	db *gorm.DB
}

func NewRemoteRevenue(db *gorm.DB) *RemoteRevenue {
	return &RemoteRevenue{db: db}
}

func (r *RemoteRevenue) Add(ownerKey string, amount int64) (int64, error) {
	entry := models.RevenueEntry{OwnerKey: ownerKey, Total: amount}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total": gorm.Expr("revenue_entries.total + EXCLUDED.total"),
		}),
	}).Create(&entry).Error
	if err != nil {
		return 0, fmt.Errorf("failed to credit revenue: %w", err)
	}
	return r.Total(ownerKey)
}

func (r *RemoteRevenue) Total(ownerKey string) (int64, error) {
	var entry models.RevenueEntry
	if err := r.db.First(&entry, "owner_key = ?", ownerKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read revenue total: %w", err)
	}
	return entry.Total, nil
}

type RemoteUsers struct {
	db *gorm.DB
}

func NewRemoteUsers(db *gorm.DB) *RemoteUsers {
	return &RemoteUsers{db: db}
}

func (r *RemoteUsers) Save(u *models.User) error {
	if err := r.db.Save(u).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *RemoteUsers) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &u, nil
}

func (r *RemoteUsers) FindByOwnerKey(ownerKey string) (*models.User, error) {
	role, username, ok := models.ParseOwnerKey(ownerKey)
	if !ok {
		return nil, nil
	}
	var u models.User
	if err := r.db.First(&u, "role = ? AND username = ?", role, username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &u, nil
}

func (r *RemoteUsers) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

type RemoteSettings struct {
	db *gorm.DB
}

func NewRemoteSettings(db *gorm.DB) *RemoteSettings {
	return &RemoteSettings{db: db}
}

func (r *RemoteSettings) Settings(ownerKey string) (models.JSONB, error) {
	var row models.UserSettings
	if err := r.db.First(&row, "owner_key = ?", ownerKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return row.Settings, nil
}

func (r *RemoteSettings) SaveSettings(ownerKey string, settings models.JSONB) error {
	row := models.UserSettings{OwnerKey: ownerKey, Settings: settings}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"settings", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (r *RemoteSettings) AppendNotification(n *models.Notification) error {
	if err := r.db.Create(n).Error; err != nil {
		return fmt.Errorf("failed to append notification: %w", err)
	}
	return nil
}

func (r *RemoteSettings) Notifications(ownerKey string) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.Where("owner_key = ?", ownerKey).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}
