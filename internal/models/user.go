// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	// Identity is the (role, username) pair, so the unique index spans both
	// columns: "seller:alice" and "buyer:alice" are distinct accounts.
	Username     string     `json:"username" gorm:"index:idx_users_role_username,unique;size:50;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null;index:idx_users_role_username,unique"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	ProfileData  JSONB      `json:"profile_data" gorm:"type:jsonb"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// OwnerKey returns the role-qualified identity of this user.
func (u *User) OwnerKey() string {
	return OwnerKey(u.Role, u.Username)
}

type UserSettings struct {
	BaseModel
	OwnerKey string `json:"owner_key" gorm:"column:owner_key;uniqueIndex;size:120;not null"`
	Settings JSONB  `json:"settings" gorm:"type:jsonb"`
}

func (UserSettings) TableName() string { return "user_settings" }

type Notification struct {
	BaseModel
	OwnerKey string `json:"owner_key" gorm:"column:owner_key;size:120;not null;index"`
	Type     string `json:"type" gorm:"size:50"`
	Message  string `json:"message" gorm:"type:text"`
	Read     bool   `json:"read" gorm:"default:false"`
}
