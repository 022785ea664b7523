// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type UserRole string

const (
	UserRoleFarmer           UserRole = "farmer"
	UserRoleCompostProcessor UserRole = "compost_processor"
	UserRoleSeller           UserRole = "seller"
	UserRoleBuyer            UserRole = "buyer"
	UserRoleAdmin            UserRole = "admin"
)

// SellingRoles are the roles whose products appear in the marketplace.
var SellingRoles = []UserRole{UserRoleSeller, UserRoleCompostProcessor, UserRoleFarmer}

func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleFarmer, UserRoleCompostProcessor, UserRoleSeller, UserRoleBuyer, UserRoleAdmin:
		return true
	}
	return false
}

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
)

type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPending   ArticleStatus = "pending"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusRejected  ArticleStatus = "rejected"
)

// OwnerKey builds the role-qualified identity used as the primary key for
// ownership checks, e.g. "seller:alice". Comparison against stored owner
// keys is exact and case-sensitive everywhere.
func OwnerKey(role UserRole, username string) string {
	return string(role) + ":" + username
}

// ParseOwnerKey splits a role-qualified identity back into its parts.
// The second return value is false when the key is not role-qualified.
func ParseOwnerKey(key string) (UserRole, string, bool) {
	role, username, ok := strings.Cut(key, ":")
	if !ok || role == "" || username == "" {
		return "", "", false
	}
	return UserRole(role), username, true
}

// IsActiveStatus reports whether a product status counts as active for the
// marketplace snapshot. Upstream producers are not guaranteed to emit
// canonical casing, so the comparison is trimmed and case-insensitive.
func IsActiveStatus(status ProductStatus) bool {
	return strings.EqualFold(strings.TrimSpace(string(status)), string(ProductStatusActive))
}
