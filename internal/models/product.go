// internal/models/product.go
package models

import "github.com/lib/pq"

type Product struct {
	BaseModel
	// OwnerKey is the role-qualified identity of the seller or processor
	// that owns this product, e.g. "seller:alice".
	OwnerKey    string         `json:"owner_key" gorm:"column:owner_key;size:120;not null;index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Price       int64          `json:"price" gorm:"not null"`
	Unit        string         `json:"unit" gorm:"size:30"`
	Category    string         `json:"category" gorm:"size:100;index"`
	Stock       int            `json:"stock" gorm:"default:0"`
	Status      ProductStatus  `json:"status" gorm:"type:varchar(20);default:'active';index"`
	Description string         `json:"description" gorm:"type:text"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
}

// LikedProducts is the per-user set of liked product identities. The remote
// schema keeps one row per user; the local store keeps the same shape as a
// JSON value under the likes namespace.
type LikedProducts struct {
	BaseModel
	OwnerKey   string         `json:"owner_key" gorm:"column:owner_key;uniqueIndex;size:120;not null"`
	ProductIDs pq.StringArray `json:"product_ids" gorm:"type:text[]"`
}

func (LikedProducts) TableName() string { return "liked_products" }
