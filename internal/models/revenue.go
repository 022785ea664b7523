// internal/models/revenue.go
package models

// RevenueEntry holds a single accumulating total per (role, user) pair.
// It is mutated only by additive credits, never decremented or reassigned.
type RevenueEntry struct {
	BaseModel
	OwnerKey string `json:"owner_key" gorm:"column:owner_key;uniqueIndex;size:120;not null"`
	Total    int64  `json:"total" gorm:"default:0"`
}

func (RevenueEntry) TableName() string { return "revenue_entries" }
