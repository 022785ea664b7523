// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	ProductID   uuid.UUID   `json:"product_id" gorm:"type:uuid;not null;index"`
	ProductName string      `json:"product_name" gorm:"size:255"`
	SellerKey   string      `json:"seller_key" gorm:"column:seller_key;size:120;not null;index"`
	BuyerKey    string      `json:"buyer_key" gorm:"column:buyer_key;size:120;not null;index"`
	Quantity    int         `json:"quantity" gorm:"not null"`
	TotalIDR    int64       `json:"total_idr" gorm:"column:total_idr;not null"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	CompletedAt *time.Time  `json:"completed_at"`
}

// orderStatusRank orders statuses for the monotonic-forward transition
// check. There is no defined transition back to pending.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusCompleted:  2,
}

// CanTransition reports whether an order may move from its current status
// to next. Only strict forward moves are allowed.
func (o *Order) CanTransition(next OrderStatus) bool {
	cur, ok := orderStatusRank[o.Status]
	if !ok {
		return false
	}
	nxt, ok := orderStatusRank[next]
	if !ok {
		return false
	}
	return nxt > cur
}
