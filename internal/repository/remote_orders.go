// internal/repository/remote_orders.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agrikom/agrimarket-backend/internal/models"
)

type RemoteOrders struct {
	db *gorm.DB
}

func NewRemoteOrders(db *gorm.DB) *RemoteOrders {
	return &RemoteOrders{db: db}
}

func (r *RemoteOrders) Save(o *models.Order) error {
	if err := r.db.Save(o).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *RemoteOrders) Get(id uuid.UUID) (*models.Order, error) {
	var o models.Order
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &o, nil
}

func (r *RemoteOrders) ListBySeller(sellerKey string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("seller_key = ?", sellerKey).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list seller orders: %w", err)
	}
	return orders, nil
}

func (r *RemoteOrders) ListByBuyer(buyerKey string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("buyer_key = ?", buyerKey).
		Order("created_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list buyer orders: %w", err)
	}
	return orders, nil
}
