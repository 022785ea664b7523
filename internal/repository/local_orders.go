// internal/repository/local_orders.go
package repository

import (
	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/models"
)

// LocalOrders keeps one JSON list per seller owner key. Buyer views scan
// every seller list; order volume in local-only mode is per-browser scale.
type LocalOrders struct {
	store *localstore.Store
}

func NewLocalOrders(store *localstore.Store) *LocalOrders {
	return &LocalOrders{store: store}
}

func (r *LocalOrders) sellerList(sellerKey string) []models.Order {
	var orders []models.Order
	r.store.Read(localstore.KeyOrders+sellerKey, &orders)
	return orders
}

func (r *LocalOrders) Save(o *models.Order) error {
	list := r.sellerList(o.SellerKey)
	for i, existing := range list {
		if existing.ID == o.ID {
			list[i] = *o
			r.store.Write(localstore.KeyOrders+o.SellerKey, list)
			return nil
		}
	}
	list = append(list, *o)
	r.store.Write(localstore.KeyOrders+o.SellerKey, list)
	return nil
}

func (r *LocalOrders) Get(id uuid.UUID) (*models.Order, error) {
	for _, key := range r.store.Keys(localstore.KeyOrders) {
		var list []models.Order
		r.store.Read(key, &list)
		for i := range list {
			if list[i].ID == id {
				return &list[i], nil
			}
		}
	}
	return nil, nil
}

func (r *LocalOrders) ListBySeller(sellerKey string) ([]models.Order, error) {
	return r.sellerList(sellerKey), nil
}

func (r *LocalOrders) ListByBuyer(buyerKey string) ([]models.Order, error) {
	var out []models.Order
	for _, key := range r.store.Keys(localstore.KeyOrders) {
		var list []models.Order
		r.store.Read(key, &list)
		for _, o := range list {
			if o.BuyerKey == buyerKey {
				out = append(out, o)
			}
		}
	}
	return out, nil
}

// ReplaceSellerList mirrors a remote seller-order read into the warm cache.
func (r *LocalOrders) ReplaceSellerList(sellerKey string, orders []models.Order) {
	r.store.Write(localstore.KeyOrders+sellerKey, orders)
}
