// internal/repository/local_products.go
package repository

import (
	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/models"
)

// LocalProducts keeps one JSON list per owner key plus the persisted
// marketplace snapshot. Local reads never fail: absence and corruption
// both come back as the empty list.
type LocalProducts struct {
	store *localstore.Store
}

func NewLocalProducts(store *localstore.Store) *LocalProducts {
	return &LocalProducts{store: store}
}

func (r *LocalProducts) ownerList(ownerKey string) []models.Product {
	var products []models.Product
	r.store.Read(localstore.KeyProducts+ownerKey, &products)
	return products
}

func (r *LocalProducts) Save(p *models.Product) error {
	list := r.ownerList(p.OwnerKey)
	// Re-saving moves the record to the end of the list, so the list order
	// is write order and dedupe-keep-last is last-write-wins.
	for i, existing := range list {
		if existing.ID == p.ID {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	list = append(list, *p)
	r.store.Write(localstore.KeyProducts+p.OwnerKey, list)
	return nil
}

func (r *LocalProducts) Delete(id uuid.UUID, ownerKey string) error {
	list := r.ownerList(ownerKey)
	for i, existing := range list {
		if existing.ID == id {
			list = append(list[:i], list[i+1:]...)
			r.store.Write(localstore.KeyProducts+ownerKey, list)
			return nil
		}
	}
	return nil
}

func (r *LocalProducts) Get(id uuid.UUID) (*models.Product, error) {
	for _, key := range r.store.Keys(localstore.KeyProducts) {
		var list []models.Product
		r.store.Read(key, &list)
		for i := range list {
			if list[i].ID == id {
				return &list[i], nil
			}
		}
	}
	return nil, nil
}

func (r *LocalProducts) ListByOwner(ownerKey string) ([]models.Product, error) {
	return r.ownerList(ownerKey), nil
}

func (r *LocalProducts) ListAll() ([]models.Product, error) {
	var all []models.Product
	for _, key := range r.store.Keys(localstore.KeyProducts) {
		var list []models.Product
		r.store.Read(key, &list)
		all = append(all, list...)
	}
	return all, nil
}

func (r *LocalProducts) Snapshot() ([]models.Product, error) {
	var snapshot []models.Product
	r.store.Read(localstore.KeyMarketplace, &snapshot)
	return snapshot, nil
}

func (r *LocalProducts) SaveSnapshot(products []models.Product) error {
	r.store.Write(localstore.KeyMarketplace, products)
	return nil
}

// ReplaceOwnerList overwrites an owner's list wholesale, used by the dual
// decorator to mirror remote reads into the warm cache.
func (r *LocalProducts) ReplaceOwnerList(ownerKey string, products []models.Product) {
	r.store.Write(localstore.KeyProducts+ownerKey, products)
}

// LocalLikes stores the per-user liked-product set as a JSON array.
type LocalLikes struct {
	store *localstore.Store
}

func NewLocalLikes(store *localstore.Store) *LocalLikes {
	return &LocalLikes{store: store}
}

func (r *LocalLikes) Get(ownerKey string) ([]string, error) {
	var ids []string
	r.store.Read(localstore.KeyLikes+ownerKey, &ids)
	return ids, nil
}

func (r *LocalLikes) Save(ownerKey string, productIDs []string) error {
	r.store.Write(localstore.KeyLikes+ownerKey, productIDs)
	return nil
}
