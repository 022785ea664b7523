// internal/repository/remote_products.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/agrikom/agrimarket-backend/internal/models"
)

// RemoteProducts maps products onto the hosted store's products table. The
// adapter is the sole translation point between the snake_case schema and
// the camelCase domain model; gorm's column tags carry that mapping.
type RemoteProducts struct {
	db *gorm.DB
}

func NewRemoteProducts(db *gorm.DB) *RemoteProducts {
	return &RemoteProducts{db: db}
}

func (r *RemoteProducts) Save(p *models.Product) error {
	if err := r.db.Save(p).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *RemoteProducts) Delete(id uuid.UUID, ownerKey string) error {
	err := r.db.Where("id = ? AND owner_key = ?", id, ownerKey).
		Delete(&models.Product{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (r *RemoteProducts) Get(id uuid.UUID) (*models.Product, error) {
	var p models.Product
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &p, nil
}

func (r *RemoteProducts) ListByOwner(ownerKey string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("owner_key = ?", ownerKey).
		Order("updated_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list owner products: %w", err)
	}
	return products, nil
}

func (r *RemoteProducts) ListAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("updated_at ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Snapshot derives the marketplace view from the table directly: the table
// already holds exactly one row per identity, so only the active filter
// applies here.
func (r *RemoteProducts) Snapshot() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("LOWER(TRIM(status)) = ?", string(models.ProductStatusActive)).
		Order("updated_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to derive marketplace snapshot: %w", err)
	}
	return products, nil
}

// SaveSnapshot is a no-op on the remote store; the snapshot is derived, not
// persisted, there. The local implementation persists it for warm reads.
func (r *RemoteProducts) SaveSnapshot(products []models.Product) error {
	return nil
}

// RemoteLikes keeps one row per user in the liked_products table.
type RemoteLikes struct {
	db *gorm.DB
}

func NewRemoteLikes(db *gorm.DB) *RemoteLikes {
	return &RemoteLikes{db: db}
}

func (r *RemoteLikes) Get(ownerKey string) ([]string, error) {
	var row models.LikedProducts
	if err := r.db.First(&row, "owner_key = ?", ownerKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch liked products: %w", err)
	}
	return row.ProductIDs, nil
}

func (r *RemoteLikes) Save(ownerKey string, productIDs []string) error {
	row := models.LikedProducts{
		OwnerKey:   ownerKey,
		ProductIDs: pq.StringArray(productIDs),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"product_ids", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save liked products: %w", err)
	}
	return nil
}
