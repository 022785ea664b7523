// internal/services/marketplace_service.go
package services

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/repository"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

// MarketplaceService is the facade over products, the derived marketplace
// snapshot, and liked-product sets. Every mutation recomputes the snapshot
// and publishes a change notification.
type MarketplaceService struct {
	products repository.ProductRepository
	likes    repository.LikesRepository
	bus      *events.Bus
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Price       int64    `json:"price" validate:"required,min=1"`
	Unit        string   `json:"unit,omitempty"`
	Category    string   `json:"category" validate:"required"`
	Stock       int      `json:"stock" validate:"min=0"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type UpdateProductRequest struct {
	Name        string               `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Price       int64                `json:"price,omitempty" validate:"omitempty,min=1"`
	Unit        string               `json:"unit,omitempty"`
	Category    string               `json:"category,omitempty"`
	Stock       *int                 `json:"stock,omitempty" validate:"omitempty,min=0"`
	Description string               `json:"description,omitempty"`
	Images      []string             `json:"images,omitempty"`
	Status      models.ProductStatus `json:"status,omitempty"`
}

func NewMarketplaceService(products repository.ProductRepository, likes repository.LikesRepository, bus *events.Bus) *MarketplaceService {
	return &MarketplaceService{
		products: products,
		likes:    likes,
		bus:      bus,
	}
}

func (s *MarketplaceService) CreateProduct(ownerKey string, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role, _, ok := models.ParseOwnerKey(ownerKey)
	if !ok || !slices.Contains(models.SellingRoles, role) {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	product := &models.Product{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerKey:    ownerKey,
		Name:        req.Name,
		Price:       req.Price,
		Unit:        req.Unit,
		Category:    req.Category,
		Stock:       req.Stock,
		Status:      models.ProductStatusActive,
		Description: req.Description,
		Images:      pq.StringArray(req.Images),
	}

	if err := s.products.Save(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.RecomputeSnapshot(ownerKey); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicMarketplace, ownerKey)
	return product, nil
}

func (s *MarketplaceService) UpdateProduct(ownerKey string, id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.products.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if product.OwnerKey != ownerKey {
		return nil, ErrForbidden
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.Unit != "" {
		product.Unit = req.Unit
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Images != nil {
		product.Images = pq.StringArray(req.Images)
	}
	if req.Status != "" {
		product.Status = req.Status
	}
	product.UpdatedAt = time.Now()

	if err := s.products.Save(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if err := s.RecomputeSnapshot(ownerKey); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicMarketplace, ownerKey)
	return product, nil
}

func (s *MarketplaceService) DeleteProduct(ownerKey string, id uuid.UUID) error {
	product, err := s.products.Get(id)
	if err != nil {
		return fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return ErrNotFound
	}
	if product.OwnerKey != ownerKey {
		return ErrForbidden
	}

	if err := s.products.Delete(id, ownerKey); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if err := s.RecomputeSnapshot(ownerKey); err != nil {
		return err
	}

	s.bus.Publish(events.TopicMarketplace, ownerKey)
	return nil
}

func (s *MarketplaceService) GetProduct(id uuid.UUID) (*models.Product, error) {
	product, err := s.products.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Catalog returns the owner's own products. The owner key comparison is
// exact and case-sensitive: a differently formatted identity silently sees
// an empty catalog.
func (s *MarketplaceService) Catalog(ownerKey string) ([]models.Product, error) {
	return s.products.ListByOwner(ownerKey)
}

// Marketplace returns the derived snapshot: active products only, exactly
// one entry per identity.
func (s *MarketplaceService) Marketplace() ([]models.Product, error) {
	return s.products.Snapshot()
}

// RecomputeSnapshot rebuilds the marketplace view after a mutation by the
// acting owner: drop the owner's stale entries from the current snapshot,
// append their fresh list, filter to active, and deduplicate by identity
// keeping the last occurrence.
func (s *MarketplaceService) RecomputeSnapshot(actingOwner string) error {
	current, err := s.products.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	fresh, err := s.products.ListByOwner(actingOwner)
	if err != nil {
		return fmt.Errorf("failed to list owner products: %w", err)
	}

	merged := make([]models.Product, 0, len(current)+len(fresh))
	for _, p := range current {
		if p.OwnerKey != actingOwner {
			merged = append(merged, p)
		}
	}
	merged = append(merged, fresh...)

	return s.products.SaveSnapshot(normalizeSnapshot(merged))
}

// RebuildSnapshot recomputes the snapshot from every owner list. Invoking
// it twice with no intervening writes produces an identical snapshot.
func (s *MarketplaceService) RebuildSnapshot() ([]models.Product, error) {
	all, err := s.products.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	snapshot := normalizeSnapshot(all)
	if err := s.products.SaveSnapshot(snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// normalizeSnapshot applies the snapshot invariants: status "active" after
// trimming and case-folding, one entry per product identity, last
// occurrence wins.
func normalizeSnapshot(products []models.Product) []models.Product {
	lastIdx := make(map[uuid.UUID]int)
	for i, p := range products {
		if models.IsActiveStatus(p.Status) {
			lastIdx[p.ID] = i
		}
	}

	snapshot := make([]models.Product, 0, len(lastIdx))
	for i, p := range products {
		if idx, ok := lastIdx[p.ID]; ok && idx == i {
			snapshot = append(snapshot, p)
		}
	}
	return snapshot
}

// ToggleLike flips productID in the caller's liked set. Only the owning
// user reaches this path; the key comes from their own session.
func (s *MarketplaceService) ToggleLike(userKey string, productID uuid.UUID) ([]string, error) {
	ids, err := s.likes.Get(userKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read liked products: %w", err)
	}

	id := productID.String()
	if i := slices.Index(ids, id); i >= 0 {
		ids = append(ids[:i], ids[i+1:]...)
	} else {
		ids = append(ids, id)
	}

	if err := s.likes.Save(userKey, ids); err != nil {
		return nil, fmt.Errorf("failed to save liked products: %w", err)
	}

	s.bus.Publish(events.TopicLikes, userKey)
	return ids, nil
}

func (s *MarketplaceService) LikedProducts(userKey string) ([]string, error) {
	return s.likes.Get(userKey)
}
