// internal/handlers/marketplace.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/services"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

type MarketplaceHandler struct {
	marketplaceService *services.MarketplaceService
	storageService     *services.StorageService
}

func NewMarketplaceHandler(marketplaceService *services.MarketplaceService, storageService *services.StorageService) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketplaceService: marketplaceService,
		storageService:     storageService,
	}
}

// GET /marketplace
func (h *MarketplaceHandler) GetMarketplace(c *gin.Context) {
	products, err := h.marketplaceService.Marketplace()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	params := utils.GetPaginationParams(c)
	if params.Category != "" {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == params.Category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	_, result := utils.Paginate(products, params)
	utils.PaginatedResponse(c, result)
}

// GET /products (the caller's own catalog)
func (h *MarketplaceHandler) GetCatalog(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	products, err := h.marketplaceService.Catalog(key)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, products)
}

// GET /products/:id
func (h *MarketplaceHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.marketplaceService.GetProduct(id)
	if err != nil {
		respondServiceError(c, err, "Product")
		return
	}
	utils.SuccessResponse(c, product)
}

// POST /products
func (h *MarketplaceHandler) CreateProduct(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.marketplaceService.CreateProduct(key, &req)
	if err != nil {
		respondServiceError(c, err, "Product")
		return
	}
	utils.CreatedResponse(c, product)
}

// PUT /products/:id
func (h *MarketplaceHandler) UpdateProduct(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.marketplaceService.UpdateProduct(key, id, &req)
	if err != nil {
		respondServiceError(c, err, "Product")
		return
	}
	utils.SuccessResponse(c, product)
}

// DELETE /products/:id
func (h *MarketplaceHandler) DeleteProduct(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.marketplaceService.DeleteProduct(key, id); err != nil {
		respondServiceError(c, err, "Product")
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// POST /products/:id/like
func (h *MarketplaceHandler) ToggleLike(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	liked, err := h.marketplaceService.ToggleLike(key, id)
	if err != nil {
		respondServiceError(c, err, "Product")
		return
	}
	utils.SuccessResponse(c, gin.H{"liked_products": liked})
}

// GET /likes
func (h *MarketplaceHandler) GetLikes(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	liked, err := h.marketplaceService.LikedProducts(key)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"liked_products": liked})
}

// POST /products/upload
func (h *MarketplaceHandler) UploadImage(c *gin.Context) {
	if _, ok := ownerKey(c); !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "Missing file", nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadFile(file, header, h.storageService.GetDefaultUploadOptions("products"))
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	utils.CreatedResponse(c, result)
}
