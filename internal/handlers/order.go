// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/ledger"
	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/services"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
	ledger       *ledger.Ledger
}

func NewOrderHandler(orderService *services.OrderService, l *ledger.Ledger) *OrderHandler {
	return &OrderHandler{orderService: orderService, ledger: l}
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(key, &req)
	if err != nil {
		respondServiceError(c, err, "Product")
		return
	}
	utils.CreatedResponse(c, order)
}

// PUT /orders/:id/status
func (h *OrderHandler) AdvanceOrder(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	order, err := h.orderService.AdvanceOrder(key, id, models.OrderStatus(req.Status))
	if err != nil {
		respondServiceError(c, err, "Order")
		return
	}
	utils.SuccessResponse(c, order)
}

// GET /orders/selling
func (h *OrderHandler) GetSellerOrders(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	orders, err := h.orderService.SellerOrders(key)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, orders)
}

// GET /orders/buying
func (h *OrderHandler) GetBuyerOrders(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	orders, err := h.orderService.BuyerOrders(key)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, orders)
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		respondServiceError(c, err, "Order")
		return
	}
	if order.SellerKey != key && order.BuyerKey != key {
		utils.ForbiddenResponse(c, "")
		return
	}
	utils.SuccessResponse(c, order)
}

// GET /revenue
func (h *OrderHandler) GetRevenue(c *gin.Context) {
	if _, ok := ownerKey(c); !ok {
		return
	}
	role, _ := utils.GetRoleFromContext(c)
	username, _ := utils.GetUsernameFromContext(c)

	total := h.ledger.Total(models.UserRole(role), username)
	utils.SuccessResponse(c, gin.H{"total_idr": total})
}
