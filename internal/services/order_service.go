// internal/services/order_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/ledger"
	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/repository"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

// OrderService owns the order lifecycle and the order-completion path that
// credits the revenue ledger. Status transitions are monotonic forward;
// exactly one ledger credit occurs per order, on the transition into
// completed, and only when the actor is the order's seller.
type OrderService struct {
	orders      repository.OrderRepository
	marketplace *MarketplaceService
	ledger      *ledger.Ledger
	settings    *SettingsService
	bus         *events.Bus
}

type CreateOrderRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

func NewOrderService(orders repository.OrderRepository, marketplace *MarketplaceService, l *ledger.Ledger, settings *SettingsService, bus *events.Bus) *OrderService {
	return &OrderService{
		orders:      orders,
		marketplace: marketplace,
		ledger:      l,
		settings:    settings,
		bus:         bus,
	}
}

func (s *OrderService) CreateOrder(buyerKey string, req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.marketplace.GetProduct(req.ProductID)
	if err != nil {
		return nil, err
	}
	if !models.IsActiveStatus(product.Status) {
		return nil, ErrUnavailable
	}
	if product.Stock < req.Quantity {
		return nil, ErrOutOfStock
	}

	now := time.Now()
	order := &models.Order{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProductID:   product.ID,
		ProductName: product.Name,
		SellerKey:   product.OwnerKey,
		BuyerKey:    buyerKey,
		Quantity:    req.Quantity,
		TotalIDR:    product.Price * int64(req.Quantity),
		Status:      models.OrderStatusPending,
	}

	if err := s.orders.Save(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Reserve stock. There is no version check: concurrent purchases of the
	// last units follow last write wins, like every other write here.
	stock := product.Stock - req.Quantity
	if _, err := s.marketplace.UpdateProduct(product.OwnerKey, product.ID, &UpdateProductRequest{Stock: &stock}); err != nil {
		logrus.WithError(err).WithField("product", product.ID).Warn("order: stock update failed")
	}

	s.bus.Publish(events.TopicOrders, order.SellerKey)
	if s.settings != nil {
		s.settings.Notify(order.SellerKey, "order",
			fmt.Sprintf("New order: %d x %s", order.Quantity, order.ProductName))
	}

	return order, nil
}

// AdvanceOrder moves an order to the next status. Invalid transitions and
// ownership mismatches on completion are silent no-ops with a warning: the
// order comes back unchanged and nothing is credited.
func (s *OrderService) AdvanceOrder(actorKey string, orderID uuid.UUID, next models.OrderStatus) (*models.Order, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return nil, ErrNotFound
	}

	if !order.CanTransition(next) {
		logrus.WithFields(logrus.Fields{
			"order": orderID,
			"from":  order.Status,
			"to":    next,
		}).Warn("order: rejecting non-forward status transition")
		return order, nil
	}

	completing := next == models.OrderStatusCompleted
	if completing && order.SellerKey != actorKey {
		logrus.WithFields(logrus.Fields{
			"order":  orderID,
			"actor":  actorKey,
			"seller": order.SellerKey,
		}).Warn("order: completion rejected, actor is not the seller")
		return order, nil
	}

	order.Status = next
	order.UpdatedAt = time.Now()
	if completing {
		now := time.Now()
		order.CompletedAt = &now
	}

	if err := s.orders.Save(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	// The credit is guarded by the transition above: an already-completed
	// order cannot transition to completed again, so it cannot
	// double-credit. Status flip and credit are still two writes, not one
	// transaction; a crash in between leaves the ledger under-credited.
	if completing {
		if role, username, ok := models.ParseOwnerKey(order.SellerKey); ok {
			s.ledger.Credit(role, username, order.TotalIDR)
		}
		if s.settings != nil {
			s.settings.Notify(order.BuyerKey, "order",
				fmt.Sprintf("Order completed: %s", order.ProductName))
		}
	}

	s.bus.Publish(events.TopicOrders, order.SellerKey)
	return order, nil
}

func (s *OrderService) SellerOrders(sellerKey string) ([]models.Order, error) {
	return s.orders.ListBySeller(sellerKey)
}

func (s *OrderService) BuyerOrders(buyerKey string) ([]models.Order, error) {
	return s.orders.ListByBuyer(buyerKey)
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	order, err := s.orders.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}
