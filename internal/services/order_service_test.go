// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/agrikom/agrimarket-backend/internal/models"
)

type OrderServiceTestSuite struct {
	suite.Suite
	env     *testEnv
	product *models.Product
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T())

	product, err := suite.env.marketplace.CreateProduct("seller:alice", &CreateProductRequest{
		Name:     "Beras Merah",
		Price:    25000,
		Category: "produce",
		Stock:    10,
	})
	suite.Require().NoError(err)
	suite.product = product
}

func (suite *OrderServiceTestSuite) placeOrder(qty int) *models.Order {
	order, err := suite.env.orders.CreateOrder("buyer:bob", &CreateOrderRequest{
		ProductID: suite.product.ID,
		Quantity:  qty,
	})
	suite.Require().NoError(err)
	return order
}

func (suite *OrderServiceTestSuite) TestCreateOrderComputesTotalAndReservesStock() {
	order := suite.placeOrder(2)

	suite.Equal(models.OrderStatusPending, order.Status)
	suite.Equal(int64(50000), order.TotalIDR)
	suite.Equal("seller:alice", order.SellerKey)
	suite.Equal("buyer:bob", order.BuyerKey)

	product, err := suite.env.marketplace.GetProduct(suite.product.ID)
	suite.Require().NoError(err)
	suite.Equal(8, product.Stock)
}

func (suite *OrderServiceTestSuite) TestCreateOrderRejectsInsufficientStock() {
	_, err := suite.env.orders.CreateOrder("buyer:bob", &CreateOrderRequest{
		ProductID: suite.product.ID,
		Quantity:  11,
	})
	suite.ErrorIs(err, ErrOutOfStock)
}

func (suite *OrderServiceTestSuite) TestCreateOrderRejectsInactiveProduct() {
	_, err := suite.env.marketplace.UpdateProduct("seller:alice", suite.product.ID, &UpdateProductRequest{
		Status: models.ProductStatusInactive,
	})
	suite.Require().NoError(err)

	_, err = suite.env.orders.CreateOrder("buyer:bob", &CreateOrderRequest{
		ProductID: suite.product.ID,
		Quantity:  1,
	})
	suite.ErrorIs(err, ErrUnavailable)
}

func (suite *OrderServiceTestSuite) TestCompletionCreditsSellerExactlyOnce() {
	order := suite.placeOrder(2)

	_, err := suite.env.orders.AdvanceOrder("seller:alice", order.ID, models.OrderStatusProcessing)
	suite.Require().NoError(err)

	completed, err := suite.env.orders.AdvanceOrder("seller:alice", order.ID, models.OrderStatusCompleted)
	suite.Require().NoError(err)
	suite.Equal(models.OrderStatusCompleted, completed.Status)
	suite.NotNil(completed.CompletedAt)
	suite.Equal(int64(50000), suite.env.ledger.Total(models.UserRoleSeller, "alice"))

	// Completing again is a no-op and never double-credits.
	again, err := suite.env.orders.AdvanceOrder("seller:alice", order.ID, models.OrderStatusCompleted)
	suite.Require().NoError(err)
	suite.Equal(models.OrderStatusCompleted, again.Status)
	suite.Equal(int64(50000), suite.env.ledger.Total(models.UserRoleSeller, "alice"))
}

func (suite *OrderServiceTestSuite) TestOnlySellerCanComplete() {
	order := suite.placeOrder(1)

	unchanged, err := suite.env.orders.AdvanceOrder("buyer:bob", order.ID, models.OrderStatusCompleted)
	suite.Require().NoError(err)
	suite.Equal(models.OrderStatusPending, unchanged.Status)
	suite.Equal(int64(0), suite.env.ledger.Total(models.UserRoleSeller, "alice"))
}

func (suite *OrderServiceTestSuite) TestBackwardTransitionsAreIgnored() {
	order := suite.placeOrder(1)

	_, err := suite.env.orders.AdvanceOrder("seller:alice", order.ID, models.OrderStatusProcessing)
	suite.Require().NoError(err)

	unchanged, err := suite.env.orders.AdvanceOrder("seller:alice", order.ID, models.OrderStatusPending)
	suite.Require().NoError(err)
	suite.Equal(models.OrderStatusProcessing, unchanged.Status)

	unchanged, err = suite.env.orders.AdvanceOrder("seller:alice", order.ID, models.OrderStatus("garbage"))
	suite.Require().NoError(err)
	suite.Equal(models.OrderStatusProcessing, unchanged.Status)
}

func (suite *OrderServiceTestSuite) TestDirectCompletionFromPendingIsForward() {
	order := suite.placeOrder(3)

	completed, err := suite.env.orders.AdvanceOrder("seller:alice", order.ID, models.OrderStatusCompleted)
	suite.Require().NoError(err)
	suite.Equal(models.OrderStatusCompleted, completed.Status)
	suite.Equal(int64(75000), suite.env.ledger.Total(models.UserRoleSeller, "alice"))
}

func (suite *OrderServiceTestSuite) TestOrderListsAreScopedToEachSide() {
	suite.placeOrder(1)

	selling, err := suite.env.orders.SellerOrders("seller:alice")
	suite.Require().NoError(err)
	suite.Len(selling, 1)

	buying, err := suite.env.orders.BuyerOrders("buyer:bob")
	suite.Require().NoError(err)
	suite.Len(buying, 1)

	other, err := suite.env.orders.BuyerOrders("buyer:carol")
	suite.Require().NoError(err)
	suite.Empty(other)
}

func (suite *OrderServiceTestSuite) TestNewOrderNotifiesSeller() {
	suite.placeOrder(1)

	notifications, err := suite.env.settings.Notifications("seller:alice")
	suite.Require().NoError(err)
	suite.Require().NotEmpty(notifications)
	suite.Equal("order", notifications[0].Type)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
