// internal/services/marketplace_service_test.go
package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/ledger"
	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/repository"
)

// testEnv wires the full facade stack over a throwaway local store, the
// same shape the factory produces when no remote backend is configured.
type testEnv struct {
	bus         *events.Bus
	repos       *repository.Repositories
	ledger      *ledger.Ledger
	settings    *SettingsService
	marketplace *MarketplaceService
	orders      *OrderService
	articles    *ArticleService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "facade.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	bus := events.NewBus()
	repos := repository.New(nil, store)
	l := ledger.New(repos.Revenue, bus)
	settings := NewSettingsService(repos.Settings, bus)
	marketplace := NewMarketplaceService(repos.Products, repos.Likes, bus)

	return &testEnv{
		bus:         bus,
		repos:       repos,
		ledger:      l,
		settings:    settings,
		marketplace: marketplace,
		orders:      NewOrderService(repos.Orders, marketplace, l, settings, bus),
		articles:    NewArticleService(repos.Articles, settings, bus),
	}
}

type MarketplaceServiceTestSuite struct {
	suite.Suite
	env *testEnv
}

func (suite *MarketplaceServiceTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T())
}

func (suite *MarketplaceServiceTestSuite) createProduct(owner, name string, price int64) *models.Product {
	product, err := suite.env.marketplace.CreateProduct(owner, &CreateProductRequest{
		Name:     name,
		Price:    price,
		Category: "produce",
		Stock:    10,
	})
	suite.Require().NoError(err)
	return product
}

func (suite *MarketplaceServiceTestSuite) TestCreateProductAppearsInMarketplace() {
	product := suite.createProduct("seller:alice", "Beras Merah", 25000)

	snapshot, err := suite.env.marketplace.Marketplace()
	suite.Require().NoError(err)
	suite.Require().Len(snapshot, 1)
	suite.Equal(product.ID, snapshot[0].ID)
	suite.Equal("seller:alice", snapshot[0].OwnerKey)
}

func (suite *MarketplaceServiceTestSuite) TestOnlyLegitimateSellingRolesCanPublish() {
	for _, owner := range []string{"seller:a", "farmer:b", "compost_processor:c"} {
		_, err := suite.env.marketplace.CreateProduct(owner, &CreateProductRequest{
			Name: "Pupuk", Price: 100, Category: "produce",
		})
		suite.NoError(err, owner)
	}

	_, err := suite.env.marketplace.CreateProduct("buyer:bob", &CreateProductRequest{
		Name: "Pupuk", Price: 100, Category: "produce",
	})
	suite.ErrorIs(err, ErrInvalidRole)

	_, err = suite.env.marketplace.CreateProduct("not-a-key", &CreateProductRequest{
		Name: "Pupuk", Price: 100, Category: "produce",
	})
	suite.ErrorIs(err, ErrInvalidRole)
}

func (suite *MarketplaceServiceTestSuite) TestDeactivatedProductLeavesSnapshotAndReturns() {
	product := suite.createProduct("seller:alice", "Beras", 25000)

	_, err := suite.env.marketplace.UpdateProduct("seller:alice", product.ID, &UpdateProductRequest{
		Status: models.ProductStatusInactive,
	})
	suite.Require().NoError(err)

	snapshot, err := suite.env.marketplace.Marketplace()
	suite.Require().NoError(err)
	suite.Empty(snapshot, "inactive products are filtered from the marketplace")

	_, err = suite.env.marketplace.UpdateProduct("seller:alice", product.ID, &UpdateProductRequest{
		Status: models.ProductStatusActive,
	})
	suite.Require().NoError(err)

	snapshot, err = suite.env.marketplace.Marketplace()
	suite.Require().NoError(err)
	suite.Len(snapshot, 1)
}

func (suite *MarketplaceServiceTestSuite) TestActiveStatusMatchIgnoresCaseAndPadding() {
	product := suite.createProduct("seller:alice", "Beras", 25000)

	_, err := suite.env.marketplace.UpdateProduct("seller:alice", product.ID, &UpdateProductRequest{
		Status: models.ProductStatus("  Active "),
	})
	suite.Require().NoError(err)

	snapshot, err := suite.env.marketplace.Marketplace()
	suite.Require().NoError(err)
	suite.Len(snapshot, 1, "status matching trims and case-folds")
}

func (suite *MarketplaceServiceTestSuite) TestUpdateKeepsSingleSnapshotEntry() {
	product := suite.createProduct("seller:alice", "Beras", 25000)

	updated, err := suite.env.marketplace.UpdateProduct("seller:alice", product.ID, &UpdateProductRequest{
		Price: 30000,
	})
	suite.Require().NoError(err)
	suite.Equal(int64(30000), updated.Price)

	snapshot, err := suite.env.marketplace.Marketplace()
	suite.Require().NoError(err)
	suite.Require().Len(snapshot, 1, "one entry per product identity, last write wins")
	suite.Equal(int64(30000), snapshot[0].Price)
}

func (suite *MarketplaceServiceTestSuite) TestSnapshotMergesAcrossOwners() {
	suite.createProduct("seller:alice", "Beras", 25000)
	suite.createProduct("farmer:dewi", "Jagung", 12000)

	snapshot, err := suite.env.marketplace.Marketplace()
	suite.Require().NoError(err)
	suite.Len(snapshot, 2)
}

func (suite *MarketplaceServiceTestSuite) TestRebuildSnapshotIsIdempotent() {
	suite.createProduct("seller:alice", "Beras", 25000)
	suite.createProduct("farmer:dewi", "Jagung", 12000)

	first, err := suite.env.marketplace.RebuildSnapshot()
	suite.Require().NoError(err)
	second, err := suite.env.marketplace.RebuildSnapshot()
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func (suite *MarketplaceServiceTestSuite) TestCatalogMatchesOwnerKeyExactly() {
	suite.createProduct("seller:alice", "Beras", 25000)

	mine, err := suite.env.marketplace.Catalog("seller:alice")
	suite.Require().NoError(err)
	suite.Len(mine, 1)

	// A differently cased identity is a different owner and sees nothing.
	other, err := suite.env.marketplace.Catalog("seller:Alice")
	suite.Require().NoError(err)
	suite.Empty(other)
}

func (suite *MarketplaceServiceTestSuite) TestUpdateByNonOwnerIsForbidden() {
	product := suite.createProduct("seller:alice", "Beras", 25000)

	_, err := suite.env.marketplace.UpdateProduct("seller:mallory", product.ID, &UpdateProductRequest{
		Price: 1,
	})
	suite.ErrorIs(err, ErrForbidden)

	err = suite.env.marketplace.DeleteProduct("seller:mallory", product.ID)
	suite.ErrorIs(err, ErrForbidden)
}

func (suite *MarketplaceServiceTestSuite) TestDeleteRemovesFromCatalogAndSnapshot() {
	product := suite.createProduct("seller:alice", "Beras", 25000)

	suite.Require().NoError(suite.env.marketplace.DeleteProduct("seller:alice", product.ID))

	mine, err := suite.env.marketplace.Catalog("seller:alice")
	suite.Require().NoError(err)
	suite.Empty(mine)

	snapshot, err := suite.env.marketplace.Marketplace()
	suite.Require().NoError(err)
	suite.Empty(snapshot)
}

func (suite *MarketplaceServiceTestSuite) TestToggleLikeFlipsMembership() {
	product := suite.createProduct("seller:alice", "Beras", 25000)

	liked, err := suite.env.marketplace.ToggleLike("buyer:bob", product.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{product.ID.String()}, liked)

	liked, err = suite.env.marketplace.ToggleLike("buyer:bob", product.ID)
	suite.Require().NoError(err)
	suite.Empty(liked)
}

func (suite *MarketplaceServiceTestSuite) TestMutationsPublishMarketplaceNotifications() {
	var seqs []uint64
	suite.env.bus.Subscribe(events.TopicMarketplace, func(n events.Notification) {
		seqs = append(seqs, n.Seq)
	})

	product := suite.createProduct("seller:alice", "Beras", 25000)
	_, err := suite.env.marketplace.UpdateProduct("seller:alice", product.ID, &UpdateProductRequest{Price: 30000})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.env.marketplace.DeleteProduct("seller:alice", product.ID))

	suite.Equal([]uint64{1, 2, 3}, seqs)
}

func TestMarketplaceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MarketplaceServiceTestSuite))
}
