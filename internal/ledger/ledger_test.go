// internal/ledger/ledger_test.go
package ledger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/repository"
)

type LedgerTestSuite struct {
	suite.Suite
	bus    *events.Bus
	ledger *Ledger
}

func (suite *LedgerTestSuite) SetupTest() {
	store, err := localstore.Open(filepath.Join(suite.T().TempDir(), "ledger.db"))
	require.NoError(suite.T(), err)
	suite.T().Cleanup(func() { store.Close() })

	suite.bus = events.NewBus()
	repos := repository.New(nil, store)
	suite.ledger = New(repos.Revenue, suite.bus)
}

func (suite *LedgerTestSuite) TestCreditAccumulates() {
	suite.ledger.Credit(models.UserRoleSeller, "alice", 50000)
	suite.ledger.Credit(models.UserRoleSeller, "alice", 25000)

	suite.Equal(int64(75000), suite.ledger.Total(models.UserRoleSeller, "alice"))
}

func (suite *LedgerTestSuite) TestTotalsAreScopedByRoleAndUsername() {
	suite.ledger.Credit(models.UserRoleSeller, "alice", 10000)
	suite.ledger.Credit(models.UserRoleFarmer, "alice", 20000)

	suite.Equal(int64(10000), suite.ledger.Total(models.UserRoleSeller, "alice"))
	suite.Equal(int64(20000), suite.ledger.Total(models.UserRoleFarmer, "alice"))
	suite.Equal(int64(0), suite.ledger.Total(models.UserRoleSeller, "bob"))
}

func (suite *LedgerTestSuite) TestInvalidCreditsAreSilentNoOps() {
	suite.ledger.Credit(models.UserRoleSeller, "alice", 0)
	suite.ledger.Credit(models.UserRoleSeller, "alice", -500)
	suite.ledger.Credit("", "alice", 100)
	suite.ledger.Credit(models.UserRoleSeller, "", 100)

	suite.Equal(int64(0), suite.ledger.Total(models.UserRoleSeller, "alice"))
}

func (suite *LedgerTestSuite) TestCreditPublishesRevenueNotification() {
	var got []events.Notification
	suite.bus.Subscribe(events.TopicRevenue, func(n events.Notification) {
		got = append(got, n)
	})

	suite.ledger.Credit(models.UserRoleSeller, "alice", 1000)
	suite.ledger.Credit(models.UserRoleSeller, "alice", 0) // rejected, no notification

	suite.Len(got, 1)
	suite.Equal("seller:alice", got[0].Owner)
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}
