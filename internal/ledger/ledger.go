// internal/ledger/ledger.go
package ledger

import (
	"github.com/sirupsen/logrus"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/repository"
)

// Ledger is the per-seller monotonically-accumulating revenue counter.
// Credits are additive only; no debit operation exists. The underlying
// repository increment is a single atomic statement on both backends, so
// two near-simultaneous credits for the same seller cannot lose an update.
type Ledger struct {
	repo repository.RevenueRepository
	bus  *events.Bus
}

func New(repo repository.RevenueRepository, bus *events.Bus) *Ledger {
	return &Ledger{repo: repo, bus: bus}
}

// Credit adds amount to the (role, user) total. Non-positive amounts and
// empty identity fields are rejected as a silent no-op with a warning; no
// error surfaces to the caller.
func (l *Ledger) Credit(role models.UserRole, username string, amount int64) {
	if amount <= 0 || role == "" || username == "" {
		logrus.WithFields(logrus.Fields{
			"role":     role,
			"username": username,
			"amount":   amount,
		}).Warn("ledger: rejecting invalid credit")
		return
	}

	ownerKey := models.OwnerKey(role, username)
	total, err := l.repo.Add(ownerKey, amount)
	if err != nil {
		// The repository layer already fell back where it could; an error
		// here means even the local counter failed.
		logrus.WithError(err).WithField("owner", ownerKey).Error("ledger: credit failed")
		return
	}

	logrus.WithFields(logrus.Fields{
		"owner":  ownerKey,
		"amount": amount,
		"total":  total,
	}).Info("ledger: credited")

	if l.bus != nil {
		l.bus.Publish(events.TopicRevenue, ownerKey)
	}
}

// Total returns the accumulated revenue for (role, user), defaulting to
// zero for unknown identities.
func (l *Ledger) Total(role models.UserRole, username string) int64 {
	total, err := l.repo.Total(models.OwnerKey(role, username))
	if err != nil {
		logrus.WithError(err).Warn("ledger: total read failed, defaulting to zero")
		return 0
	}
	return total
}
