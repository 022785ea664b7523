// internal/repository/interfaces.go
package repository

import (
	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/models"
)

// One repository interface per entity, with a remote (gorm) and a local
// (key-value) implementation behind each. The facade never branches on
// backend availability itself: the factory selects either the local
// implementation alone or a dual decorator that routes remote-first with
// write-through mirroring and silent fallback.

type ProductRepository interface {
	// Save upserts a product into its owner's list, making it the
	// most-recently-written record for its identity.
	Save(p *models.Product) error
	Delete(id uuid.UUID, ownerKey string) error
	Get(id uuid.UUID) (*models.Product, error)
	// ListByOwner matches the stored owner key exactly, case-sensitively.
	ListByOwner(ownerKey string) ([]models.Product, error)
	// ListAll returns every product across owners, oldest write first, so
	// that deduplication keeping the last occurrence is last-write-wins.
	ListAll() ([]models.Product, error)
	// Snapshot and SaveSnapshot hold the derived marketplace view. The
	// remote implementation derives it from the table and treats saves as
	// a no-op; the local implementation persists the recomputed list.
	Snapshot() ([]models.Product, error)
	SaveSnapshot(products []models.Product) error
}

type LikesRepository interface {
	Get(ownerKey string) ([]string, error)
	Save(ownerKey string, productIDs []string) error
}

type OrderRepository interface {
	Save(o *models.Order) error
	Get(id uuid.UUID) (*models.Order, error)
	ListBySeller(sellerKey string) ([]models.Order, error)
	ListByBuyer(buyerKey string) ([]models.Order, error)
}

type ArticleRepository interface {
	Save(a *models.Article) error
	Get(id uuid.UUID) (*models.Article, error)
	ListByAuthor(authorKey string) ([]models.Article, error)
	ListPending() ([]models.Article, error)
	ListPublished() ([]models.Article, error)
}

type ForumRepository interface {
	SaveDiscussion(d *models.Discussion) error
	GetDiscussion(id uuid.UUID) (*models.Discussion, error)
	ListDiscussions() ([]models.Discussion, error)
	AppendComment(c *models.Comment) error
	ListComments(discussionID uuid.UUID) ([]models.Comment, error)
}

type ChatRepository interface {
	Append(m *models.ChatMessage) error
	List(conversationID string) ([]models.ChatMessage, error)
}

type RobotRepository interface {
	SaveStatus(s *models.RobotStatus) error
	Status(robotID string) (*models.RobotStatus, error)
	AppendActivity(a *models.RobotActivity) error
	Activities(robotID string, limit int) ([]models.RobotActivity, error)
	AppendLog(l *models.RobotLog) error
	Logs(robotID string, limit int) ([]models.RobotLog, error)
}

type RevenueRepository interface {
	// Add atomically credits amount and returns the new total.
	Add(ownerKey string, amount int64) (int64, error)
	Total(ownerKey string) (int64, error)
}

type UserRepository interface {
	Save(u *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByOwnerKey(ownerKey string) (*models.User, error)
	List() ([]models.User, error)
}

type SettingsRepository interface {
	Settings(ownerKey string) (models.JSONB, error)
	SaveSettings(ownerKey string, settings models.JSONB) error
	AppendNotification(n *models.Notification) error
	Notifications(ownerKey string) ([]models.Notification, error)
}

// Repositories bundles the per-entity repositories selected at startup.
type Repositories struct {
	Products ProductRepository
	Likes    LikesRepository
	Orders   OrderRepository
	Articles ArticleRepository
	Forum    ForumRepository
	Chat     ChatRepository
	Robot    RobotRepository
	Revenue  RevenueRepository
	Users    UserRepository
	Settings SettingsRepository
}
