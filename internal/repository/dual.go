// internal/repository/dual.go
package repository

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/agrikom/agrimarket-backend/internal/metrics"
	"github.com/agrikom/agrimarket-backend/internal/models"
)

// The dual decorators implement the fallback policy in one place: attempt
// the remote operation, mirror successful results into the local store so
// later local-only reads stay warm, and on any remote error log, count, and
// serve the equivalent local operation instead. Callers never see the
// remote/local distinction.

func fellBack(entity, op string, err error) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"entity": entity,
		"op":     op,
	}).Warn("remote store operation failed, falling back to local")
	metrics.ObserveFallback(entity, op)
}

type DualProducts struct {
	remote *RemoteProducts
	local  *LocalProducts
}

func NewDualProducts(remote *RemoteProducts, local *LocalProducts) *DualProducts {
	return &DualProducts{remote: remote, local: local}
}

func (d *DualProducts) Save(p *models.Product) error {
	if err := d.remote.Save(p); err != nil {
		fellBack("products", "save", err)
		return d.local.Save(p)
	}
	// Write-through so the local copy stays warm.
	return d.local.Save(p)
}

func (d *DualProducts) Delete(id uuid.UUID, ownerKey string) error {
	if err := d.remote.Delete(id, ownerKey); err != nil {
		fellBack("products", "delete", err)
	}
	return d.local.Delete(id, ownerKey)
}

func (d *DualProducts) Get(id uuid.UUID) (*models.Product, error) {
	p, err := d.remote.Get(id)
	if err != nil {
		fellBack("products", "get", err)
		return d.local.Get(id)
	}
	return p, nil
}

func (d *DualProducts) ListByOwner(ownerKey string) ([]models.Product, error) {
	list, err := d.remote.ListByOwner(ownerKey)
	if err != nil {
		fellBack("products", "list_by_owner", err)
		return d.local.ListByOwner(ownerKey)
	}
	d.local.ReplaceOwnerList(ownerKey, list)
	return list, nil
}

func (d *DualProducts) ListAll() ([]models.Product, error) {
	list, err := d.remote.ListAll()
	if err != nil {
		fellBack("products", "list_all", err)
		return d.local.ListAll()
	}
	return list, nil
}

func (d *DualProducts) Snapshot() ([]models.Product, error) {
	list, err := d.remote.Snapshot()
	if err != nil {
		fellBack("products", "snapshot", err)
		return d.local.Snapshot()
	}
	d.local.SaveSnapshot(list)
	return list, nil
}

func (d *DualProducts) SaveSnapshot(products []models.Product) error {
	// The remote snapshot is derived, never persisted; the local copy is
	// the canonical persisted snapshot either way.
	return d.local.SaveSnapshot(products)
}

type DualLikes struct {
	remote *RemoteLikes
	local  *LocalLikes
}

func NewDualLikes(remote *RemoteLikes, local *LocalLikes) *DualLikes {
	return &DualLikes{remote: remote, local: local}
}

func (d *DualLikes) Get(ownerKey string) ([]string, error) {
	ids, err := d.remote.Get(ownerKey)
	if err != nil {
		fellBack("likes", "get", err)
		return d.local.Get(ownerKey)
	}
	d.local.Save(ownerKey, ids)
	return ids, nil
}

func (d *DualLikes) Save(ownerKey string, productIDs []string) error {
	if err := d.remote.Save(ownerKey, productIDs); err != nil {
		fellBack("likes", "save", err)
	}
	return d.local.Save(ownerKey, productIDs)
}

type DualOrders struct {
	remote *RemoteOrders
	local  *LocalOrders
}

func NewDualOrders(remote *RemoteOrders, local *LocalOrders) *DualOrders {
	return &DualOrders{remote: remote, local: local}
}

func (d *DualOrders) Save(o *models.Order) error {
	if err := d.remote.Save(o); err != nil {
		fellBack("orders", "save", err)
	}
	return d.local.Save(o)
}

func (d *DualOrders) Get(id uuid.UUID) (*models.Order, error) {
	o, err := d.remote.Get(id)
	if err != nil {
		fellBack("orders", "get", err)
		return d.local.Get(id)
	}
	return o, nil
}

func (d *DualOrders) ListBySeller(sellerKey string) ([]models.Order, error) {
	list, err := d.remote.ListBySeller(sellerKey)
	if err != nil {
		fellBack("orders", "list_by_seller", err)
		return d.local.ListBySeller(sellerKey)
	}
	d.local.ReplaceSellerList(sellerKey, list)
	return list, nil
}

func (d *DualOrders) ListByBuyer(buyerKey string) ([]models.Order, error) {
	list, err := d.remote.ListByBuyer(buyerKey)
	if err != nil {
		fellBack("orders", "list_by_buyer", err)
		return d.local.ListByBuyer(buyerKey)
	}
	return list, nil
}

type DualArticles struct {
	remote *RemoteArticles
	local  *LocalArticles
}

func NewDualArticles(remote *RemoteArticles, local *LocalArticles) *DualArticles {
	return &DualArticles{remote: remote, local: local}
}

func (d *DualArticles) Save(a *models.Article) error {
	if err := d.remote.Save(a); err != nil {
		fellBack("articles", "save", err)
	}
	return d.local.Save(a)
}

func (d *DualArticles) Get(id uuid.UUID) (*models.Article, error) {
	a, err := d.remote.Get(id)
	if err != nil {
		fellBack("articles", "get", err)
		return d.local.Get(id)
	}
	return a, nil
}

func (d *DualArticles) ListByAuthor(authorKey string) ([]models.Article, error) {
	list, err := d.remote.ListByAuthor(authorKey)
	if err != nil {
		fellBack("articles", "list_by_author", err)
		return d.local.ListByAuthor(authorKey)
	}
	d.local.ReplaceAuthorList(authorKey, list)
	return list, nil
}

func (d *DualArticles) ListPending() ([]models.Article, error) {
	list, err := d.remote.ListPending()
	if err != nil {
		fellBack("articles", "list_pending", err)
		return d.local.ListPending()
	}
	return list, nil
}

func (d *DualArticles) ListPublished() ([]models.Article, error) {
	list, err := d.remote.ListPublished()
	if err != nil {
		fellBack("articles", "list_published", err)
		return d.local.ListPublished()
	}
	return list, nil
}

type DualForum struct {
	remote *RemoteForum
	local  *LocalForum
}

func NewDualForum(remote *RemoteForum, local *LocalForum) *DualForum {
	return &DualForum{remote: remote, local: local}
}

func (d *DualForum) SaveDiscussion(disc *models.Discussion) error {
	if err := d.remote.SaveDiscussion(disc); err != nil {
		fellBack("forum", "save_discussion", err)
	}
	return d.local.SaveDiscussion(disc)
}

func (d *DualForum) GetDiscussion(id uuid.UUID) (*models.Discussion, error) {
	disc, err := d.remote.GetDiscussion(id)
	if err != nil {
		fellBack("forum", "get_discussion", err)
		return d.local.GetDiscussion(id)
	}
	return disc, nil
}

func (d *DualForum) ListDiscussions() ([]models.Discussion, error) {
	list, err := d.remote.ListDiscussions()
	if err != nil {
		fellBack("forum", "list_discussions", err)
		return d.local.ListDiscussions()
	}
	return list, nil
}

func (d *DualForum) AppendComment(c *models.Comment) error {
	if err := d.remote.AppendComment(c); err != nil {
		fellBack("forum", "append_comment", err)
	}
	return d.local.AppendComment(c)
}

func (d *DualForum) ListComments(discussionID uuid.UUID) ([]models.Comment, error) {
	list, err := d.remote.ListComments(discussionID)
	if err != nil {
		fellBack("forum", "list_comments", err)
		return d.local.ListComments(discussionID)
	}
	return list, nil
}

type DualChat struct {
	remote *RemoteChat
	local  *LocalChat
}

func NewDualChat(remote *RemoteChat, local *LocalChat) *DualChat {
	return &DualChat{remote: remote, local: local}
}

func (d *DualChat) Append(m *models.ChatMessage) error {
	if err := d.remote.Append(m); err != nil {
		fellBack("chat", "append", err)
	}
	return d.local.Append(m)
}

func (d *DualChat) List(conversationID string) ([]models.ChatMessage, error) {
	list, err := d.remote.List(conversationID)
	if err != nil {
		fellBack("chat", "list", err)
		return d.local.List(conversationID)
	}
	return list, nil
}

type DualRobot struct {
	remote *RemoteRobot
	local  *LocalRobot
}

func NewDualRobot(remote *RemoteRobot, local *LocalRobot) *DualRobot {
	return &DualRobot{remote: remote, local: local}
}

func (d *DualRobot) SaveStatus(s *models.RobotStatus) error {
	if err := d.remote.SaveStatus(s); err != nil {
		fellBack("robot", "save_status", err)
	}
	return d.local.SaveStatus(s)
}

func (d *DualRobot) Status(robotID string) (*models.RobotStatus, error) {
	s, err := d.remote.Status(robotID)
	if err != nil {
		fellBack("robot", "status", err)
		return d.local.Status(robotID)
	}
	return s, nil
}

func (d *DualRobot) AppendActivity(a *models.RobotActivity) error {
	if err := d.remote.AppendActivity(a); err != nil {
		fellBack("robot", "append_activity", err)
	}
	return d.local.AppendActivity(a)
}

func (d *DualRobot) Activities(robotID string, limit int) ([]models.RobotActivity, error) {
	list, err := d.remote.Activities(robotID, limit)
	if err != nil {
		fellBack("robot", "activities", err)
		return d.local.Activities(robotID, limit)
	}
	return list, nil
}

func (d *DualRobot) AppendLog(l *models.RobotLog) error {
	if err := d.remote.AppendLog(l); err != nil {
		fellBack("robot", "append_log", err)
	}
	return d.local.AppendLog(l)
}

func (d *DualRobot) Logs(robotID string, limit int) ([]models.RobotLog, error) {
	list, err := d.remote.Logs(robotID, limit)
	if err != nil {
		fellBack("robot", "logs", err)
		return d.local.Logs(robotID, limit)
	}
	return list, nil
}

type DualRevenue struct {
	remote *RemoteRevenue
	local  *LocalRevenue
}

func NewDualRevenue(remote *RemoteRevenue, local *LocalRevenue) *DualRevenue {
	return &DualRevenue{remote: remote, local: local}
}

func (d *DualRevenue) Add(ownerKey string, amount int64) (int64, error) {
	total, err := d.remote.Add(ownerKey, amount)
	if err != nil {
		fellBack("revenue", "add", err)
		return d.local.Add(ownerKey, amount)
	}
	d.local.SetTotal(ownerKey, total)
	return total, nil
}

func (d *DualRevenue) Total(ownerKey string) (int64, error) {
	total, err := d.remote.Total(ownerKey)
	if err != nil {
		fellBack("revenue", "total", err)
		return d.local.Total(ownerKey)
	}
	d.local.SetTotal(ownerKey, total)
	return total, nil
}

type DualUsers struct {
	remote *RemoteUsers
	local  *LocalUsers
}

func NewDualUsers(remote *RemoteUsers, local *LocalUsers) *DualUsers {
	return &DualUsers{remote: remote, local: local}
}

func (d *DualUsers) Save(u *models.User) error {
	if err := d.remote.Save(u); err != nil {
		fellBack("users", "save", err)
	}
	return d.local.Save(u)
}

func (d *DualUsers) FindByEmail(email string) (*models.User, error) {
	u, err := d.remote.FindByEmail(email)
	if err != nil {
		fellBack("users", "find_by_email", err)
		return d.local.FindByEmail(email)
	}
	return u, nil
}

func (d *DualUsers) FindByOwnerKey(ownerKey string) (*models.User, error) {
	u, err := d.remote.FindByOwnerKey(ownerKey)
	if err != nil {
		fellBack("users", "find_by_owner_key", err)
		return d.local.FindByOwnerKey(ownerKey)
	}
	return u, nil
}

func (d *DualUsers) List() ([]models.User, error) {
	list, err := d.remote.List()
	if err != nil {
		fellBack("users", "list", err)
		return d.local.List()
	}
	return list, nil
}

type DualSettings struct {
	remote *RemoteSettings
	local  *LocalSettings
}

func NewDualSettings(remote *RemoteSettings, local *LocalSettings) *DualSettings {
	return &DualSettings{remote: remote, local: local}
}

func (d *DualSettings) Settings(ownerKey string) (models.JSONB, error) {
	blob, err := d.remote.Settings(ownerKey)
	if err != nil {
		fellBack("settings", "get", err)
		return d.local.Settings(ownerKey)
	}
	d.local.SaveSettings(ownerKey, blob)
	return blob, nil
}

func (d *DualSettings) SaveSettings(ownerKey string, settings models.JSONB) error {
	if err := d.remote.SaveSettings(ownerKey, settings); err != nil {
		fellBack("settings", "save", err)
	}
	return d.local.SaveSettings(ownerKey, settings)
}

func (d *DualSettings) AppendNotification(n *models.Notification) error {
	if err := d.remote.AppendNotification(n); err != nil {
		fellBack("settings", "append_notification", err)
	}
	return d.local.AppendNotification(n)
}

func (d *DualSettings) Notifications(ownerKey string) ([]models.Notification, error) {
	list, err := d.remote.Notifications(ownerKey)
	if err != nil {
		fellBack("settings", "notifications", err)
		return d.local.Notifications(ownerKey)
	}
	return list, nil
}
