// internal/repository/factory.go
package repository

import (
	"gorm.io/gorm"

	"github.com/agrikom/agrimarket-backend/internal/localstore"
)

// New selects the backing implementations once at startup. With a remote
// connection the dual decorators route remote-first with local write-through
// and fallback; without one every repository is purely local. Nothing else
// in the codebase checks which backend is active.
func New(remote *gorm.DB, store *localstore.Store) *Repositories {
	localProducts := NewLocalProducts(store)
	localLikes := NewLocalLikes(store)
	localOrders := NewLocalOrders(store)
	localArticles := NewLocalArticles(store)
	localForum := NewLocalForum(store)
	localChat := NewLocalChat(store)
	localRobot := NewLocalRobot(store)
	localRevenue := NewLocalRevenue(store)
	localUsers := NewLocalUsers(store)
	localSettings := NewLocalSettings(store)

	if remote == nil {
		return &Repositories{
			Products: localProducts,
			Likes:    localLikes,
			Orders:   localOrders,
			Articles: localArticles,
			Forum:    localForum,
			Chat:     localChat,
			Robot:    localRobot,
			Revenue:  localRevenue,
			Users:    localUsers,
			Settings: localSettings,
		}
	}

	return &Repositories{
		Products: NewDualProducts(NewRemoteProducts(remote), localProducts),
		Likes:    NewDualLikes(NewRemoteLikes(remote), localLikes),
		Orders:   NewDualOrders(NewRemoteOrders(remote), localOrders),
		Articles: NewDualArticles(NewRemoteArticles(remote), localArticles),
		Forum:    NewDualForum(NewRemoteForum(remote), localForum),
		Chat:     NewDualChat(NewRemoteChat(remote), localChat),
		Robot:    NewDualRobot(NewRemoteRobot(remote), localRobot),
		Revenue:  NewDualRevenue(NewRemoteRevenue(remote), localRevenue),
		Users:    NewDualUsers(NewRemoteUsers(remote), localUsers),
		Settings: NewDualSettings(NewRemoteSettings(remote), localSettings),
	}
}
