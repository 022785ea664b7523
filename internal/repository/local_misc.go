// internal/repository/local_misc.go
package repository

import (
	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/models"
)

// LocalRevenue backs the ledger with the store's atomic counters.
type LocalRevenue struct {
	store *localstore.Store
}

func NewLocalRevenue(store *localstore.Store) *LocalRevenue {
	return &LocalRevenue{store: store}
}

func (r *LocalRevenue) Add(ownerKey string, amount int64) (int64, error) {
	return r.store.Add(localstore.KeyRevenue+ownerKey, amount), nil
}

func (r *LocalRevenue) Total(ownerKey string) (int64, error) {
	return r.store.Total(localstore.KeyRevenue + ownerKey), nil
}

// SetTotal mirrors a remote total into the warm cache.
func (r *LocalRevenue) SetTotal(ownerKey string, total int64) {
	r.store.SetTotal(localstore.KeyRevenue+ownerKey, total)
}

// LocalUsers stores one record per owner key.
type LocalUsers struct {
	store *localstore.Store
}

// storedUser re-adds the password hash, which the model excludes from its
// JSON form to keep it out of API responses.
type storedUser struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

func (su storedUser) user() *models.User {
	u := su.User
	u.PasswordHash = su.PasswordHash
	return &u
}

func NewLocalUsers(store *localstore.Store) *LocalUsers {
	return &LocalUsers{store: store}
}

func (r *LocalUsers) Save(u *models.User) error {
	r.store.Write(localstore.KeyUsers+u.OwnerKey(), storedUser{User: *u, PasswordHash: u.PasswordHash})
	return nil
}

func (r *LocalUsers) FindByEmail(email string) (*models.User, error) {
	for _, key := range r.store.Keys(localstore.KeyUsers) {
		var su storedUser
		if r.store.Read(key, &su) && su.Email == email {
			return su.user(), nil
		}
	}
	return nil, nil
}

func (r *LocalUsers) FindByOwnerKey(ownerKey string) (*models.User, error) {
	var su storedUser
	if !r.store.Read(localstore.KeyUsers+ownerKey, &su) {
		return nil, nil
	}
	return su.user(), nil
}

func (r *LocalUsers) List() ([]models.User, error) {
	var out []models.User
	for _, key := range r.store.Keys(localstore.KeyUsers) {
		var su storedUser
		if r.store.Read(key, &su) {
			out = append(out, *su.user())
		}
	}
	return out, nil
}

// LocalSettings stores the settings blob and the notification list per user.
type LocalSettings struct {
	store *localstore.Store
}

func NewLocalSettings(store *localstore.Store) *LocalSettings {
	return &LocalSettings{store: store}
}

func (r *LocalSettings) Settings(ownerKey string) (models.JSONB, error) {
	var blob models.JSONB
	r.store.Read(localstore.KeySettings+ownerKey, &blob)
	return blob, nil
}

func (r *LocalSettings) SaveSettings(ownerKey string, settings models.JSONB) error {
	r.store.Write(localstore.KeySettings+ownerKey, settings)
	return nil
}

func (r *LocalSettings) AppendNotification(n *models.Notification) error {
	key := localstore.KeyNotifs + n.OwnerKey
	var list []models.Notification
	r.store.Read(key, &list)
	list = append(list, *n)
	r.store.Write(key, list)
	return nil
}

func (r *LocalSettings) Notifications(ownerKey string) ([]models.Notification, error) {
	var list []models.Notification
	r.store.Read(localstore.KeyNotifs+ownerKey, &list)
	return list, nil
}
