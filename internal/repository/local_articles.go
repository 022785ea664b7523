// internal/repository/local_articles.go
package repository

import (
	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/models"
)

// LocalArticles keeps per-author lists plus the pending queue and the
// published list as separate namespaces, mirroring the storage layout of
// the education module.
type LocalArticles struct {
	store *localstore.Store
}

func NewLocalArticles(store *localstore.Store) *LocalArticles {
	return &LocalArticles{store: store}
}

func (r *LocalArticles) authorList(authorKey string) []models.Article {
	var articles []models.Article
	r.store.Read(localstore.KeyArticles+authorKey, &articles)
	return articles
}

func (r *LocalArticles) Save(a *models.Article) error {
	list := r.authorList(a.AuthorKey)
	found := false
	for i, existing := range list {
		if existing.ID == a.ID {
			list[i] = *a
			found = true
			break
		}
	}
	if !found {
		list = append(list, *a)
	}
	r.store.Write(localstore.KeyArticles+a.AuthorKey, list)

	r.syncQueue(localstore.KeyPendingQ, a, a.Status == models.ArticleStatusPending)
	r.syncQueue(localstore.KeyPublished, a, a.Status == models.ArticleStatusPublished)
	return nil
}

// syncQueue keeps the pending queue and published list consistent with the
// article's status: present when it belongs there, removed otherwise.
func (r *LocalArticles) syncQueue(key string, a *models.Article, belongs bool) {
	var list []models.Article
	r.store.Read(key, &list)
	for i, existing := range list {
		if existing.ID == a.ID {
			if belongs {
				list[i] = *a
			} else {
				list = append(list[:i], list[i+1:]...)
			}
			r.store.Write(key, list)
			return
		}
	}
	if belongs {
		list = append(list, *a)
		r.store.Write(key, list)
	}
}

func (r *LocalArticles) Get(id uuid.UUID) (*models.Article, error) {
	for _, key := range r.store.Keys(localstore.KeyArticles) {
		var list []models.Article
		r.store.Read(key, &list)
		for i := range list {
			if list[i].ID == id {
				return &list[i], nil
			}
		}
	}
	return nil, nil
}

func (r *LocalArticles) ListByAuthor(authorKey string) ([]models.Article, error) {
	return r.authorList(authorKey), nil
}

func (r *LocalArticles) ListPending() ([]models.Article, error) {
	var list []models.Article
	r.store.Read(localstore.KeyPendingQ, &list)
	return list, nil
}

func (r *LocalArticles) ListPublished() ([]models.Article, error) {
	var list []models.Article
	r.store.Read(localstore.KeyPublished, &list)
	return list, nil
}

// ReplaceAuthorList mirrors a remote author read into the warm cache.
func (r *LocalArticles) ReplaceAuthorList(authorKey string, articles []models.Article) {
	r.store.Write(localstore.KeyArticles+authorKey, articles)
}
