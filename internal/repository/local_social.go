// internal/repository/local_social.go
package repository

import (
	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/models"
)

// LocalChat appends messages to one JSON log per conversation.
type LocalChat struct {
	store *localstore.Store
}

func NewLocalChat(store *localstore.Store) *LocalChat {
	return &LocalChat{store: store}
}

func (r *LocalChat) Append(m *models.ChatMessage) error {
	var list []models.ChatMessage
	r.store.Read(localstore.KeyChat+m.ConversationID, &list)
	list = append(list, *m)
	r.store.Write(localstore.KeyChat+m.ConversationID, list)
	return nil
}

func (r *LocalChat) List(conversationID string) ([]models.ChatMessage, error) {
	var list []models.ChatMessage
	r.store.Read(localstore.KeyChat+conversationID, &list)
	return list, nil
}

// LocalForum keeps the discussion list under one key and comments under one
// key per discussion.
type LocalForum struct {
	store *localstore.Store
}

func NewLocalForum(store *localstore.Store) *LocalForum {
	return &LocalForum{store: store}
}

func (r *LocalForum) discussions() []models.Discussion {
	var list []models.Discussion
	r.store.Read(localstore.KeyDiscussions, &list)
	return list
}

func (r *LocalForum) SaveDiscussion(d *models.Discussion) error {
	list := r.discussions()
	for i, existing := range list {
		if existing.ID == d.ID {
			list[i] = *d
			r.store.Write(localstore.KeyDiscussions, list)
			return nil
		}
	}
	list = append(list, *d)
	r.store.Write(localstore.KeyDiscussions, list)
	return nil
}

func (r *LocalForum) GetDiscussion(id uuid.UUID) (*models.Discussion, error) {
	for _, d := range r.discussions() {
		if d.ID == id {
			found := d
			return &found, nil
		}
	}
	return nil, nil
}

func (r *LocalForum) ListDiscussions() ([]models.Discussion, error) {
	return r.discussions(), nil
}

func (r *LocalForum) AppendComment(c *models.Comment) error {
	key := localstore.KeyComments + c.DiscussionID.String()
	var list []models.Comment
	r.store.Read(key, &list)
	list = append(list, *c)
	r.store.Write(key, list)
	return nil
}

func (r *LocalForum) ListComments(discussionID uuid.UUID) ([]models.Comment, error) {
	var list []models.Comment
	r.store.Read(localstore.KeyComments+discussionID.String(), &list)
	return list, nil
}
