// internal/repository/remote_social.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agrikom/agrimarket-backend/internal/models"
)

type RemoteChat struct {
	db *gorm.DB
}

func NewRemoteChat(db *gorm.DB) *RemoteChat {
	return &RemoteChat{db: db}
}

func (r *RemoteChat) Append(m *models.ChatMessage) error {
	if err := r.db.Create(m).Error; err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

func (r *RemoteChat) List(conversationID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

type RemoteForum struct {
	db *gorm.DB
}

func NewRemoteForum(db *gorm.DB) *RemoteForum {
	return &RemoteForum{db: db}
}

func (r *RemoteForum) SaveDiscussion(d *models.Discussion) error {
	if err := r.db.Save(d).Error; err != nil {
		return fmt.Errorf("failed to save discussion: %w", err)
	}
	return nil
}

func (r *RemoteForum) GetDiscussion(id uuid.UUID) (*models.Discussion, error) {
	var d models.Discussion
	if err := r.db.First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch discussion: %w", err)
	}
	return &d, nil
}

func (r *RemoteForum) ListDiscussions() ([]models.Discussion, error) {
	var discussions []models.Discussion
	if err := r.db.Order("created_at ASC").Find(&discussions).Error; err != nil {
		return nil, fmt.Errorf("failed to list discussions: %w", err)
	}
	return discussions, nil
}

func (r *RemoteForum) AppendComment(c *models.Comment) error {
	if err := r.db.Create(c).Error; err != nil {
		return fmt.Errorf("failed to append comment: %w", err)
	}
	return nil
}

func (r *RemoteForum) ListComments(discussionID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("discussion_id = ?", discussionID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
