// internal/services/forum_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/repository"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

type ForumService struct {
	forum repository.ForumRepository
	bus   *events.Bus
}

type CreateDiscussionRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Category string `json:"category" validate:"required,max=50"`
	Body     string `json:"body" validate:"required,min=1"`
}

type CreateCommentRequest struct {
	Body string `json:"body" validate:"required,min=1"`
}

func NewForumService(forum repository.ForumRepository, bus *events.Bus) *ForumService {
	return &ForumService{forum: forum, bus: bus}
}

func (s *ForumService) CreateDiscussion(authorKey string, req *CreateDiscussionRequest) (*models.Discussion, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	discussion := &models.Discussion{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		AuthorKey: authorKey,
		Title:     req.Title,
		Category:  req.Category,
		Body:      req.Body,
	}
	if err := s.forum.SaveDiscussion(discussion); err != nil {
		return nil, fmt.Errorf("failed to create discussion: %w", err)
	}
	s.bus.Publish(events.TopicForum, authorKey)
	return discussion, nil
}

func (s *ForumService) Discussions() ([]models.Discussion, error) {
	return s.forum.ListDiscussions()
}

func (s *ForumService) GetDiscussion(id uuid.UUID) (*models.Discussion, error) {
	discussion, err := s.forum.GetDiscussion(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discussion: %w", err)
	}
	if discussion == nil {
		return nil, ErrNotFound
	}
	return discussion, nil
}

func (s *ForumService) LikeDiscussion(id uuid.UUID) (*models.Discussion, error) {
	discussion, err := s.GetDiscussion(id)
	if err != nil {
		return nil, err
	}
	discussion.LikeCount++
	discussion.UpdatedAt = time.Now()
	if err := s.forum.SaveDiscussion(discussion); err != nil {
		return nil, fmt.Errorf("failed to update discussion: %w", err)
	}
	s.bus.Publish(events.TopicForum, discussion.AuthorKey)
	return discussion, nil
}

func (s *ForumService) AddComment(authorKey string, discussionID uuid.UUID, req *CreateCommentRequest) (*models.Comment, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.GetDiscussion(discussionID); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &models.Comment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		DiscussionID: discussionID,
		AuthorKey:    authorKey,
		Body:         req.Body,
	}
	if err := s.forum.AppendComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	s.bus.Publish(events.TopicForum, authorKey)
	return comment, nil
}

func (s *ForumService) Comments(discussionID uuid.UUID) ([]models.Comment, error) {
	return s.forum.ListComments(discussionID)
}
