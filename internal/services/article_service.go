// internal/services/article_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/repository"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

// ArticleService handles educational articles: authors draft and submit,
// admins approve or reject, readers see only published articles.
type ArticleService struct {
	articles repository.ArticleRepository
	settings *SettingsService
	bus      *events.Bus
}

type CreateArticleRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Category string `json:"category" validate:"required,max=50"`
	Body     string `json:"body" validate:"required,min=10"`
}

type UpdateArticleRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=50"`
	Body     *string `json:"body,omitempty" validate:"omitempty,min=10"`
}

func NewArticleService(articles repository.ArticleRepository, settings *SettingsService, bus *events.Bus) *ArticleService {
	return &ArticleService{articles: articles, settings: settings, bus: bus}
}

func (s *ArticleService) CreateArticle(authorKey string, req *CreateArticleRequest) (*models.Article, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	article := &models.Article{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		AuthorKey: authorKey,
		Title:     req.Title,
		Category:  req.Category,
		Body:      req.Body,
		Status:    models.ArticleStatusDraft,
	}
	if err := s.articles.Save(article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	s.bus.Publish(events.TopicArticles, authorKey)
	return article, nil
}

func (s *ArticleService) UpdateArticle(authorKey string, id uuid.UUID, req *UpdateArticleRequest) (*models.Article, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	article, err := s.getOwned(authorKey, id)
	if err != nil {
		return nil, err
	}
	if article.Status == models.ArticleStatusPublished {
		return nil, ErrBadLifecycle
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.Body != nil {
		article.Body = *req.Body
	}
	// Editing a rejected article puts it back in draft for resubmission.
	if article.Status == models.ArticleStatusRejected {
		article.Status = models.ArticleStatusDraft
	}
	article.UpdatedAt = time.Now()

	if err := s.articles.Save(article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	s.bus.Publish(events.TopicArticles, authorKey)
	return article, nil
}

// SubmitArticle moves a draft into the pending review queue.
func (s *ArticleService) SubmitArticle(authorKey string, id uuid.UUID) (*models.Article, error) {
	article, err := s.getOwned(authorKey, id)
	if err != nil {
		return nil, err
	}
	if article.Status != models.ArticleStatusDraft {
		logrus.WithFields(logrus.Fields{
			"article": id,
			"status":  article.Status,
		}).Warn("article: ignoring submit from non-draft status")
		return article, nil
	}

	article.Status = models.ArticleStatusPending
	article.UpdatedAt = time.Now()
	if err := s.articles.Save(article); err != nil {
		return nil, fmt.Errorf("failed to submit article: %w", err)
	}
	s.bus.Publish(events.TopicArticles, authorKey)
	return article, nil
}

// ReviewArticle is the admin moderation step: approve publishes the
// article, anything else rejects it. Only pending articles can be reviewed.
func (s *ArticleService) ReviewArticle(id uuid.UUID, approve bool) (*models.Article, error) {
	article, err := s.articles.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	if article.Status != models.ArticleStatusPending {
		logrus.WithFields(logrus.Fields{
			"article": id,
			"status":  article.Status,
		}).Warn("article: ignoring review of non-pending article")
		return article, nil
	}

	if approve {
		article.Status = models.ArticleStatusPublished
	} else {
		article.Status = models.ArticleStatusRejected
	}
	article.UpdatedAt = time.Now()
	if err := s.articles.Save(article); err != nil {
		return nil, fmt.Errorf("failed to review article: %w", err)
	}

	if s.settings != nil {
		verdict := "published"
		if !approve {
			verdict = "rejected"
		}
		s.settings.Notify(article.AuthorKey, "article",
			fmt.Sprintf("Your article %q was %s", article.Title, verdict))
	}
	s.bus.Publish(events.TopicArticles, article.AuthorKey)
	return article, nil
}

// ReadArticle returns a published article and bumps its view counter. The
// counter bump is best effort.
func (s *ArticleService) ReadArticle(id uuid.UUID) (*models.Article, error) {
	article, err := s.articles.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}
	if article == nil || article.Status != models.ArticleStatusPublished {
		return nil, ErrNotFound
	}

	article.ViewCount++
	article.UpdatedAt = time.Now()
	if err := s.articles.Save(article); err != nil {
		logrus.WithError(err).WithField("article", id).Warn("article: view count update failed")
	}
	return article, nil
}

func (s *ArticleService) AuthorArticles(authorKey string) ([]models.Article, error) {
	return s.articles.ListByAuthor(authorKey)
}

func (s *ArticleService) PendingArticles() ([]models.Article, error) {
	return s.articles.ListPending()
}

func (s *ArticleService) PublishedArticles() ([]models.Article, error) {
	return s.articles.ListPublished()
}

func (s *ArticleService) getOwned(authorKey string, id uuid.UUID) (*models.Article, error) {
	article, err := s.articles.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	if article.AuthorKey != authorKey {
		return nil, ErrForbidden
	}
	return article, nil
}
