// internal/handlers/article.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/services"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

type ArticleHandler struct {
	articleService *services.ArticleService
}

func NewArticleHandler(articleService *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// GET /articles (published only)
func (h *ArticleHandler) GetPublished(c *gin.Context) {
	articles, err := h.articleService.PublishedArticles()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	params := utils.GetPaginationParams(c)
	_, result := utils.Paginate(articles, params)
	utils.PaginatedResponse(c, result)
}

// GET /articles/:id
func (h *ArticleHandler) ReadArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid article ID", nil)
		return
	}

	article, err := h.articleService.ReadArticle(id)
	if err != nil {
		respondServiceError(c, err, "Article")
		return
	}
	utils.SuccessResponse(c, article)
}

// GET /articles/mine
func (h *ArticleHandler) GetMine(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	articles, err := h.articleService.AuthorArticles(key)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, articles)
}

// POST /articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	var req services.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	article, err := h.articleService.CreateArticle(key, &req)
	if err != nil {
		respondServiceError(c, err, "Article")
		return
	}
	utils.CreatedResponse(c, article)
}

// PUT /articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid article ID", nil)
		return
	}

	var req services.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	article, err := h.articleService.UpdateArticle(key, id, &req)
	if err != nil {
		respondServiceError(c, err, "Article")
		return
	}
	utils.SuccessResponse(c, article)
}

// POST /articles/:id/submit
func (h *ArticleHandler) SubmitArticle(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid article ID", nil)
		return
	}

	article, err := h.articleService.SubmitArticle(key, id)
	if err != nil {
		respondServiceError(c, err, "Article")
		return
	}
	utils.SuccessResponse(c, article)
}
