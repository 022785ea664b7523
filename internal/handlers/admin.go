// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/services"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

type AdminHandler struct {
	adminService   *services.AdminService
	articleService *services.ArticleService
}

func NewAdminHandler(adminService *services.AdminService, articleService *services.ArticleService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		articleService: articleService,
	}
}

// GET /admin/users
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	params := utils.GetPaginationParams(c)
	_, result := utils.Paginate(users, params)
	utils.PaginatedResponse(c, result)
}

// PUT /admin/users/:key/status
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=active suspended"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.adminService.SetUserStatus(c.Param("key"), models.UserStatus(req.Status))
	if err != nil {
		respondServiceError(c, err, "User")
		return
	}
	utils.SuccessResponse(c, user)
}

// GET /admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.Stats()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, stats)
}

// GET /admin/articles/pending
func (h *AdminHandler) GetPendingArticles(c *gin.Context) {
	articles, err := h.articleService.PendingArticles()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, articles)
}

// POST /admin/articles/:id/review
func (h *AdminHandler) ReviewArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid article ID", nil)
		return
	}

	var req struct {
		Approve bool `json:"approve"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	article, err := h.articleService.ReviewArticle(id, req.Approve)
	if err != nil {
		respondServiceError(c, err, "Article")
		return
	}
	utils.SuccessResponse(c, article)
}
