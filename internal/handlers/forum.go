// internal/handlers/forum.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/services"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

type ForumHandler struct {
	forumService *services.ForumService
}

func NewForumHandler(forumService *services.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

// GET /forum
func (h *ForumHandler) GetDiscussions(c *gin.Context) {
	discussions, err := h.forumService.Discussions()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	params := utils.GetPaginationParams(c)
	_, result := utils.Paginate(discussions, params)
	utils.PaginatedResponse(c, result)
}

// POST /forum
func (h *ForumHandler) CreateDiscussion(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	var req services.CreateDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	discussion, err := h.forumService.CreateDiscussion(key, &req)
	if err != nil {
		respondServiceError(c, err, "Discussion")
		return
	}
	utils.CreatedResponse(c, discussion)
}

// GET /forum/:id
func (h *ForumHandler) GetDiscussion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid discussion ID", nil)
		return
	}

	discussion, err := h.forumService.GetDiscussion(id)
	if err != nil {
		respondServiceError(c, err, "Discussion")
		return
	}
	utils.SuccessResponse(c, discussion)
}

// POST /forum/:id/like
func (h *ForumHandler) LikeDiscussion(c *gin.Context) {
	if _, ok := ownerKey(c); !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid discussion ID", nil)
		return
	}

	discussion, err := h.forumService.LikeDiscussion(id)
	if err != nil {
		respondServiceError(c, err, "Discussion")
		return
	}
	utils.SuccessResponse(c, discussion)
}

// GET /forum/:id/comments
func (h *ForumHandler) GetComments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid discussion ID", nil)
		return
	}

	comments, err := h.forumService.Comments(id)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, comments)
}

// POST /forum/:id/comments
func (h *ForumHandler) AddComment(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid discussion ID", nil)
		return
	}

	var req services.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	comment, err := h.forumService.AddComment(key, id, &req)
	if err != nil {
		respondServiceError(c, err, "Discussion")
		return
	}
	utils.CreatedResponse(c, comment)
}
