// internal/handlers/chat.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agrikom/agrimarket-backend/internal/services"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// POST /chat
func (h *ChatHandler) Send(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	var req services.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	message, err := h.chatService.Send(key, &req)
	if err != nil {
		respondServiceError(c, err, "Conversation")
		return
	}
	utils.CreatedResponse(c, message)
}

// GET /chat/:peer
func (h *ChatHandler) History(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	peer := c.Param("peer")
	if peer == "" {
		utils.BadRequestResponse(c, "Missing peer", nil)
		return
	}

	messages, err := h.chatService.History(key, peer)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, messages)
}
