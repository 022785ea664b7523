// internal/services/chat_service.go
package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/repository"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

type ChatService struct {
	chat repository.ChatRepository
	bus  *events.Bus
}

type SendMessageRequest struct {
	To   string `json:"to" validate:"required"`
	Body string `json:"body" validate:"required,min=1,max=2000"`
}

func NewChatService(chat repository.ChatRepository, bus *events.Bus) *ChatService {
	return &ChatService{chat: chat, bus: bus}
}

// ConversationID is the same for both directions of a pair: the two owner
// keys sorted and joined, so alice->bob and bob->alice share one thread.
func ConversationID(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "|")
}

func (s *ChatService) Send(senderKey string, req *SendMessageRequest) (*models.ChatMessage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	message := &models.ChatMessage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ConversationID: ConversationID(senderKey, req.To),
		SenderKey:      senderKey,
		Body:           req.Body,
	}
	if err := s.chat.Append(message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	s.bus.Publish(events.TopicChat, req.To)
	return message, nil
}

// History returns the conversation between the caller and the given peer,
// oldest first.
func (s *ChatService) History(ownerKey, peerKey string) ([]models.ChatMessage, error) {
	return s.chat.List(ConversationID(ownerKey, peerKey))
}
