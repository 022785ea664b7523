// internal/models/chat.go
package models

// ChatMessage records are append-only, keyed by conversation identity.
type ChatMessage struct {
	BaseModel
	ConversationID string `json:"conversation_id" gorm:"size:120;not null;index"`
	SenderKey      string `json:"sender_key" gorm:"column:sender_key;size:120;not null"`
	Body           string `json:"body" gorm:"type:text"`
}
