// internal/models/forum.go
package models

import "github.com/google/uuid"

// Discussions and comments are append-only: apart from the like counter on
// discussions no update or delete operation is defined.

type Discussion struct {
	BaseModel
	AuthorKey string `json:"author_key" gorm:"column:author_key;size:120;not null;index"`
	Title     string `json:"title" gorm:"size:255;not null"`
	Category  string `json:"category" gorm:"size:100;index"`
	Body      string `json:"body" gorm:"type:text"`
	LikeCount int64  `json:"like_count" gorm:"default:0"`
}

func (Discussion) TableName() string { return "forum_discussions" }

type Comment struct {
	BaseModel
	DiscussionID uuid.UUID `json:"discussion_id" gorm:"type:uuid;not null;index"`
	AuthorKey    string    `json:"author_key" gorm:"column:author_key;size:120;not null"`
	Body         string    `json:"body" gorm:"type:text"`
}

func (Comment) TableName() string { return "forum_comments" }
