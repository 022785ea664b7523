// internal/models/article.go
package models

type Article struct {
	BaseModel
	// AuthorKey is the role-qualified identity of the author,
	// e.g. "compost_processor:carol".
	AuthorKey string        `json:"author_key" gorm:"column:author_key;size:120;not null;index"`
	Title     string        `json:"title" gorm:"size:255;not null"`
	Category  string        `json:"category" gorm:"size:100;index"`
	Body      string        `json:"body" gorm:"type:text"`
	Status    ArticleStatus `json:"status" gorm:"type:varchar(20);default:'draft';index"`
	ViewCount int64         `json:"view_count" gorm:"default:0"`
}

func (Article) TableName() string { return "educational_articles" }
