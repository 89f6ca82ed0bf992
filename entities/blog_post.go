package entities

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BlogPost struct {
	ID       uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AuthorID uuid.UUID      `json:"author_id"`
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Category string         `json:"category"`                    // askforhelp, tips, successstories, updates, other
	Status   string         `gorm:"default:draft" json:"status"` // draft, published, archived, approved
	Media    pq.StringArray `gorm:"type:text[]" json:"media"`

	Author   *User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Reports  []*BlogReport  `gorm:"foreignKey:BlogPostID" json:"reports,omitempty"`
	Comments []*BlogComment `gorm:"foreignKey:BlogPostID" json:"comments,omitempty"`
	Likes    []*BlogLike    `gorm:"foreignKey:BlogPostID" json:"likes,omitempty"`
	Saves    []*BlogSave    `gorm:"foreignKey:BlogPostID" json:"saves,omitempty"`
	Timestamp
}

type BlogReport struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BlogPostID uuid.UUID `json:"blog_post_id"`
	ReporterID uuid.UUID `json:"reporter_id"`
	Reason     string    `json:"reason"`
	Status     string    `gorm:"default:pending" json:"status"` // pending, reviewed, resolved

	Reporter *User `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
	Timestamp
}

type BlogComment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BlogPostID uuid.UUID `json:"blog_post_id"`
	UserID     uuid.UUID `json:"user_id"`
	Content    string    `json:"content"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Timestamp
}

type BlogLike struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BlogPostID uuid.UUID `gorm:"uniqueIndex:idx_blog_like" json:"blog_post_id"`
	UserID     uuid.UUID `gorm:"uniqueIndex:idx_blog_like" json:"user_id"`

	Timestamp
}

type BlogSave struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BlogPostID uuid.UUID `gorm:"uniqueIndex:idx_blog_save" json:"blog_post_id"`
	UserID     uuid.UUID `gorm:"uniqueIndex:idx_blog_save" json:"user_id"`

	Timestamp
}
