package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
	CommentSpam     CommentStatus = "spam"
)

// BlogComment rows are created as pending by public submission; only a
// moderator can move them out of pending.
type BlogComment struct {
	ID          string        `gorm:"type:uuid;primary_key" json:"id"`
	PostID      string        `gorm:"type:uuid;not null;index" json:"post_id"`
	ParentID    *string       `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	AuthorName  string        `gorm:"not null" json:"author_name"`
	AuthorEmail string        `gorm:"not null" json:"author_email"`
	Content     string        `gorm:"type:text;not null" json:"content"`
	Status      CommentStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	IPAddress   string        `json:"-"`
	UserAgent   string        `json:"-"`
	CreatedAt   time.Time     `json:"created_at"`

	Replies []BlogComment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}

func (c *BlogComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
