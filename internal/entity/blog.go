package entity

import "time"

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
	PostArchived  PostStatus = "archived"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostDraft, PostPublished, PostArchived:
		return true
	}
	return false
}

type BlogPost struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Status      PostStatus `json:"status"`
	Author      string     `json:"author"`
	Views       int64      `json:"views"`
	ReadingTime int        `json:"reading_time"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Categories  []string   `json:"categories"`
	Tags        []string   `json:"tags"`
}

type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
	CommentSpam     CommentStatus = "spam"
)

// ModerationTarget reports whether a status is one a moderator may
// assign to a pending comment.
func (s CommentStatus) ModerationTarget() bool {
	switch s {
	case CommentApproved, CommentRejected, CommentSpam:
		return true
	}
	return false
}

type Comment struct {
	ID          string        `json:"id"`
	PostID      string        `json:"post_id"`
	ParentID    *string       `json:"parent_id,omitempty"`
	AuthorName  string        `json:"author_name"`
	AuthorEmail string        `json:"author_email"`
	Content     string        `json:"content"`
	Status      CommentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	Replies     []*Comment    `json:"replies,omitempty"`
}

type AdminUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
