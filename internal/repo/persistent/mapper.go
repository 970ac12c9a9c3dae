package persistent

import (
	"wallpaperhub/internal/entity"
	"wallpaperhub/pkg/models"
)

func ToWallpaperEntity(m *models.Wallpaper) *entity.Wallpaper {
	if m == nil {
		return nil
	}

	return &entity.Wallpaper{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		Tags:         []string(m.Tags),
		ImageURL:     m.ImageURL,
		ThumbnailURL: m.ThumbnailURL,
		MediumURL:    m.MediumURL,
		LargeURL:     m.LargeURL,
		OriginalURL:  m.OriginalURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToInteractionEntity(m *models.UserInteraction) *entity.Interaction {
	if m == nil {
		return nil
	}

	return &entity.Interaction{
		ID:          m.ID,
		WallpaperID: m.WallpaperID,
		Type:        entity.InteractionType(m.Type),
		SessionID:   m.SessionID,
		CreatedAt:   m.CreatedAt,
	}
}

func ToBlogPostEntity(m *models.BlogPost) *entity.BlogPost {
	if m == nil {
		return nil
	}

	post := &entity.BlogPost{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Excerpt:     m.Excerpt,
		Content:     m.Content,
		Status:      entity.PostStatus(m.Status),
		Author:      m.Author,
		Views:       m.Views,
		ReadingTime: m.ReadingTime,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	for _, c := range m.Categories {
		post.Categories = append(post.Categories, c.Name)
	}
	for _, tag := range m.Tags {
		post.Tags = append(post.Tags, tag.Name)
	}

	return post
}

func ToCommentEntity(m *models.BlogComment) *entity.Comment {
	if m == nil {
		return nil
	}

	comment := &entity.Comment{
		ID:          m.ID,
		PostID:      m.PostID,
		ParentID:    m.ParentID,
		AuthorName:  m.AuthorName,
		AuthorEmail: m.AuthorEmail,
		Content:     m.Content,
		Status:      entity.CommentStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}

	for i := range m.Replies {
		comment.Replies = append(comment.Replies, ToCommentEntity(&m.Replies[i]))
	}

	return comment
}

func ToAdminUserEntity(m *models.AdminUser) *entity.AdminUser {
	if m == nil {
		return nil
	}

	return &entity.AdminUser{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}
