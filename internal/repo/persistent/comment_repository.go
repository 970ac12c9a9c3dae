package persistent

import (
	"wallpaperhub/internal/entity"
	"wallpaperhub/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment, ip, userAgent string) error
	GetByID(id string) (*entity.Comment, error)
	ListApprovedByPost(postID string) ([]*entity.Comment, error)
	ListByStatus(status entity.CommentStatus, limit, offset int) ([]*entity.Comment, error)
	UpdateStatus(id string, status entity.CommentStatus) error
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment, ip, userAgent string) error {
	row := &models.BlogComment{
		ID:          uuid.New().String(),
		PostID:      comment.PostID,
		ParentID:    comment.ParentID,
		AuthorName:  comment.AuthorName,
		AuthorEmail: comment.AuthorEmail,
		Content:     comment.Content,
		Status:      models.CommentStatus(comment.Status),
		IPAddress:   ip,
		UserAgent:   userAgent,
	}
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(row)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var row models.BlogComment
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&row), nil
}

// ListApprovedByPost returns approved comments threaded: top-level
// comments in order with their approved replies nested one level deep.
func (r *commentRepository) ListApprovedByPost(postID string) ([]*entity.Comment, error) {
	var rows []models.BlogComment
	err := r.db.
		Where("post_id = ? AND status = ?", postID, string(models.CommentApproved)).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.Comment, len(rows))
	var roots []*entity.Comment
	for i := range rows {
		byID[rows[i].ID] = ToCommentEntity(&rows[i])
	}
	for i := range rows {
		c := byID[rows[i].ID]
		if c.ParentID != nil {
			if parent, ok := byID[*c.ParentID]; ok {
				parent.Replies = append(parent.Replies, c)
				continue
			}
		}
		roots = append(roots, c)
	}
	return roots, nil
}

func (r *commentRepository) ListByStatus(status entity.CommentStatus, limit, offset int) ([]*entity.Comment, error) {
	query := r.db.Model(&models.BlogComment{}).
		Where("status = ?", string(status)).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var rows []models.BlogComment
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(rows))
	for i := range rows {
		comments[i] = ToCommentEntity(&rows[i])
	}
	return comments, nil
}

func (r *commentRepository) UpdateStatus(id string, status entity.CommentStatus) error {
	result := r.db.Model(&models.BlogComment{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.BlogComment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
