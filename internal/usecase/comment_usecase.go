package usecase

import (
	"errors"
	"fmt"

	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/moderation"
	"wallpaperhub/internal/repo/persistent"
	"wallpaperhub/pkg/logger"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// CommentSubmission carries a public comment form plus the request
// metadata the repository records for abuse tracking.
type CommentSubmission struct {
	PostID      string
	ParentID    *string
	AuthorName  string
	AuthorEmail string
	Content     string
	Website     string
	IP          string
	UserAgent   string
}

type CommentUseCase interface {
	Submit(sub CommentSubmission) (*entity.Comment, *moderation.Violation, error)
	ListApproved(postID string) ([]*entity.Comment, error)
	ListForModeration(status entity.CommentStatus, limit, offset int) ([]*entity.Comment, error)
	Moderate(id string, status entity.CommentStatus) error
	Delete(id string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	blogRepo    persistent.BlogRepository
	filter      *moderation.Filter
	textPolicy  *bluemonday.Policy
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	blogRepo persistent.BlogRepository,
	filter *moderation.Filter,
	log *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		filter:      filter,
		textPolicy:  bluemonday.StrictPolicy(),
		logger:      log,
	}
}

// Submit screens a comment and stores it as pending. A non-nil
// violation is a rejection with a message safe to show the submitter;
// a non-nil error is an internal failure.
func (uc *commentUseCase) Submit(sub CommentSubmission) (*entity.Comment, *moderation.Violation, error) {
	post, err := uc.blogRepo.GetPostByID(sub.PostID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load post: %w", err)
	}
	if post.Status != entity.PostPublished {
		return nil, nil, ErrNotFound
	}

	if v := uc.filter.Check(moderation.Submission{
		AuthorName:  sub.AuthorName,
		AuthorEmail: sub.AuthorEmail,
		Content:     sub.Content,
		Website:     sub.Website,
	}); v != nil {
		uc.logger.Info("Comment for post %s rejected: %s", sub.PostID, v.Message)
		return nil, v, nil
	}

	if sub.ParentID != nil {
		parent, err := uc.commentRepo.GetByID(*sub.ParentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidParent
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load parent comment: %w", err)
		}
		if parent.PostID != sub.PostID {
			return nil, nil, ErrInvalidParent
		}
	}

	comment := &entity.Comment{
		PostID:      sub.PostID,
		ParentID:    sub.ParentID,
		AuthorName:  uc.textPolicy.Sanitize(sub.AuthorName),
		AuthorEmail: sub.AuthorEmail,
		Content:     uc.textPolicy.Sanitize(sub.Content),
		Status:      entity.CommentPending,
	}
	if err := uc.commentRepo.Create(comment, sub.IP, sub.UserAgent); err != nil {
		return nil, nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil, nil
}

func (uc *commentUseCase) ListApproved(postID string) ([]*entity.Comment, error) {
	comments, err := uc.commentRepo.ListApprovedByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (uc *commentUseCase) ListForModeration(status entity.CommentStatus, limit, offset int) ([]*entity.Comment, error) {
	comments, err := uc.commentRepo.ListByStatus(status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (uc *commentUseCase) Moderate(id string, status entity.CommentStatus) error {
	if !status.ModerationTarget() {
		return fmt.Errorf("%w: cannot set comment status to %q", ErrInvalidStatus, status)
	}
	err := uc.commentRepo.UpdateStatus(id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return nil
}

func (uc *commentUseCase) Delete(id string) error {
	err := uc.commentRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
