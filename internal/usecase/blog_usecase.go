package usecase

import (
	"errors"
	"fmt"
	"time"

	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/repo/persistent"
	"wallpaperhub/internal/slug"
	"wallpaperhub/pkg/logger"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

type PostInput struct {
	Title      string            `json:"title"`
	Slug       string            `json:"slug"`
	Excerpt    string            `json:"excerpt"`
	Content    string            `json:"content"`
	Status     entity.PostStatus `json:"status"`
	Author     string            `json:"author"`
	Categories []string          `json:"categories"`
	Tags       []string          `json:"tags"`
}

type BlogUseCase interface {
	ListPublished(filter persistent.PostFilter) ([]*entity.BlogPost, error)
	GetPublished(idOrSlug string) (*entity.BlogPost, error)
	Create(input PostInput) (*entity.BlogPost, error)
	Update(id string, input PostInput) (*entity.BlogPost, error)
	Delete(id string) error
}

type blogUseCase struct {
	blogRepo      persistent.BlogRepository
	contentPolicy *bluemonday.Policy
	logger        *logger.Logger
}

func NewBlogUseCase(blogRepo persistent.BlogRepository, log *logger.Logger) BlogUseCase {
	return &blogUseCase{
		blogRepo:      blogRepo,
		contentPolicy: bluemonday.UGCPolicy(),
		logger:        log,
	}
}

func (uc *blogUseCase) ListPublished(filter persistent.PostFilter) ([]*entity.BlogPost, error) {
	posts, err := uc.blogRepo.ListPublished(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPublished fetches a published post by UUID or slug and counts the
// view without blocking the response.
func (uc *blogUseCase) GetPublished(idOrSlug string) (*entity.BlogPost, error) {
	var post *entity.BlogPost
	var err error

	if _, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		post, err = uc.blogRepo.GetPostByID(idOrSlug)
	} else {
		post, err = uc.blogRepo.GetPostBySlug(idOrSlug)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}

	if post.Status != entity.PostPublished {
		return nil, ErrNotFound
	}

	go func(id string) {
		if err := uc.blogRepo.IncrementViews(id); err != nil {
			uc.logger.Error("Failed to count view for post %s: %v", id, err)
		}
	}(post.ID)

	return post, nil
}

func (uc *blogUseCase) Create(input PostInput) (*entity.BlogPost, error) {
	post, err := uc.fromInput(input)
	if err != nil {
		return nil, err
	}

	slugTaken, err := uc.blogRepo.SlugExists(post.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if slugTaken {
		return nil, ErrSlugTaken
	}

	if err := uc.blogRepo.CreatePost(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (uc *blogUseCase) Update(id string, input PostInput) (*entity.BlogPost, error) {
	existing, err := uc.blogRepo.GetPostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}

	post, err := uc.fromInput(input)
	if err != nil {
		return nil, err
	}
	post.ID = existing.ID

	if post.Slug != existing.Slug {
		slugTaken, err := uc.blogRepo.SlugExists(post.Slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if slugTaken {
			return nil, ErrSlugTaken
		}
	}

	// Keep the original publish timestamp across edits
	if existing.PublishedAt != nil {
		post.PublishedAt = existing.PublishedAt
	}

	if err := uc.blogRepo.UpdatePost(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

func (uc *blogUseCase) Delete(id string) error {
	err := uc.blogRepo.DeletePost(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (uc *blogUseCase) fromInput(input PostInput) (*entity.BlogPost, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidPostInput)
	}
	status := input.Status
	if status == "" {
		status = entity.PostDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidPostInput, input.Status)
	}

	postSlug := input.Slug
	if postSlug == "" {
		postSlug = slug.Slugify(input.Title)
	}
	if postSlug == "" {
		return nil, fmt.Errorf("%w: title produces an empty slug", ErrInvalidPostInput)
	}

	post := &entity.BlogPost{
		Title:      input.Title,
		Slug:       postSlug,
		Excerpt:    input.Excerpt,
		Content:    uc.contentPolicy.Sanitize(input.Content),
		Status:     status,
		Author:     input.Author,
		Categories: input.Categories,
		Tags:       input.Tags,
	}

	if status == entity.PostPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	return post, nil
}
