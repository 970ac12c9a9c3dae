package usecase

import (
	"testing"
	"time"

	"wallpaperhub/internal/entity"
	"wallpaperhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newBlogUseCase(repo *MockBlogRepository) BlogUseCase {
	return NewBlogUseCase(repo, logger.New())
}

func TestCreatePost_SlugFromTitle(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := newBlogUseCase(repo)

	repo.On("SlugExists", "10-best-wallpapers").Return(false, nil)
	repo.On("CreatePost", mock.AnythingOfType("*entity.BlogPost")).Return(nil)

	post, err := uc.Create(PostInput{
		Title:   "10 Best Wallpapers",
		Content: "<p>Some content</p>",
		Status:  entity.PostDraft,
		Author:  "editor",
	})

	assert.NoError(t, err)
	assert.Equal(t, "10-best-wallpapers", post.Slug)
	assert.Nil(t, post.PublishedAt)
}

func TestCreatePost_PublishSetsTimestamp(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := newBlogUseCase(repo)

	repo.On("SlugExists", "hello").Return(false, nil)
	repo.On("CreatePost", mock.AnythingOfType("*entity.BlogPost")).Return(nil)

	before := time.Now()
	post, err := uc.Create(PostInput{
		Title:   "Hello",
		Slug:    "hello",
		Content: "body",
		Status:  entity.PostPublished,
	})

	assert.NoError(t, err)
	assert.NotNil(t, post.PublishedAt)
	assert.False(t, post.PublishedAt.Before(before))
}

func TestCreatePost_SanitizesContent(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := newBlogUseCase(repo)

	repo.On("SlugExists", "xss").Return(false, nil)
	repo.On("CreatePost", mock.AnythingOfType("*entity.BlogPost")).Return(nil)

	post, err := uc.Create(PostInput{
		Title:   "XSS",
		Slug:    "xss",
		Content: `<p>ok</p><script>alert(1)</script>`,
	})

	assert.NoError(t, err)
	assert.Contains(t, post.Content, "<p>ok</p>")
	assert.NotContains(t, post.Content, "<script>")
}

func TestCreatePost_SlugTaken(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := newBlogUseCase(repo)

	repo.On("SlugExists", "hello").Return(true, nil)

	_, err := uc.Create(PostInput{Title: "Hello", Slug: "hello"})

	assert.ErrorIs(t, err, ErrSlugTaken)
	repo.AssertNotCalled(t, "CreatePost", mock.Anything)
}

func TestCreatePost_InvalidInput(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := newBlogUseCase(repo)

	_, err := uc.Create(PostInput{Title: ""})
	assert.ErrorIs(t, err, ErrInvalidPostInput)

	_, err = uc.Create(PostInput{Title: "Hello", Status: "deleted"})
	assert.ErrorIs(t, err, ErrInvalidPostInput)
}

func TestUpdatePost_KeepsPublishTimestamp(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := newBlogUseCase(repo)

	published := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	repo.On("GetPostByID", "post-1").Return(&entity.BlogPost{
		ID:          "post-1",
		Slug:        "hello",
		PublishedAt: &published,
	}, nil)
	repo.On("UpdatePost", mock.AnythingOfType("*entity.BlogPost")).Return(nil)

	post, err := uc.Update("post-1", PostInput{
		Title:   "Hello Again",
		Slug:    "hello",
		Content: "edited",
		Status:  entity.PostPublished,
	})

	assert.NoError(t, err)
	assert.Equal(t, published, *post.PublishedAt)
	repo.AssertNotCalled(t, "SlugExists", "hello")
}

func TestUpdatePost_NotFound(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := newBlogUseCase(repo)

	repo.On("GetPostByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Update("missing", PostInput{Title: "Hello"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPublished_DraftHidden(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := newBlogUseCase(repo)

	repo.On("GetPostBySlug", "wip").Return(&entity.BlogPost{
		ID:     "post-1",
		Slug:   "wip",
		Status: entity.PostDraft,
	}, nil)

	_, err := uc.GetPublished("wip")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPublished_ByUUIDAndBySlug(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := newBlogUseCase(repo)

	post := &entity.BlogPost{
		ID:     "4b4e64dc-61a8-45c3-b87d-d09ddbe909f4",
		Slug:   "hello",
		Status: entity.PostPublished,
	}
	repo.On("GetPostByID", post.ID).Return(post, nil)
	repo.On("GetPostBySlug", "hello").Return(post, nil)
	repo.On("IncrementViews", post.ID).Return(nil).Maybe()

	byID, err := uc.GetPublished(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, "hello", byID.Slug)

	bySlug, err := uc.GetPublished("hello")
	assert.NoError(t, err)
	assert.Equal(t, post.ID, bySlug.ID)
}

func TestDeletePost_NotFound(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := newBlogUseCase(repo)

	repo.On("DeletePost", "missing").Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, uc.Delete("missing"), ErrNotFound)
}
