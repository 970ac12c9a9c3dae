package http

import (
	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/moderation"
	"wallpaperhub/internal/repo/persistent"
	"wallpaperhub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockWallpaperUseCase is a mock implementation of usecase.WallpaperUseCase
type MockWallpaperUseCase struct {
	mock.Mock
}

func (m *MockWallpaperUseCase) List(filter persistent.ListFilter) ([]*usecase.WallpaperView, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*usecase.WallpaperView), args.Error(1)
}

func (m *MockWallpaperUseCase) Search(filter persistent.SearchFilter) (*usecase.SearchResult, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SearchResult), args.Error(1)
}

func (m *MockWallpaperUseCase) GetBySlug(requested string) (*usecase.WallpaperView, string, error) {
	args := m.Called(requested)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*usecase.WallpaperView), args.String(1), args.Error(2)
}

func (m *MockWallpaperUseCase) PrepareDownload(id string) (*usecase.DownloadResult, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DownloadResult), args.Error(1)
}

func (m *MockWallpaperUseCase) Publish(input usecase.PublishInput) (*usecase.WallpaperView, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.WallpaperView), args.Error(1)
}

func (m *MockWallpaperUseCase) Remove(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockInteractionUseCase is a mock implementation of usecase.InteractionUseCase
type MockInteractionUseCase struct {
	mock.Mock
}

func (m *MockInteractionUseCase) ToggleLike(wallpaperID, sessionID, ip string, like bool) (*usecase.LikeResult, error) {
	args := m.Called(wallpaperID, sessionID, ip, like)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LikeResult), args.Error(1)
}

func (m *MockInteractionUseCase) Record(wallpaperID string, kind entity.InteractionType, sessionID, ip string) (*entity.Interaction, *usecase.InteractionCounts, error) {
	args := m.Called(wallpaperID, kind, sessionID, ip)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.Interaction), args.Get(1).(*usecase.InteractionCounts), args.Error(2)
}

func (m *MockInteractionUseCase) RecordView(wallpaperID, sessionID, ip string) {
	m.Called(wallpaperID, sessionID, ip)
}

func (m *MockInteractionUseCase) RecordDownload(wallpaperID, sessionID, ip string) (int64, error) {
	args := m.Called(wallpaperID, sessionID, ip)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionUseCase) HasLiked(wallpaperID, sessionID string) (bool, error) {
	args := m.Called(wallpaperID, sessionID)
	return args.Bool(0), args.Error(1)
}

// MockBlogUseCase is a mock implementation of usecase.BlogUseCase
type MockBlogUseCase struct {
	mock.Mock
}

func (m *MockBlogUseCase) ListPublished(filter persistent.PostFilter) ([]*entity.BlogPost, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BlogPost), args.Error(1)
}

func (m *MockBlogUseCase) GetPublished(idOrSlug string) (*entity.BlogPost, error) {
	args := m.Called(idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockBlogUseCase) Create(input usecase.PostInput) (*entity.BlogPost, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockBlogUseCase) Update(id string, input usecase.PostInput) (*entity.BlogPost, error) {
	args := m.Called(id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockBlogUseCase) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCommentUseCase is a mock implementation of usecase.CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) Submit(sub usecase.CommentSubmission) (*entity.Comment, *moderation.Violation, error) {
	args := m.Called(sub)
	var comment *entity.Comment
	if args.Get(0) != nil {
		comment = args.Get(0).(*entity.Comment)
	}
	var violation *moderation.Violation
	if args.Get(1) != nil {
		violation = args.Get(1).(*moderation.Violation)
	}
	return comment, violation, args.Error(2)
}

func (m *MockCommentUseCase) ListApproved(postID string) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) ListForModeration(status entity.CommentStatus, limit, offset int) ([]*entity.Comment, error) {
	args := m.Called(status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Moderate(id string, status entity.CommentStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockCommentUseCase) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(username, password string) (string, error) {
	args := m.Called(username, password)
	return args.String(0), args.Error(1)
}
