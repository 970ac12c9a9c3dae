package usecase

import (
	"io"

	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/repo/persistent"
	"wallpaperhub/pkg/models"
	"wallpaperhub/pkg/s3"

	"github.com/stretchr/testify/mock"
)

// MockWallpaperRepository is a mock implementation of persistent.WallpaperRepository
type MockWallpaperRepository struct {
	mock.Mock
}

func (m *MockWallpaperRepository) Create(wallpaper *entity.Wallpaper) error {
	args := m.Called(wallpaper)
	return args.Error(0)
}

func (m *MockWallpaperRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWallpaperRepository) GetByID(id string) (*entity.Wallpaper, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallpaper), args.Error(1)
}

func (m *MockWallpaperRepository) FindBySuffix(suffix string) (*entity.Wallpaper, error) {
	args := m.Called(suffix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallpaper), args.Error(1)
}

func (m *MockWallpaperRepository) List(filter persistent.ListFilter) ([]*entity.Wallpaper, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Wallpaper), args.Error(1)
}

func (m *MockWallpaperRepository) Search(filter persistent.SearchFilter) ([]*entity.Wallpaper, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Wallpaper), args.Get(1).(int64), args.Error(2)
}

func (m *MockWallpaperRepository) StatsFor(wallpaperIDs []string) ([]models.WallpaperStat, error) {
	args := m.Called(wallpaperIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WallpaperStat), args.Error(1)
}

func (m *MockWallpaperRepository) StatFor(wallpaperID string) (*models.WallpaperStat, error) {
	args := m.Called(wallpaperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WallpaperStat), args.Error(1)
}

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) GetObject(key string) (*s3.Object, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.Object), args.Error(1)
}

func (m *MockObjectStorage) UploadFile(key string, reader io.Reader, contentType string) (string, error) {
	args := m.Called(key, reader, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// MockInteractionRepository is a mock implementation of persistent.InteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Append(wallpaperID string, kind entity.InteractionType, sessionID, ip string) (*entity.Interaction, error) {
	args := m.Called(wallpaperID, kind, sessionID, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) CreateLike(wallpaperID, sessionID, ip string) (bool, error) {
	args := m.Called(wallpaperID, sessionID, ip)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) DeleteLike(wallpaperID, sessionID string) (bool, error) {
	args := m.Called(wallpaperID, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) HasLiked(wallpaperID, sessionID string) (bool, error) {
	args := m.Called(wallpaperID, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) CountByType(wallpaperID string, kind entity.InteractionType) (int64, error) {
	args := m.Called(wallpaperID, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionRepository) UpsertStat(wallpaperID string, kind entity.InteractionType, count int64) error {
	args := m.Called(wallpaperID, kind, count)
	return args.Error(0)
}

// MockBlogRepository is a mock implementation of persistent.BlogRepository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) CreatePost(post *entity.BlogPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockBlogRepository) UpdatePost(post *entity.BlogPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockBlogRepository) DeletePost(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBlogRepository) GetPostByID(id string) (*entity.BlogPost, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetPostBySlug(slug string) (*entity.BlogPost, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) ListPublished(filter persistent.PostFilter) ([]*entity.BlogPost, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) IncrementViews(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBlogRepository) SlugExists(slug string) (bool, error) {
	args := m.Called(slug)
	return args.Bool(0), args.Error(1)
}

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment, ip, userAgent string) error {
	args := m.Called(comment, ip, userAgent)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListApprovedByPost(postID string) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByStatus(status entity.CommentStatus, limit, offset int) ([]*entity.Comment, error) {
	args := m.Called(status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateStatus(id string, status entity.CommentStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAdminRepository is a mock implementation of persistent.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByUsername(username string) (*entity.AdminUser, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminUser), args.Error(1)
}
