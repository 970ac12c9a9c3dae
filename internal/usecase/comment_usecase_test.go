package usecase

import (
	"testing"

	"wallpaperhub/internal/entity"
	"wallpaperhub/internal/moderation"
	"wallpaperhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newCommentUseCase(commentRepo *MockCommentRepository, blogRepo *MockBlogRepository) CommentUseCase {
	return NewCommentUseCase(commentRepo, blogRepo, moderation.NewFilter(), logger.New())
}

func publishedPost(id string) *entity.BlogPost {
	return &entity.BlogPost{ID: id, Slug: "some-post", Status: entity.PostPublished}
}

func TestSubmitComment_AcceptedAsPending(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCommentUseCase(commentRepo, blogRepo)

	blogRepo.On("GetPostByID", "post-1").Return(publishedPost("post-1"), nil)
	commentRepo.On("Create", mock.AnythingOfType("*entity.Comment"), "1.2.3.4", "test-agent").Return(nil)

	comment, violation, err := uc.Submit(CommentSubmission{
		PostID:      "post-1",
		AuthorName:  "Alice",
		AuthorEmail: "alice@example.com",
		Content:     "Great roundup, the forest one is my new lock screen.",
		IP:          "1.2.3.4",
		UserAgent:   "test-agent",
	})

	assert.NoError(t, err)
	assert.Nil(t, violation)
	assert.Equal(t, entity.CommentPending, comment.Status)
}

func TestSubmitComment_RejectedByFilter(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCommentUseCase(commentRepo, blogRepo)

	blogRepo.On("GetPostByID", "post-1").Return(publishedPost("post-1"), nil)

	comment, violation, err := uc.Submit(CommentSubmission{
		PostID:      "post-1",
		AuthorName:  "Spammer",
		AuthorEmail: "spam@example.com",
		Content:     "click here for free money https://spam.example",
	})

	assert.NoError(t, err)
	assert.Nil(t, comment)
	assert.NotNil(t, violation)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitComment_HoneypotRejected(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCommentUseCase(commentRepo, blogRepo)

	blogRepo.On("GetPostByID", "post-1").Return(publishedPost("post-1"), nil)

	_, violation, err := uc.Submit(CommentSubmission{
		PostID:      "post-1",
		AuthorName:  "Bot",
		AuthorEmail: "bot@example.com",
		Content:     "Nice post indeed.",
		Website:     "filled-by-bot",
	})

	assert.NoError(t, err)
	assert.NotNil(t, violation)
}

func TestSubmitComment_UnknownOrDraftPost(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCommentUseCase(commentRepo, blogRepo)

	blogRepo.On("GetPostByID", "missing").Return(nil, gorm.ErrRecordNotFound)
	blogRepo.On("GetPostByID", "draft").Return(&entity.BlogPost{ID: "draft", Status: entity.PostDraft}, nil)

	_, _, err := uc.Submit(CommentSubmission{PostID: "missing", AuthorName: "A", AuthorEmail: "a@b.co", Content: "hey there"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = uc.Submit(CommentSubmission{PostID: "draft", AuthorName: "A", AuthorEmail: "a@b.co", Content: "hey there"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitComment_ParentMustBelongToSamePost(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCommentUseCase(commentRepo, blogRepo)

	blogRepo.On("GetPostByID", "post-1").Return(publishedPost("post-1"), nil)
	commentRepo.On("GetByID", "parent-other").Return(&entity.Comment{
		ID:     "parent-other",
		PostID: "post-2",
	}, nil)

	parentID := "parent-other"
	_, _, err := uc.Submit(CommentSubmission{
		PostID:      "post-1",
		ParentID:    &parentID,
		AuthorName:  "Alice",
		AuthorEmail: "alice@example.com",
		Content:     "Replying to the wrong thread.",
	})

	assert.ErrorIs(t, err, ErrInvalidParent)
}

func TestSubmitComment_StripsMarkup(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCommentUseCase(commentRepo, blogRepo)

	blogRepo.On("GetPostByID", "post-1").Return(publishedPost("post-1"), nil)
	commentRepo.On("Create", mock.AnythingOfType("*entity.Comment"), "", "").Return(nil)

	comment, violation, err := uc.Submit(CommentSubmission{
		PostID:      "post-1",
		AuthorName:  "<b>Alice</b>",
		AuthorEmail: "alice@example.com",
		Content:     "Nice <i>post</i> overall.",
	})

	assert.NoError(t, err)
	assert.Nil(t, violation)
	assert.Equal(t, "Alice", comment.AuthorName)
	assert.Equal(t, "Nice post overall.", comment.Content)
}

func TestModerate_StatusValidation(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCommentUseCase(commentRepo, blogRepo)

	commentRepo.On("UpdateStatus", "c-1", entity.CommentApproved).Return(nil)

	assert.NoError(t, uc.Moderate("c-1", entity.CommentApproved))
	assert.ErrorIs(t, uc.Moderate("c-1", entity.CommentPending), ErrInvalidStatus)
	assert.ErrorIs(t, uc.Moderate("c-1", "banana"), ErrInvalidStatus)
}

func TestModerate_NotFound(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCommentUseCase(commentRepo, blogRepo)

	commentRepo.On("UpdateStatus", "missing", entity.CommentSpam).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, uc.Moderate("missing", entity.CommentSpam), ErrNotFound)
}

func TestListApproved(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	blogRepo := new(MockBlogRepository)
	uc := newCommentUseCase(commentRepo, blogRepo)

	commentRepo.On("ListApprovedByPost", "post-1").Return([]*entity.Comment{
		{ID: "c-1", PostID: "post-1", Status: entity.CommentApproved},
	}, nil)

	comments, err := uc.ListApproved("post-1")
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
}
