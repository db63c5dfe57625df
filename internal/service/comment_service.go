package service

import (
	"context"
	"errors"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/observability"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/repository"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/validation"

	"gorm.io/gorm"
)

// CommentService handles the append-only comment threads under approved posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// CreateCommentInput is the payload for a new comment.
type CreateCommentInput struct {
	Actor   models.Actor
	PostID  uint
	Content string
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment appends a comment to an approved post. Pending and rejected
// posts refuse comments under the same policy that refuses votes.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID, 0)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}
	if post.Status != models.PostStatusApproved {
		return nil, models.NewNotVotableError("Only approved posts can be commented on")
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  in.Actor.ID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	observability.CommentsCreated.Inc()

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the thread under an approved post, oldest first.
func (s *CommentService) ListComments(ctx context.Context, actor models.Actor, postID uint) ([]*models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}
	if post.Status != models.PostStatusApproved {
		if actor.ID != post.UserID && !actor.IsAdmin {
			return nil, models.NewNotFoundError("Post", postID)
		}
	}

	return s.commentRepo.ListByPost(ctx, postID)
}

// DeleteComment removes a comment. Authors can delete their own comments,
// admins any.
func (s *CommentService) DeleteComment(ctx context.Context, actor models.Actor, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", commentID)
		}
		return nil, err
	}

	if comment.UserID != actor.ID && !actor.IsAdmin {
		return nil, models.NewUnauthorizedError("You can only delete your own comments")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return nil, err
	}
	return comment, nil
}
