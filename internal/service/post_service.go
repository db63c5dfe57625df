// Package service contains the application's business logic.
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

// PostService handles forum post submission, listing and voting.
type PostService struct {
	postRepo repository.PostRepository
	voteRepo repository.VoteRepository
}

// SubmitPostInput is the payload for a new forum post.
type SubmitPostInput struct {
	Actor    models.Actor
	Title    string
	Content  string
	Category string
}

// ListPostsInput narrows the public listing.
type ListPostsInput struct {
	Actor    models.Actor
	Category string
	Search   string
	Sort     string
	Limit    int
	Offset   int
}

// CastVoteInput is the payload for a vote on a post.
type CastVoteInput struct {
	Actor  models.Actor
	PostID uint
	Value  models.VoteValue
}

// PostDetailView is the full post page: the post with its aggregates, the
// comment thread, and (for admins) the raw vote ledger.
type PostDetailView struct {
	Post     models.Post      `json:"post"`
	Comments []models.Comment `json:"comments"`
	Votes    []models.Vote    `json:"votes,omitempty"`
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, voteRepo repository.VoteRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		voteRepo: voteRepo,
	}
}

// SubmitPost creates a post in pending state. Nothing is publicly visible
// until a moderator approves it.
func (s *PostService) SubmitPost(ctx context.Context, in SubmitPostInput) (*models.Post, error) {
	if err := validation.ValidatePostTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePostContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if !models.IsValidCategory(in.Category) {
		return nil, models.NewValidationError("Invalid category")
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		UserID:   in.Actor.ID,
		Status:   models.PostStatusPending,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.Actor.ID)
}

// ListPosts returns approved posts only, regardless of who is asking.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	if in.Category != "" && !models.IsValidCategory(in.Category) {
		return nil, models.NewValidationError("Invalid category")
	}
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 20
	}
	if in.Offset < 0 {
		in.Offset = 0
	}

	return s.postRepo.ListApproved(ctx, repository.ListApprovedOptions{
		Category:      in.Category,
		Search:        in.Search,
		Sort:          in.Sort,
		Limit:         in.Limit,
		Offset:        in.Offset,
		CurrentUserID: in.Actor.ID,
	})
}

// GetPostDetail returns the post with its comment thread. Pending and
// rejected posts are visible only to their author and to admins. The raw
// vote ledger is attached for admins only.
func (s *PostService) GetPostDetail(ctx context.Context, actor models.Actor, postID uint) (*PostDetailView, error) {
	detail, err := s.postRepo.GetDetail(ctx, postID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}

	if detail.Post.Status != models.PostStatusApproved {
		if actor.ID != detail.Post.UserID && !actor.IsAdmin {
			// Hidden posts are indistinguishable from missing ones.
			return nil, models.NewNotFoundError("Post", postID)
		}
	}

	view := &PostDetailView{
		Post:     detail.Post,
		Comments: detail.Comments,
	}
	if actor.IsAdmin {
		view.Votes = detail.Votes
	}
	return view, nil
}

// GetUserPosts returns the actor's own posts in every state.
func (s *PostService) GetUserPosts(ctx context.Context, actor models.Actor, limit, offset int) ([]*models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.postRepo.ListByUserID(ctx, actor.ID, limit, offset)
}

// CastVote records or replaces the actor's vote on an approved post. A vote
// on a pending or rejected post is refused outright.
func (s *PostService) CastVote(ctx context.Context, in CastVoteInput) (*models.Post, error) {
	if !models.IsValidVoteValue(in.Value) {
		return nil, models.NewValidationError("Vote value must be 'like' or 'dislike'")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID, in.Actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}
	if post.Status != models.PostStatusApproved {
		return nil, models.NewNotVotableError("Only approved posts can be voted on")
	}

	vote := &models.Vote{
		PostID: in.PostID,
		UserID: in.Actor.ID,
		Value:  in.Value,
	}
	if err := s.voteRepo.Upsert(ctx, vote); err != nil {
		return nil, err
	}
	observability.VotesCast.WithLabelValues(string(in.Value)).Inc()

	return s.postRepo.GetByID(ctx, in.PostID, in.Actor.ID)
}

// RemoveVote withdraws the actor's vote. Removing a vote that does not exist
// is a no-op.
func (s *PostService) RemoveVote(ctx context.Context, actor models.Actor, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}
	if post.Status != models.PostStatusApproved {
		return nil, models.NewNotVotableError("Only approved posts can be voted on")
	}

	if err := s.voteRepo.Delete(ctx, postID, actor.ID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID, actor.ID)
}

// DeletePost removes a post. Authors can delete their own posts, admins any.
func (s *PostService) DeletePost(ctx context.Context, actor models.Actor, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return err
	}

	if post.UserID != actor.ID && !actor.IsAdmin {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, postID)
}
