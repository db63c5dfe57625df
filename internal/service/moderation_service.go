package service

import (
	"context"
	"errors"
	"strings"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/cache"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/observability"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/validation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ModerationService applies admin decisions to submitted posts. Decisions run
// inside a transaction holding a row lock, so two moderators acting on the
// same post serialize instead of clobbering each other.
type ModerationService struct {
	db *gorm.DB
}

// ApprovePostInput identifies the post and the deciding moderator.
type ApprovePostInput struct {
	ReviewerID uint
	PostID     uint
}

// RejectPostInput carries the mandatory rejection reason.
type RejectPostInput struct {
	ReviewerID uint
	PostID     uint
	Reason     string
}

// NewModerationService returns a new ModerationService.
func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{db: db}
}

// Queue returns posts awaiting review, oldest first.
func (s *ModerationService) Queue(ctx context.Context, status models.PostStatus, limit, offset int) ([]*models.Post, error) {
	switch status {
	case models.PostStatusPending, models.PostStatusApproved, models.PostStatusRejected:
	case "":
		status = models.PostStatusPending
	default:
		return nil, models.NewValidationError("Invalid status filter")
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var posts []*models.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// ApprovePost makes a post publicly visible and clears any previous rejection
// reason. Approving an already approved post is a no-op success.
func (s *ModerationService) ApprovePost(ctx context.Context, in ApprovePostInput) (*models.Post, error) {
	var post models.Post

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, in.PostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", in.PostID)
			}
			return err
		}

		if post.Status == models.PostStatusApproved {
			return nil
		}

		post.Status = models.PostStatusApproved
		post.RejectionReason = nil
		post.ReviewedByUserID = &in.ReviewerID
		return tx.Model(&post).
			Select("status", "rejection_reason", "reviewed_by_user_id").
			Updates(&post).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	observability.ModerationDecisions.WithLabelValues("approved").Inc()
	cache.InvalidateApprovedPosts(ctx)
	return &post, nil
}

// RejectPost declines a post with a reason the author will see. Rejecting an
// already rejected post replaces the stored reason.
func (s *ModerationService) RejectPost(ctx context.Context, in RejectPostInput) (*models.Post, error) {
	reason := strings.TrimSpace(in.Reason)
	if err := validation.ValidateRejectionReason(reason); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	var post models.Post

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, in.PostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", in.PostID)
			}
			return err
		}

		post.Status = models.PostStatusRejected
		post.RejectionReason = &reason
		post.ReviewedByUserID = &in.ReviewerID
		return tx.Model(&post).
			Select("status", "rejection_reason", "reviewed_by_user_id").
			Updates(&post).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	observability.ModerationDecisions.WithLabelValues("rejected").Inc()
	cache.InvalidateApprovedPosts(ctx)
	return &post, nil
}
