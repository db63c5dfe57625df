package repository

import (
	"context"
	"errors"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/cache"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoteRepository defines the interface for vote ledger operations.
type VoteRepository interface {
	Upsert(ctx context.Context, vote *models.Vote) error
	GetByPostAndUser(ctx context.Context, postID, userID uint) (*models.Vote, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Vote, error)
	Delete(ctx context.Context, postID, userID uint) error
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Upsert writes the user's single active vote for a post. A revote replaces
// the stored value in place; concurrent revotes resolve last-write-wins on
// the unique (post_id, user_id) row.
func (r *voteRepository) Upsert(ctx context.Context, vote *models.Vote) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(vote).Error
	if err != nil {
		return err
	}
	cache.InvalidateApprovedPosts(ctx)
	return nil
}

func (r *voteRepository) GetByPostAndUser(ctx context.Context, postID, userID uint) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *voteRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Vote, error) {
	var votes []*models.Vote
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("updated_at DESC").
		Find(&votes).Error
	return votes, err
}

func (r *voteRepository) Delete(ctx context.Context, postID, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Vote{}).Error
	if err == nil {
		cache.InvalidateApprovedPosts(ctx)
	}
	return err
}
