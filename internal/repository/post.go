// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/cache"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"

	"gorm.io/gorm"
)

// DefaultListLimit is the page size applied when the caller does not choose
// one. The approved-listing cache only holds pages of this size.
const DefaultListLimit = 20

// ListApprovedOptions narrows the public post listing.
type ListApprovedOptions struct {
	Category string
	Search   string
	Sort     string
	Limit    int
	Offset   int
	// CurrentUserID drives the user_vote column; 0 means anonymous.
	CurrentUserID uint
}

// PostDetail is a post with its full vote ledger and comment thread, read in a
// single consistent snapshot.
type PostDetail struct {
	Post     models.Post
	Votes    []models.Vote
	Comments []models.Comment
}

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetDetail(ctx context.Context, id uint, currentUserID uint) (*PostDetail, error)
	ListApproved(ctx context.Context, opts ListApprovedOptions) ([]*models.Post, error)
	ListByStatus(ctx context.Context, status models.PostStatus, limit, offset int) ([]*models.Post, error)
	ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	// New posts enter as pending, so the approved listing is untouched.
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetDetail reads the post, its votes and its comments inside one transaction
// so the aggregates, the ledger and the thread describe the same moment.
func (r *postRepository) GetDetail(ctx context.Context, id uint, currentUserID uint) (*PostDetail, error) {
	var detail PostDetail

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.applyPostDetails(tx, currentUserID).
			Preload("User").
			Preload("ReviewedByUser").
			First(&detail.Post, id).Error; err != nil {
			return err
		}
		if err := tx.
			Where("post_id = ?", id).
			Order("updated_at DESC").
			Find(&detail.Votes).Error; err != nil {
			return err
		}
		return tx.
			Preload("User").
			Where("post_id = ?", id).
			Order("created_at ASC").
			Find(&detail.Comments).Error
	})

	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *postRepository) ListApproved(ctx context.Context, opts ListApprovedOptions) ([]*models.Post, error) {
	var posts []*models.Post

	fetch := func() error {
		base := r.applyPostDetails(r.db.WithContext(ctx), opts.CurrentUserID).
			Preload("User").
			Where("status = ?", models.PostStatusApproved)

		if opts.Category != "" {
			base = base.Where("category = ?", opts.Category)
		}
		if opts.Search != "" {
			like := "%" + opts.Search + "%"
			base = base.Where("LOWER(title) LIKE LOWER(?) OR LOWER(content) LIKE LOWER(?)", like, like)
		}

		return r.applySort(base, opts.Sort).
			Limit(opts.Limit).
			Offset(opts.Offset).
			Find(&posts).Error
	}

	// Only the canonical anonymous page is cached: no filters, newest first,
	// default page size, first page. Every other shape of the listing goes
	// straight to the database.
	cacheable := opts.CurrentUserID == 0 && opts.Category == "" && opts.Search == "" &&
		opts.Offset == 0 && opts.Limit == DefaultListLimit &&
		(opts.Sort == "" || opts.Sort == "new")
	if cacheable {
		if err := cache.Aside(ctx, cache.ApprovedPostsKey(), &posts, cache.ListTTL, fetch); err != nil {
			return nil, err
		}
		return posts, nil
	}

	if err := fetch(); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByStatus(ctx context.Context, status models.PostStatus, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), 0).
		Preload("User").
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), userID).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return err
	}
	cache.InvalidateApprovedPosts(ctx)
	return nil
}

// applySort appends the ORDER BY clause for the requested sort type. The
// popularity score repeats the vote-count subqueries from applyPostDetails:
// Postgres accepts a SELECT alias in ORDER BY only when it stands alone,
// never inside an expression.
func (r *postRepository) applySort(db *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case "top":
		score := "((SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id AND votes.value = 'like') - " +
			"(SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id AND votes.value = 'dislike'))"
		return db.Order(score + " DESC, created_at DESC")
	case "comments":
		return db.Order("comments_count DESC, created_at DESC")
	default: // "new" and anything unrecognized
		return db.Order("created_at DESC")
	}
}

// applyPostDetails adds subqueries to fetch vote counts, comment count and the
// requesting user's own vote in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id AND votes.value = 'like') as likes_count, " +
		"(SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id AND votes.value = 'dislike') as dislikes_count, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) as comments_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+
			", COALESCE((SELECT value FROM votes WHERE votes.post_id = posts.id AND votes.user_id = ?), '') as user_vote", currentUserID)
	}

	return db.Select(selectQuery + ", '' as user_vote")
}
