package models

import (
	"time"

	"gorm.io/gorm"
)

// PostStatus defines lifecycle states for forum posts.
type PostStatus string

const (
	// PostStatusPending indicates the post is awaiting moderation.
	PostStatusPending PostStatus = "pending"
	// PostStatusApproved indicates the post is publicly visible.
	PostStatusApproved PostStatus = "approved"
	// PostStatusRejected indicates the post was declined by a moderator.
	PostStatusRejected PostStatus = "rejected"
)

// Forum categories. The set is fixed; posts outside it are rejected at
// validation time.
const (
	CategoryConseils       = "conseils"
	CategoryQuestions      = "questions"
	CategoryIdentification = "identification"
	CategoryMaladies       = "maladies"
	CategoryTroc           = "troc"
)

// PostCategories lists every valid forum category.
var PostCategories = []string{
	CategoryConseils,
	CategoryQuestions,
	CategoryIdentification,
	CategoryMaladies,
	CategoryTroc,
}

// IsValidCategory reports whether c is a known forum category.
func IsValidCategory(c string) bool {
	for _, known := range PostCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Post is a community-submitted forum post subject to moderation.
// RejectionReason is non-nil iff Status is rejected; approval clears it.
type Post struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Title            string     `gorm:"size:100;not null" json:"title"`
	Content          string     `gorm:"type:text;not null" json:"content"`
	Category         string     `gorm:"size:30;not null;index" json:"category"`
	UserID           uint       `gorm:"not null;index" json:"user_id"`
	User             User       `gorm:"foreignKey:UserID" json:"user"`
	Status           PostStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RejectionReason  *string    `gorm:"type:text" json:"rejection_reason"`
	ReviewedByUserID *uint      `json:"reviewed_by_user_id"`
	ReviewedByUser   *User      `gorm:"foreignKey:ReviewedByUserID" json:"reviewed_by_user,omitempty"`
	// LikesCount, DislikesCount and CommentsCount are not persisted; they are
	// computed at query time by the repository's aggregate subqueries.
	LikesCount    int `gorm:"->" json:"likes_count"`
	DislikesCount int `gorm:"->" json:"dislikes_count"`
	CommentsCount int `gorm:"->" json:"comments_count"`
	// UserVote holds the requesting user's vote value for this post (computed).
	UserVote  string         `gorm:"->" json:"user_vote"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
