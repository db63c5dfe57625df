package models

import "time"

// VoteValue is the value of a single vote.
type VoteValue string

const (
	// VoteLike marks a positive vote.
	VoteLike VoteValue = "like"
	// VoteDislike marks a negative vote.
	VoteDislike VoteValue = "dislike"
)

// IsValidVoteValue reports whether v is an allowed vote value.
func IsValidVoteValue(v VoteValue) bool {
	return v == VoteLike || v == VoteDislike
}

// Vote is the per-user, per-post ledger row holding the single active vote.
// The (PostID, UserID) pair is unique; a revote updates the row in place
// rather than appending, so no vote history is retained.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_votes_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_votes_post_user" json:"user_id"`
	Value     VoteValue `gorm:"type:varchar(10);not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
