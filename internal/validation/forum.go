package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Bounds for forum submissions. Lengths are counted in runes so accented
// content is not penalized for its UTF-8 encoding.
const (
	MinTitleLen   = 5
	MaxTitleLen   = 100
	MinContentLen = 20
	MaxContentLen = 5000
	MinReasonLen  = 10
	MaxReasonLen  = 500
	MinCommentLen = 1
	MaxCommentLen = 1000
)

// ValidatePostTitle checks forum post title bounds.
func ValidatePostTitle(title string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	if n < MinTitleLen {
		return fmt.Errorf("title must be at least %d characters", MinTitleLen)
	}
	if n > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}
	return nil
}

// ValidatePostContent checks forum post body bounds.
func ValidatePostContent(content string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(content))
	if n < MinContentLen {
		return fmt.Errorf("content must be at least %d characters", MinContentLen)
	}
	if n > MaxContentLen {
		return fmt.Errorf("content must not exceed %d characters", MaxContentLen)
	}
	return nil
}

// ValidateRejectionReason checks the moderator-supplied rejection reason.
func ValidateRejectionReason(reason string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(reason))
	if n < MinReasonLen {
		return fmt.Errorf("rejection reason must be at least %d characters", MinReasonLen)
	}
	if n > MaxReasonLen {
		return fmt.Errorf("rejection reason must not exceed %d characters", MaxReasonLen)
	}
	return nil
}

// ValidateCommentContent checks comment body bounds.
func ValidateCommentContent(content string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(content))
	if n < MinCommentLen {
		return fmt.Errorf("comment content is required")
	}
	if n > MaxCommentLen {
		return fmt.Errorf("comment must not exceed %d characters", MaxCommentLen)
	}
	return nil
}
