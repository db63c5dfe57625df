package server

import (
	"context"
	"encoding/json"
	"log"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"
)

// Event type constants prevent typos in event names.
const (
	EventPostApproved     = "post_approved"
	EventPostRejected     = "post_rejected"
	EventPostVotesUpdated = "post_votes_updated"
	EventCommentCreated   = "comment_created"
	EventReminderDue      = "reminder_due"
)

func (s *Server) publishUserEvent(userID uint, eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	message := string(eventJSON)
	if s.hub != nil {
		s.hub.Broadcast(userID, message)
	}
	if s.notifier != nil {
		if err := s.notifier.PublishUser(context.Background(), userID, message); err != nil {
			log.Printf("failed to publish %s event to user %d: %v", eventType, userID, err)
		}
	}
}

func (s *Server) publishBroadcastEvent(eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	message := string(eventJSON)
	if s.hub != nil {
		s.hub.BroadcastAll(message)
	}
	if s.notifier != nil {
		if err := s.notifier.PublishBroadcast(context.Background(), message); err != nil {
			log.Printf("failed to publish %s broadcast event: %v", eventType, err)
		}
	}
}

// publishVoteEvent tells the post author their score changed.
func (s *Server) publishVoteEvent(post *models.Post) {
	if post == nil {
		return
	}
	s.publishUserEvent(post.UserID, EventPostVotesUpdated, map[string]interface{}{
		"post_id":        post.ID,
		"likes_count":    post.LikesCount,
		"dislikes_count": post.DislikesCount,
	})
}

// publishModerationEvent tells the author the moderation outcome of their post.
func (s *Server) publishModerationEvent(post *models.Post) {
	if post == nil {
		return
	}
	payload := map[string]interface{}{
		"post_id": post.ID,
		"title":   post.Title,
		"status":  post.Status,
	}
	switch post.Status {
	case models.PostStatusApproved:
		s.publishUserEvent(post.UserID, EventPostApproved, payload)
	case models.PostStatusRejected:
		if post.RejectionReason != nil {
			payload["rejection_reason"] = *post.RejectionReason
		}
		s.publishUserEvent(post.UserID, EventPostRejected, payload)
	}
}

// publishCommentEvent tells the post author someone commented. Self-comments
// are not announced.
func (s *Server) publishCommentEvent(post *models.Post, comment *models.Comment) {
	if post == nil || comment == nil || post.UserID == comment.UserID {
		return
	}
	s.publishUserEvent(post.UserID, EventCommentCreated, map[string]interface{}{
		"post_id":    post.ID,
		"comment_id": comment.ID,
		"author":     comment.User.Public(),
	})
}
