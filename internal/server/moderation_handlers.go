// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetModerationQueue handles GET /api/admin/posts
// @Summary List posts by moderation status
// @Description List posts awaiting review (default) or filtered by status, oldest first.
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter: pending (default), approved, rejected"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Post
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/posts [get]
func (s *Server) GetModerationQueue(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	posts, err := s.moderationService.Queue(c.UserContext(),
		models.PostStatus(c.Query("status")), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// ApprovePost handles POST /api/admin/posts/:id/approve
// @Summary Approve a post
// @Description Approve a pending or rejected post, making it publicly visible. Approving an approved post is a no-op.
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/posts/{id}/approve [post]
func (s *Server) ApprovePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	reviewerID := c.Locals("userID").(uint)

	post, err := s.moderationService.ApprovePost(c.UserContext(), service.ApprovePostInput{
		ReviewerID: reviewerID,
		PostID:     postID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	s.publishModerationEvent(post)

	return c.JSON(post)
}

// RejectPost handles POST /api/admin/posts/:id/reject
// @Summary Reject a post
// @Description Reject a post with a mandatory reason shown to the author.
// @Tags moderation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body object{reason=string} true "Rejection reason"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/posts/{id}/reject [post]
func (s *Server) RejectPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	reviewerID := c.Locals("userID").(uint)

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.moderationService.RejectPost(c.UserContext(), service.RejectPostInput{
		ReviewerID: reviewerID,
		PostID:     postID,
		Reason:     req.Reason,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	s.publishModerationEvent(post)

	return c.JSON(post)
}
