// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/repository"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// optionalActor resolves the Actor for routes that work both anonymously and
// authenticated. Anonymous callers get the zero Actor.
func (s *Server) optionalActor(c *fiber.Ctx) models.Actor {
	userID, ok := s.optionalUserID(c)
	if !ok {
		return models.Actor{}
	}
	admin, err := s.isAdminByUserID(c.Context(), userID)
	if err != nil {
		return models.Actor{ID: userID}
	}
	return models.Actor{ID: userID, IsAdmin: admin}
}

// CreatePost handles POST /api/posts
// @Summary Submit a forum post
// @Description Create a new forum post. It enters the moderation queue and is not publicly visible until approved.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,content=string,category=string} true "Post payload"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.SubmitPost(c.UserContext(), service.SubmitPostInput{
		Actor:    actor,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts
// @Summary List approved posts
// @Description Browse the public forum. Supports category filtering, title search and sorting by new, top or comments.
// @Tags posts
// @Produce json
// @Param category query string false "Category filter"
// @Param q query string false "Title and content search"
// @Param sort query string false "Sort order: new (default), top, comments"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Post
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	actor := s.optionalActor(c)
	p := parsePagination(c, repository.DefaultListLimit)

	posts, err := s.postService.ListPosts(c.UserContext(), service.ListPostsInput{
		Actor:    actor,
		Category: c.Query("category"),
		Search:   c.Query("q"),
		Sort:     c.Query("sort"),
		Limit:    p.Limit,
		Offset:   p.Offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
// @Summary Get post detail
// @Description Fetch a single post with its aggregates and comment thread. Non-approved posts are only visible to their author and admins.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} service.PostDetailView
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor := s.optionalActor(c)

	detail, err := s.postService.GetPostDetail(c.UserContext(), actor, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(detail)
}

// GetMyPosts handles GET /api/posts/me
// @Summary List own posts
// @Description List the authenticated user's posts in every moderation state, including rejection reasons.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Post
// @Failure 401 {object} models.ErrorResponse
// @Router /posts/me [get]
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	p := parsePagination(c, 20)

	posts, err := s.postService.GetUserPosts(c.UserContext(), actor, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete a post
// @Description Delete a post. Only the author or an admin may delete.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), actor, postID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// VotePost handles POST /api/posts/:id/vote
// @Summary Vote on a post
// @Description Cast or change a like/dislike on an approved post. Repeating the same value is idempotent.
// @Tags votes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body object{value=string} true "Vote value: like or dislike"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /posts/{id}/vote [post]
func (s *Server) VotePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CastVote(c.UserContext(), service.CastVoteInput{
		Actor:  actor,
		PostID: postID,
		Value:  models.VoteValue(req.Value),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	s.publishVoteEvent(post)

	return c.JSON(post)
}

// UnvotePost handles DELETE /api/posts/:id/vote
// @Summary Remove own vote
// @Description Withdraw the authenticated user's vote from a post.
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/vote [delete]
func (s *Server) UnvotePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.RemoveVote(c.UserContext(), actor, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	s.publishVoteEvent(post)

	return c.JSON(post)
}
