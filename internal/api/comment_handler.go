package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/video-social-api/internal/service"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListForVideo handles GET /v1/videos/:video_id/comments?page=&limit=
func (h *CommentHandler) ListForVideo(c *gin.Context) {
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	result, err := h.services.Comment.ListForVideo(ctx, c.Param("video_id"), page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, result, "comments fetched successfully")
}

// Add handles POST /v1/videos/:video_id/comments
func (h *CommentHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, nil, "invalid request body")
		return
	}

	comment, err := h.services.Comment.Add(ctx, c.Param("video_id"), requesterID(c), req.Comment)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respond(c, http.StatusCreated, comment, "comment created successfully")
}

// Update handles PATCH /v1/comments/:comment_id
func (h *CommentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		NewContent string `json:"newContent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, nil, "invalid request body")
		return
	}

	comment, err := h.services.Comment.Update(ctx, c.Param("comment_id"), requesterID(c), req.NewContent)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, comment, "comment updated successfully")
}

// Delete handles DELETE /v1/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.services.Comment.Delete(ctx, c.Param("comment_id"), requesterID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, result, "comment deleted successfully")
}
