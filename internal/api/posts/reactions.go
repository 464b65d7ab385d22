package postsapi

import (
	"errors"
	"net/http"

	domain "churchfeed-app/internal/domain/reactions"
	"churchfeed-app/internal/reactions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ToggleReaction drives the tap behavior: tapping the active reaction clears
// it, tapping a different one switches to it.
func (h *Handler) ToggleReaction(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	var input struct {
		UserID string `json:"userId" binding:"required"`
		Type   string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	t := domain.Type(input.Type)
	if !domain.ValidType(t) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reaction type"})
		return
	}

	if err := h.reactions.Toggle(c.Request.Context(), postID, userID, t); err != nil {
		var writeErr *reactions.WriteError
		if errors.As(err, &writeErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reaction"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.reactions.Summary(c.Request.Context(), postID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reactions": summary})
}

// GetReactions returns the aggregate rows for a post, with the viewer's own
// reaction marked when viewer_id is supplied.
func (h *Handler) GetReactions(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	viewerID := uuid.Nil
	if v := c.Query("viewer_id"); v != "" {
		if parsed, err := uuid.Parse(v); err == nil {
			viewerID = parsed
		}
	}

	summary, err := h.reactions.Summary(c.Request.Context(), postID, viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reactions": summary})
}
