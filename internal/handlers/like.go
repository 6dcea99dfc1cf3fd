package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillconnect/server/internal/requestdata"
	"github.com/skillconnect/server/internal/services"
)

type LikeHandler struct {
	likeService services.LikeService
}

func NewLikeHandler(likeService services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) Like(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_post_id", err)
		return
	}
	like, err := h.likeService.LikePost(c.Request.Context(), postID, rd.UserID)
	if err != nil {
		RespondServiceError(c, "like_failed", err)
		return
	}
	RespondOK(c, gin.H{"like": like})
}

func (h *LikeHandler) Unlike(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_post_id", err)
		return
	}
	if err := h.likeService.UnlikePost(c.Request.Context(), postID, rd.UserID); err != nil {
		RespondServiceError(c, "unlike_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LikeHandler) ListByPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_post_id", err)
		return
	}
	likes, err := h.likeService.ListByPost(c.Request.Context(), postID)
	if err != nil {
		RespondServiceError(c, "list_likes_failed", err)
		return
	}
	RespondOK(c, gin.H{"likes": likes})
}

func (h *LikeHandler) CountByPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_post_id", err)
		return
	}
	count, err := h.likeService.CountByPost(c.Request.Context(), postID)
	if err != nil {
		RespondServiceError(c, "like_count_failed", err)
		return
	}
	RespondOK(c, gin.H{"count": count})
}
