package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillconnect/server/internal/requestdata"
	"github.com/skillconnect/server/internal/services"
)

type FollowHandler struct {
	followService services.FollowService
}

func NewFollowHandler(followService services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

func (h *FollowHandler) Follow(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		FollowingID uuid.UUID `json:"following_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	follow, err := h.followService.Follow(c.Request.Context(), rd.UserID, req.FollowingID)
	if err != nil {
		RespondServiceError(c, "follow_failed", err)
		return
	}
	RespondOK(c, gin.H{"follow": follow})
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		FollowingID uuid.UUID `json:"following_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.followService.Unfollow(c.Request.Context(), rd.UserID, req.FollowingID); err != nil {
		RespondServiceError(c, "unfollow_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FollowHandler) FollowerCount(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	count, err := h.followService.FollowerCount(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, "follower_count_failed", err)
		return
	}
	RespondOK(c, gin.H{"count": count})
}

func (h *FollowHandler) FollowingCount(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	count, err := h.followService.FollowingCount(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, "following_count_failed", err)
		return
	}
	RespondOK(c, gin.H{"count": count})
}

func (h *FollowHandler) IsFollowing(c *gin.Context) {
	followerID, err := uuid.Parse(c.Query("follower_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_follower_id", err)
		return
	}
	followingID, err := uuid.Parse(c.Query("following_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_following_id", err)
		return
	}
	following, err := h.followService.IsFollowing(c.Request.Context(), followerID, followingID)
	if err != nil {
		RespondServiceError(c, "is_following_failed", err)
		return
	}
	RespondOK(c, gin.H{"is_following": following})
}
