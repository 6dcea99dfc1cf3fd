package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/skillconnect/server/internal/requestdata"
	"github.com/skillconnect/server/internal/services"
	"github.com/skillconnect/server/internal/types"
)

type PostHandler struct {
	postService services.PostService
}

func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		Content string         `json:"content"`
		Media   datatypes.JSON `json:"media"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	post, err := h.postService.CreatePost(c.Request.Context(), &types.Post{
		UserID:  rd.UserID,
		Content: req.Content,
		Media:   req.Media,
	})
	if err != nil {
		RespondServiceError(c, "create_post_failed", err)
		return
	}
	RespondOK(c, gin.H{"post": post})
}

func (h *PostHandler) GetByID(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_post_id", err)
		return
	}
	post, err := h.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		RespondServiceError(c, "load_post_failed", err)
		return
	}
	if post == nil {
		RespondError(c, http.StatusNotFound, "post_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"post": post})
}

func (h *PostHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	posts, err := h.postService.ListPostsByUser(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, "list_posts_failed", err)
		return
	}
	RespondOK(c, gin.H{"posts": posts})
}

func (h *PostHandler) Delete(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_post_id", err)
		return
	}
	if err := h.postService.DeletePost(c.Request.Context(), postID); err != nil {
		RespondServiceError(c, "delete_post_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
