package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillconnect/server/internal/logger"
	"github.com/skillconnect/server/internal/requestdata"
	"github.com/skillconnect/server/internal/services"
	"github.com/skillconnect/server/internal/types"
)

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
	return &UserHandler{
		log:         log.With("handler", "UserHandler"),
		userService: userService,
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	user, err := h.userService.GetByID(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondServiceError(c, "load_user_failed", err)
		return
	}
	if user == nil {
		RespondError(c, http.StatusNotFound, "user_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"user": user})
}

func (h *UserHandler) GetByID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, "load_user_failed", err)
		return
	}
	if user == nil {
		RespondError(c, http.StatusNotFound, "user_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"user": user})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, "list_users_failed", err)
		return
	}
	RespondOK(c, gin.H{"users": users})
}

func (h *UserHandler) Update(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	var req types.User
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	user, err := h.userService.Update(c.Request.Context(), userID, &req)
	if err != nil {
		RespondServiceError(c, "update_user_failed", err)
		return
	}
	RespondOK(c, gin.H{"user": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		RespondServiceError(c, "delete_user_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ExistsByEmail(c *gin.Context) {
	exists, err := h.userService.ExistsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		RespondServiceError(c, "check_email_failed", err)
		return
	}
	RespondOK(c, gin.H{"exists": exists})
}

func (h *UserHandler) ExistsByUsername(c *gin.Context) {
	exists, err := h.userService.ExistsByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		RespondServiceError(c, "check_username_failed", err)
		return
	}
	RespondOK(c, gin.H{"exists": exists})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.userService.ChangePassword(c.Request.Context(), rd.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		RespondServiceError(c, "change_password_failed", err)
		return
	}
	RespondOK(c, gin.H{"status": "password_changed"})
}
