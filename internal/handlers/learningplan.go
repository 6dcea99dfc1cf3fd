package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillconnect/server/internal/logger"
	"github.com/skillconnect/server/internal/services"
	"github.com/skillconnect/server/internal/types"
)

type LearningPlanHandler struct {
	log         *logger.Logger
	planService services.LearningPlanService
}

func NewLearningPlanHandler(log *logger.Logger, planService services.LearningPlanService) *LearningPlanHandler {
	return &LearningPlanHandler{
		log:         log.With("handler", "LearningPlanHandler"),
		planService: planService,
	}
}

type learningPlanRequest struct {
	OwnerUserID uuid.UUID  `json:"owner_user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      string     `json:"status"`
}

func (h *LearningPlanHandler) Create(c *gin.Context) {
	var req learningPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	plan, err := h.planService.CreatePlan(c.Request.Context(), &types.LearningPlan{
		OwnerUserID: req.OwnerUserID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	})
	if err != nil {
		h.log.Error("Create plan failed", "error", err)
		RespondServiceError(c, "create_plan_failed", err)
		return
	}
	RespondOK(c, gin.H{"plan": plan})
}

func (h *LearningPlanHandler) GetByID(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_plan_id", err)
		return
	}
	plan, err := h.planService.GetPlan(c.Request.Context(), planID)
	if err != nil {
		RespondServiceError(c, "load_plan_failed", err)
		return
	}
	if plan == nil {
		RespondError(c, http.StatusNotFound, "plan_not_found", nil)
		return
	}
	RespondOK(c, gin.H{"plan": plan})
}

func (h *LearningPlanHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	plans, err := h.planService.ListPlansByUser(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, "list_plans_failed", err)
		return
	}
	RespondOK(c, gin.H{"plans": plans})
}

func (h *LearningPlanHandler) Update(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_plan_id", err)
		return
	}
	var req learningPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	plan, err := h.planService.UpdatePlan(c.Request.Context(), &types.LearningPlan{
		ID:          planID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	})
	if err != nil {
		h.log.Error("Update plan failed", "error", err, "plan_id", planID)
		RespondServiceError(c, "update_plan_failed", err)
		return
	}
	RespondOK(c, gin.H{"plan": plan})
}

func (h *LearningPlanHandler) Delete(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_plan_id", err)
		return
	}
	if err := h.planService.DeletePlan(c.Request.Context(), planID); err != nil {
		RespondServiceError(c, "delete_plan_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LearningPlanHandler) AddItem(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_plan_id", err)
		return
	}
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	item, err := h.planService.AddItem(c.Request.Context(), &types.LearningPlanItem{
		Title:       req.Title,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	}, planID)
	if err != nil {
		h.log.Error("Add item failed", "error", err, "plan_id", planID)
		RespondServiceError(c, "add_item_failed", err)
		return
	}
	RespondOK(c, gin.H{"item": item})
}

func (h *LearningPlanHandler) CompleteItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_item_id", err)
		return
	}
	var req struct {
		CompletionDate *time.Time `json:"completion_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	item, err := h.planService.CompleteItem(c.Request.Context(), itemID, req.CompletionDate)
	if err != nil {
		RespondServiceError(c, "complete_item_failed", err)
		return
	}
	RespondOK(c, gin.H{"item": item})
}

func (h *LearningPlanHandler) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_item_id", err)
		return
	}
	if err := h.planService.RemoveItem(c.Request.Context(), itemID); err != nil {
		RespondServiceError(c, "remove_item_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
