package routes

import (
	"net/http"

	"github.com/rodrigordgfs/CashWise-API/internal/contracts"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/goal"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateGoal(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.GoalCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	deadline, err := parseDateBody("deadline", body.Deadline)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := &goal.Goal{
		UserId:        userID,
		Title:         body.Title,
		Description:   body.Description,
		TargetAmount:  body.TargetAmount,
		CurrentAmount: body.CurrentAmount,
		Deadline:      deadline,
	}

	if body.CategoryId != "" {
		categoryID, err := pkg.ParseULID(body.CategoryId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("categoryId", "formato inválido"))
			return
		}
		entity.CategoryId = categoryID
	}

	if err := h.GoalService.CreateGoal(c.Request.Context(), entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity)
}

func (h *Handler) ListGoals(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	goals, err := h.GoalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

func (h *Handler) GetGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity, err := h.GoalService.GetGoalByID(c.Request.Context(), goalID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) UpdateGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.GoalUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &goal.UpdateRequest{
		Title:         body.Title,
		Description:   body.Description,
		TargetAmount:  body.TargetAmount,
		CurrentAmount: body.CurrentAmount,
	}
	if body.CategoryId != nil {
		categoryID, err := pkg.ParseULID(*body.CategoryId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("categoryId", "formato inválido"))
			return
		}
		req.CategoryId = &categoryID
	}
	if body.Deadline != nil {
		deadline, err := parseDateBody("deadline", *body.Deadline)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req.Deadline = &deadline
	}

	entity, err := h.GoalService.UpdateGoal(c.Request.Context(), goalID, userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.GoalService.DeleteGoal(c.Request.Context(), goalID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Meta removida com sucesso"})
}
