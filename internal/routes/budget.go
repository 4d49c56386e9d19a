package routes

import (
	"net/http"

	"github.com/rodrigordgfs/CashWise-API/internal/contracts"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/budget"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateBudget(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.BudgetCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	categoryID, err := pkg.ParseULID(body.CategoryId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("categoryId", "formato inválido"))
		return
	}

	date, err := parseDateBody("date", body.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := &budget.Budget{
		UserId:     userID,
		CategoryId: categoryID,
		Limit:      body.Limit,
		Date:       date,
	}

	created, err := h.BudgetService.CreateBudget(c.Request.Context(), entity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListBudgets(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	budgets, err := h.BudgetService.ListBudgets(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

func (h *Handler) GetBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity, err := h.BudgetService.GetBudgetByID(c.Request.Context(), budgetID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) UpdateBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.BudgetUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &budget.UpdateRequest{Limit: body.Limit}
	if body.CategoryId != nil {
		categoryID, err := pkg.ParseULID(*body.CategoryId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("categoryId", "formato inválido"))
			return
		}
		req.CategoryId = &categoryID
	}
	if body.Date != nil {
		date, err := parseDateBody("date", *body.Date)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req.Date = &date
	}

	entity, err := h.BudgetService.UpdateBudget(c.Request.Context(), budgetID, userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) DeleteBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.BudgetService.DeleteBudget(c.Request.Context(), budgetID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Orçamento removido com sucesso"})
}
