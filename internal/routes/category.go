package routes

import (
	"net/http"

	"github.com/rodrigordgfs/CashWise-API/internal/contracts"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/category"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.CategoryCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	entity := &category.Category{
		UserId: userID,
		Name:   body.Name,
		Type:   category.Types(body.Type),
		Color:  body.Color,
		Icon:   body.Icon,
	}

	if err := h.CategoryService.Create(c.Request.Context(), entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity)
}

func (h *Handler) ListCategories(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var filters *category.Filters
	if t := c.Query("type"); t != "" {
		categoryType := category.Types(t)
		if !categoryType.IsValid() {
			h.respondError(c, appErrors.NewValidationError("type", "deve ser INCOME ou EXPENSE"))
			return
		}
		filters = &category.Filters{Type: &categoryType}
	}

	pagination := h.parsePagination(c)

	categories, total, err := h.CategoryService.GetAll(c.Request.Context(), userID, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setPaginationHeaders(c, pagination, total)
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity, err := h.CategoryService.GetByID(c.Request.Context(), categoryID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &category.UpdateRequest{
		Name:  body.Name,
		Color: body.Color,
		Icon:  body.Icon,
	}
	if body.Type != nil {
		categoryType := category.Types(*body.Type)
		req.Type = &categoryType
	}

	entity, err := h.CategoryService.Update(c.Request.Context(), categoryID, userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.CategoryService.Delete(c.Request.Context(), categoryID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Categoria removida com sucesso"})
}
