package routes

import (
	"net/http"

	"github.com/rodrigordgfs/CashWise-API/internal/contracts"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/transaction"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	date, err := parseDateBody("date", body.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := &transaction.Transaction{
		UserId:      userID,
		Type:        transaction.Types(body.Type),
		Description: body.Description,
		Date:        date,
		Account:     body.Account,
		Amount:      body.Amount,
		Paid:        body.Paid,
	}

	if body.CategoryId != "" {
		categoryID, err := pkg.ParseULID(body.CategoryId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("categoryId", "formato inválido"))
			return
		}
		entity.CategoryId = &categoryID
	}

	if err := h.TransactionService.CreateTransaction(c.Request.Context(), entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity)
}

func (h *Handler) ImportTransactionsOFX(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("file", "é obrigatório"))
		return
	}
	defer file.Close()

	transactions, err := transaction.ParseOFX(file)
	if err != nil {
		h.respondError(c, err)
		return
	}

	account := c.PostForm("account")

	imported, err := h.TransactionService.ImportOFX(c.Request.Context(), userID, account, transactions)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.OFXImportResponse{
		Message:  "Transações importadas com sucesso",
		Imported: imported,
	})
}

func (h *Handler) GetTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filters := &transaction.Filters{Search: c.Query("search")}

	switch c.DefaultQuery("sort", "desc") {
	case "asc":
		filters.SortAsc = true
	case "desc":
	default:
		h.respondError(c, appErrors.NewValidationError("sort", "deve ser asc ou desc"))
		return
	}

	if t := c.Query("type"); t != "" {
		transactionType := transaction.Types(t)
		if !transactionType.IsValid() {
			h.respondError(c, appErrors.NewValidationError("type", "deve ser INCOME ou EXPENSE"))
			return
		}
		filters.Type = &transactionType
	}

	if filters.Date, err = parseDateQuery(c, "date"); err != nil {
		h.respondError(c, err)
		return
	}
	if filters.PeriodFrom, err = parseDateQuery(c, "date__gte"); err != nil {
		h.respondError(c, err)
		return
	}
	if filters.PeriodTo, err = parseDateQuery(c, "date__lte"); err != nil {
		h.respondError(c, err)
		return
	}

	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := pkg.ParseULID(raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("categoryId", "formato inválido"))
			return
		}
		filters.CategoryId = &categoryID
	}

	pagination := h.parsePagination(c)

	transactions, total, err := h.TransactionService.ListTransactions(c.Request.Context(), userID, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setPaginationHeaders(c, pagination, total)
	c.JSON(http.StatusOK, transactions)
}

func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity, err := h.TransactionService.GetTransactionByID(c.Request.Context(), transactionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &transaction.UpdateRequest{
		Description: body.Description,
		Account:     body.Account,
		Amount:      body.Amount,
		Paid:        body.Paid,
	}
	if body.Type != nil {
		transactionType := transaction.Types(*body.Type)
		req.Type = &transactionType
	}
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

	entity, err := h.TransactionService.UpdateTransaction(c.Request.Context(), transactionID, userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.TransactionService.DeleteTransaction(c.Request.Context(), transactionID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transação removida com sucesso"})
}
