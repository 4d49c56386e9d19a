package routes

import (
	"strconv"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/domain/budget"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/category"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/goal"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/report"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/transaction"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/logger"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	TransactionService *transaction.Service
	CategoryService    *category.Service
	BudgetService      *budget.Service
	GoalService        *goal.Service
	ReportService      *report.Service
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (string, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", appErrors.ErrUnauthorized
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", appErrors.ErrUnauthorized
	}

	return id, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	perPage := c.DefaultQuery("perPage", "10")

	var pageNum, perPageNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if pp, err := pkg.ParseInt(perPage); err == nil && pp > 0 {
		perPageNum = pp
	} else {
		perPageNum = 10
	}

	return &pkg.PaginationParams{
		Page:    pageNum,
		PerPage: perPageNum,
	}
}

// setPaginationHeaders expõe os metadados de paginação nos headers da
// resposta, mantendo o corpo como um array puro.
func (h *Handler) setPaginationHeaders(c *gin.Context, pagination *pkg.PaginationParams, total int64) {
	c.Header("x-total-count", strconv.FormatInt(total, 10))
	c.Header("x-current-page", strconv.Itoa(pagination.Page))
	c.Header("x-per-page", strconv.Itoa(pagination.PerPage))
	c.Header("x-total-pages", strconv.Itoa(pagination.TotalPages(total)))
}

// parseDateQuery lê um parâmetro de query no formato ISO (2006-01-02).
// Retorna nil quando o parâmetro está ausente.
func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, appErrors.NewValidationError(name, "deve ser uma data válida no formato YYYY-MM-DD")
	}
	return &parsed, nil
}

func parseDateBody(field, raw string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		// Aceita também timestamps completos em RFC 3339.
		parsed, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, appErrors.NewValidationError(field, "deve ser uma data válida")
		}
	}
	return parsed, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
