package routes

import (
	"net/http"
	"time"

	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/gin-gonic/gin"
)

// parseReportPeriod lê o intervalo period__gte/period__lte obrigatório dos
// relatórios.
func (h *Handler) parseReportPeriod(c *gin.Context) (time.Time, time.Time, error) {
	from, err := parseDateQuery(c, "period__gte")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDateQuery(c, "period__lte")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	var fromValue, toValue time.Time
	if from != nil {
		fromValue = *from
	}
	if to != nil {
		toValue = *to
	}
	return fromValue, toValue, nil
}

func (h *Handler) GetMonthlyReports(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	from, to, err := h.parseReportPeriod(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	reports, err := h.ReportService.ListMonthlyReports(c.Request.Context(), userID, from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *Handler) GetCategoriesReports(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	from, to, err := h.parseReportPeriod(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := pkg.ParseInt(raw)
		if err != nil || parsed <= 0 {
			h.respondError(c, appErrors.NewValidationError("limit", "deve ser maior que zero"))
			return
		}
		limit = parsed
	}

	reports, err := h.ReportService.ListCategoriesReports(c.Request.Context(), userID, from, to, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *Handler) GetBalanceReports(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	from, to, err := h.parseReportPeriod(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	reports, err := h.ReportService.ListBalanceReports(c.Request.Context(), userID, from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *Handler) GetSummaryReports(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	from, to, err := h.parseReportPeriod(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	summary, err := h.ReportService.ListSummaryReports(c.Request.Context(), userID, from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
