package report

import (
	"context"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/cache"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
)

const cachePrefix = "reports"

// Service executa o pipeline de relatório: valida o intervalo, busca as
// transações uma única vez, agrupa, agrega e formata. Nenhum estado é
// persistido.
type Service struct {
	Transactions TransactionLister
	Categories   CategoryLister
	Cache        *cache.Cache
}

func NewService(transactions TransactionLister, categories CategoryLister, c *cache.Cache) *Service {
	return &Service{
		Transactions: transactions,
		Categories:   categories,
		Cache:        c,
	}
}

func (s *Service) ListMonthlyReports(ctx context.Context, userID string, from, to time.Time) ([]*MonthlyReport, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	key := s.key("monthly", userID, from, to, 0)
	var cached []*MonthlyReport
	if s.Cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	transactions, err := s.Transactions.ListByPeriod(ctx, userID, from, to)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	reports, err := buildMonthly(transactions)
	if err != nil {
		return nil, err
	}

	s.Cache.SetJSON(ctx, key, reports)
	return reports, nil
}

func (s *Service) ListCategoriesReports(ctx context.Context, userID string, from, to time.Time, limit int) ([]*CategoryReport, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, appErrors.NewValidationError("limit", "deve ser maior que zero")
	}

	key := s.key("categories", userID, from, to, limit)
	var cached []*CategoryReport
	if s.Cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	groups, err := s.Categories.ListWithTransactions(ctx, userID, from, to)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	reports, err := buildCategories(groups, limit)
	if err != nil {
		return nil, err
	}

	s.Cache.SetJSON(ctx, key, reports)
	return reports, nil
}

func (s *Service) ListBalanceReports(ctx context.Context, userID string, from, to time.Time) ([]*BalanceReport, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	key := s.key("balance", userID, from, to, 0)
	var cached []*BalanceReport
	if s.Cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	transactions, err := s.Transactions.ListByPeriod(ctx, userID, from, to)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	reports, err := buildBalance(transactions)
	if err != nil {
		return nil, err
	}

	s.Cache.SetJSON(ctx, key, reports)
	return reports, nil
}

func (s *Service) ListSummaryReports(ctx context.Context, userID string, from, to time.Time) (*SummaryReport, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	key := s.key("summary", userID, from, to, 0)
	var cached SummaryReport
	if s.Cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	transactions, err := s.Transactions.ListByPeriod(ctx, userID, from, to)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	summary, err := buildSummary(transactions)
	if err != nil {
		return nil, err
	}

	s.Cache.SetJSON(ctx, key, summary)
	return summary, nil
}

func (s *Service) key(op, userID string, from, to time.Time, limit int) string {
	filters := map[string]interface{}{
		"op":          op,
		"userId":      userID,
		"period__gte": from.Format("2006-01-02"),
		"period__lte": to.Format("2006-01-02"),
	}
	if limit > 0 {
		filters["limit"] = limit
	}
	return cache.Key(cachePrefix, filters)
}

// validateRange rejeita intervalos sem início ou fim e com fim anterior ao
// início. Intervalo sem transações não é erro.
func validateRange(from, to time.Time) error {
	if from.IsZero() {
		return appErrors.NewValidationError("period__gte", "é obrigatório")
	}
	if to.IsZero() {
		return appErrors.NewValidationError("period__lte", "é obrigatório")
	}
	if to.Before(from) {
		return appErrors.NewValidationError("period__lte", "deve ser maior ou igual à data inicial")
	}
	return nil
}
