package transaction

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/cache"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

const cachePrefix = "transactions"

type Service struct {
	Repository Repository
	Categories CategoryChecker
	Cache      *cache.Cache
}

func NewService(repo Repository, categories CategoryChecker, c *cache.Cache) *Service {
	return &Service{
		Repository: repo,
		Categories: categories,
		Cache:      c,
	}
}

type cachedList struct {
	Items []*Transaction `json:"items"`
	Total int64          `json:"total"`
}

func (s *Service) CreateTransaction(ctx context.Context, transaction *Transaction) error {
	if err := s.validate(ctx, transaction); err != nil {
		return err
	}

	transaction.Id = pkg.GenerateULIDObject()
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = time.Now()

	if err := s.Repository.Create(ctx, transaction); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	s.invalidate(ctx)
	return nil
}

// ImportOFX persiste em lote as transações extraídas de um extrato OFX. As
// transações importadas não possuem categoria; o tipo e o valor absoluto vêm
// do sinal de TRNAMT.
func (s *Service) ImportOFX(ctx context.Context, userID, account string, transactions []*Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, appErrors.NewValidationError("file", "o arquivo OFX não possui transações")
	}

	now := time.Now()
	for _, transaction := range transactions {
		transaction.Id = pkg.GenerateULIDObject()
		transaction.UserId = userID
		transaction.Account = account
		transaction.Paid = true
		transaction.CreatedAt = now
		transaction.UpdatedAt = now

		if transaction.Date.IsZero() {
			return 0, appErrors.NewValidationError("date", "é obrigatório")
		}
		if !transaction.Type.IsValid() {
			return 0, appErrors.NewValidationError("type", "deve ser INCOME ou EXPENSE")
		}
	}

	if err := s.Repository.CreateBatch(ctx, transactions); err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}

	s.invalidate(ctx)
	return len(transactions), nil
}

func (s *Service) UpdateTransaction(ctx context.Context, transactionID ulid.ULID, userID string, req *UpdateRequest) (*Transaction, error) {
	existing, err := s.Repository.GetByID(ctx, transactionID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrTransactionNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if req.Type != nil {
		existing.Type = *req.Type
	}
	if req.Description != nil {
		existing.Description = strings.TrimSpace(*req.Description)
	}
	if req.CategoryId != nil {
		existing.CategoryId = req.CategoryId
	}
	if req.Date != nil {
		existing.Date = *req.Date
	}
	if req.Account != nil {
		existing.Account = strings.TrimSpace(*req.Account)
	}
	if req.Amount != nil {
		existing.Amount = *req.Amount
	}
	if req.Paid != nil {
		existing.Paid = *req.Paid
	}

	if err := s.validate(ctx, existing); err != nil {
		return nil, err
	}

	existing.UpdatedAt = time.Now()
	if err := s.Repository.Update(ctx, existing); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	s.invalidate(ctx)
	return existing, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, transactionID ulid.ULID, userID string) error {
	if _, err := s.Repository.GetByID(ctx, transactionID, userID); errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.ErrTransactionNotFound
	} else if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Repository.Delete(ctx, transactionID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *Service) GetTransactionByID(ctx context.Context, transactionID ulid.ULID, userID string) (*Transaction, error) {
	key := cache.Key(cachePrefix, map[string]interface{}{
		"op":     "getById",
		"id":     transactionID.String(),
		"userId": userID,
	})

	var cached Transaction
	if s.Cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	transaction, err := s.Repository.GetByID(ctx, transactionID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrTransactionNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	s.Cache.SetJSON(ctx, key, transaction)
	return transaction, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID string, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	key := cache.Key(cachePrefix, listKeyFilters(userID, filters, pagination))

	var cached cachedList
	if s.Cache.GetJSON(ctx, key, &cached) {
		return cached.Items, cached.Total, nil
	}

	transactions, total, err := s.Repository.GetAll(ctx, userID, filters, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	s.Cache.SetJSON(ctx, key, cachedList{Items: transactions, Total: total})
	return transactions, total, nil
}

func (s *Service) validate(ctx context.Context, transaction *Transaction) error {
	if !transaction.Type.IsValid() {
		return appErrors.NewValidationError("type", "deve ser INCOME ou EXPENSE")
	}
	transaction.Description = strings.TrimSpace(transaction.Description)
	if transaction.Description == "" {
		return appErrors.NewValidationError("description", "é obrigatório")
	}
	if transaction.Amount < 0 {
		return appErrors.NewValidationError("amount", "deve ser maior ou igual a zero")
	}
	if transaction.Date.IsZero() {
		return appErrors.NewValidationError("date", "é obrigatório")
	}

	if transaction.CategoryId != nil {
		if err := s.Categories.EnsureExists(ctx, *transaction.CategoryId, transaction.UserId); err != nil {
			return err
		}
	}

	return nil
}

// invalidate cobre os três recursos derivados de transações: as próprias
// listagens, os relatórios agregados e o "spent" dos orçamentos.
func (s *Service) invalidate(ctx context.Context) {
	s.Cache.Invalidate(ctx, cachePrefix, "reports", "budgets")
}

func listKeyFilters(userID string, filters *Filters, pagination *pkg.PaginationParams) map[string]interface{} {
	keyFilters := map[string]interface{}{
		"op":      "list",
		"userId":  userID,
		"page":    pagination.Page,
		"perPage": pagination.PerPage,
	}
	if filters == nil {
		return keyFilters
	}
	if filters.Type != nil {
		keyFilters["type"] = string(*filters.Type)
	}
	if filters.Search != "" {
		keyFilters["search"] = filters.Search
	}
	if filters.Date != nil {
		keyFilters["date"] = filters.Date.Format("2006-01-02")
	}
	if filters.PeriodFrom != nil {
		keyFilters["date__gte"] = filters.PeriodFrom.Format("2006-01-02")
	}
	if filters.PeriodTo != nil {
		keyFilters["date__lte"] = filters.PeriodTo.Format("2006-01-02")
	}
	if filters.CategoryId != nil {
		keyFilters["categoryId"] = filters.CategoryId.String()
	}
	if filters.SortAsc {
		keyFilters["sort"] = "asc"
	}
	return keyFilters
}
