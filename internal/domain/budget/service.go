package budget

import (
	"context"
	"errors"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/cache"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/transaction"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

const cachePrefix = "budgets"

type Service struct {
	Repository   Repository
	Categories   CategoryGetter
	Transactions ExpenseSummer
	Cache        *cache.Cache
}

func NewService(repo Repository, categories CategoryGetter, transactions ExpenseSummer, c *cache.Cache) *Service {
	return &Service{
		Repository:   repo,
		Categories:   categories,
		Transactions: transactions,
		Cache:        c,
	}
}

func (s *Service) CreateBudget(ctx context.Context, budget *Budget) (*WithSpent, error) {
	if err := s.validate(budget); err != nil {
		return nil, err
	}
	if _, err := s.Categories.GetByID(ctx, budget.CategoryId, budget.UserId); err != nil {
		return nil, err
	}

	budget.Id = pkg.GenerateULIDObject()
	budget.CreatedAt = time.Now()
	budget.UpdatedAt = time.Now()

	if err := s.Repository.Create(ctx, budget); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	s.Cache.Invalidate(ctx, cachePrefix)
	return s.withSpent(ctx, budget)
}

func (s *Service) UpdateBudget(ctx context.Context, budgetID ulid.ULID, userID string, req *UpdateRequest) (*WithSpent, error) {
	existing, err := s.Repository.GetByID(ctx, budgetID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrBudgetNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if req.CategoryId != nil {
		if _, err := s.Categories.GetByID(ctx, *req.CategoryId, userID); err != nil {
			return nil, err
		}
		existing.CategoryId = *req.CategoryId
	}
	if req.Limit != nil {
		existing.Limit = *req.Limit
	}
	if req.Date != nil {
		existing.Date = *req.Date
	}

	if err := s.validate(existing); err != nil {
		return nil, err
	}

	existing.UpdatedAt = time.Now()
	if err := s.Repository.Update(ctx, existing); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	s.Cache.Invalidate(ctx, cachePrefix)
	return s.withSpent(ctx, existing)
}

func (s *Service) DeleteBudget(ctx context.Context, budgetID ulid.ULID, userID string) error {
	if _, err := s.Repository.GetByID(ctx, budgetID, userID); errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.ErrBudgetNotFound
	} else if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Repository.Delete(ctx, budgetID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	s.Cache.Invalidate(ctx, cachePrefix)
	return nil
}

func (s *Service) GetBudgetByID(ctx context.Context, budgetID ulid.ULID, userID string) (*WithSpent, error) {
	budget, err := s.getCachedBudget(ctx, budgetID, userID)
	if err != nil {
		return nil, err
	}
	return s.withSpent(ctx, budget)
}

// ListBudgets retorna os orçamentos do usuário. As entidades passam pelo
// cache, mas o gasto de cada uma é sempre recomputado a partir do banco.
func (s *Service) ListBudgets(ctx context.Context, userID string) ([]*WithSpent, error) {
	key := cache.Key(cachePrefix, map[string]interface{}{
		"op":     "list",
		"userId": userID,
	})

	var budgets []*Budget
	if !s.Cache.GetJSON(ctx, key, &budgets) {
		var err error
		budgets, err = s.Repository.GetAllByUser(ctx, userID)
		if err != nil {
			return nil, appErrors.NewDatabaseError(err)
		}
		s.Cache.SetJSON(ctx, key, budgets)
	}

	out := make([]*WithSpent, 0, len(budgets))
	for _, budget := range budgets {
		enriched, err := s.withSpent(ctx, budget)
		if err != nil {
			return nil, err
		}
		out = append(out, enriched)
	}
	return out, nil
}

func (s *Service) getCachedBudget(ctx context.Context, budgetID ulid.ULID, userID string) (*Budget, error) {
	key := cache.Key(cachePrefix, map[string]interface{}{
		"op":     "getById",
		"id":     budgetID.String(),
		"userId": userID,
	})

	var cached Budget
	if s.Cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	budget, err := s.Repository.GetByID(ctx, budgetID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrBudgetNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	s.Cache.SetJSON(ctx, key, budget)
	return budget, nil
}

// withSpent soma as despesas da categoria dentro do mês de referência do
// orçamento e anexa a categoria para a resposta.
func (s *Service) withSpent(ctx context.Context, budget *Budget) (*WithSpent, error) {
	from, to := budget.Period()
	spent, err := s.Transactions.SumByCategoryAndPeriod(ctx, budget.CategoryId, budget.UserId, transaction.Expense, from, to)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	category, err := s.Categories.GetByID(ctx, budget.CategoryId, budget.UserId)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == "CATEGORY_NOT_FOUND" {
			category = nil
		} else {
			return nil, err
		}
	}

	return &WithSpent{
		Budget:   budget,
		Category: category,
		Spent:    pkg.FormatAmount(spent),
	}, nil
}

func (s *Service) validate(budget *Budget) error {
	if budget.Limit <= 0 {
		return appErrors.NewValidationError("limit", "deve ser maior que zero")
	}
	if budget.Date.IsZero() {
		return appErrors.NewValidationError("date", "é obrigatório")
	}
	if pkg.IsEmptyULID(budget.CategoryId) {
		return appErrors.NewValidationError("categoryId", "é obrigatório")
	}
	return nil
}
