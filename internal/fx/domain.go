package fx

import (
	"github.com/rodrigordgfs/CashWise-API/internal/cache"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/budget"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/category"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/goal"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/report"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/transaction"
	"github.com/rodrigordgfs/CashWise-API/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newCategoryService,
		newTransactionService,
		newBudgetService,
		newGoalService,
		newReportService,
	),
)

func newCategoryService(repo *infrastructure.CategoryRepository, transactionRepo *infrastructure.TransactionRepository, c *cache.Cache) *category.Service {
	return category.NewService(repo, transactionRepo, c)
}

func newTransactionService(repo *infrastructure.TransactionRepository, categorySvc *category.Service, c *cache.Cache) *transaction.Service {
	return transaction.NewService(repo, categorySvc, c)
}

func newBudgetService(repo *infrastructure.BudgetRepository, categorySvc *category.Service, transactionRepo *infrastructure.TransactionRepository, c *cache.Cache) *budget.Service {
	return budget.NewService(repo, categorySvc, transactionRepo, c)
}

func newGoalService(repo *infrastructure.GoalRepository, categorySvc *category.Service, c *cache.Cache) *goal.Service {
	return goal.NewService(repo, categorySvc, c)
}

func newReportService(transactionRepo *infrastructure.TransactionRepository, categoryRepo *infrastructure.CategoryRepository, c *cache.Cache) *report.Service {
	return report.NewService(transactionRepo, categoryRepo, c)
}
