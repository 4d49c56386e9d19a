package fx

import (
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/domain/budget"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/category"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/goal"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/report"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/transaction"
	"github.com/rodrigordgfs/CashWise-API/internal/middleware"
	"github.com/rodrigordgfs/CashWise-API/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler HTTP e o rate limiter global
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	transactionSvc *transaction.Service,
	categorySvc *category.Service,
	budgetSvc *budget.Service,
	goalSvc *goal.Service,
	reportSvc *report.Service,
) *routes.Handler {
	return &routes.Handler{
		TransactionService: transactionSvc,
		CategoryService:    categorySvc,
		BudgetService:      budgetSvc,
		GoalService:        goalSvc,
		ReportService:      reportSvc,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
