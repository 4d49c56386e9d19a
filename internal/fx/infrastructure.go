package fx

import (
	"github.com/rodrigordgfs/CashWise-API/config"
	"github.com/rodrigordgfs/CashWise-API/internal/cache"
	"github.com/rodrigordgfs/CashWise-API/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newCache,
		newTransactionRepository,
		newCategoryRepository,
		newBudgetRepository,
		newGoalRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newCache(cfg *config.Config) *cache.Cache {
	return infrastructure.NewCache(cfg)
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return infrastructure.NewTransactionRepository(db)
}

func newCategoryRepository(db *gorm.DB) *infrastructure.CategoryRepository {
	return infrastructure.NewCategoryRepository(db)
}

func newBudgetRepository(db *gorm.DB) *infrastructure.BudgetRepository {
	return infrastructure.NewBudgetRepository(db)
}

func newGoalRepository(db *gorm.DB) *infrastructure.GoalRepository {
	return infrastructure.NewGoalRepository(db)
}
