package budget

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rodrigordgfs/CashWise-API/internal/domain/category"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/transaction"
)

// CategoryGetter é implementado pelo serviço de categorias.
type CategoryGetter interface {
	GetByID(ctx context.Context, categoryID ulid.ULID, userID string) (*category.Category, error)
}

// ExpenseSummer é implementado pelo repositório de transações e soma as
// despesas de uma categoria no intervalo [from, to).
type ExpenseSummer interface {
	SumByCategoryAndPeriod(ctx context.Context, categoryID ulid.ULID, userID string, transactionType transaction.Types, from, to time.Time) (float64, error)
}
