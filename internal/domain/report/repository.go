package report

import (
	"context"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/domain/transaction"
)

// TransactionLister é implementado pelo repositório de transações.
type TransactionLister interface {
	ListByPeriod(ctx context.Context, userID string, from, to time.Time) ([]*transaction.Transaction, error)
}

// CategoryLister é implementado pelo repositório de categorias e retorna
// cada categoria do usuário com as transações dela dentro do intervalo.
type CategoryLister interface {
	ListWithTransactions(ctx context.Context, userID string, from, to time.Time) ([]*CategoryTransactions, error)
}
