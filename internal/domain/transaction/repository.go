package transaction

import (
	"context"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	CreateBatch(ctx context.Context, transactions []*Transaction) error
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, transactionID ulid.ULID, userID string) error
	GetByID(ctx context.Context, transactionID ulid.ULID, userID string) (*Transaction, error)
	GetAll(ctx context.Context, userID string, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
	ListByPeriod(ctx context.Context, userID string, from, to time.Time) ([]*Transaction, error)
	CountByCategory(ctx context.Context, categoryID ulid.ULID, userID string) (int64, error)
	SumByCategoryAndPeriod(ctx context.Context, categoryID ulid.ULID, userID string, transactionType Types, from, to time.Time) (float64, error)
}
