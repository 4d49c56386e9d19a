package category

import (
	"context"

	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID ulid.ULID, userID string) error
	GetByID(ctx context.Context, categoryID ulid.ULID, userID string) (*Category, error)
	GetAll(ctx context.Context, userID string, filters *Filters, pagination *pkg.PaginationParams) ([]*Category, int64, error)
}
