package budget

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, budget *Budget) error
	Update(ctx context.Context, budget *Budget) error
	Delete(ctx context.Context, budgetID ulid.ULID, userID string) error
	GetByID(ctx context.Context, budgetID ulid.ULID, userID string) (*Budget, error)
	GetAllByUser(ctx context.Context, userID string) ([]*Budget, error)
}
