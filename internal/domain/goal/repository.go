package goal

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, goal *Goal) error
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, goalID ulid.ULID, userID string) error
	GetByID(ctx context.Context, goalID ulid.ULID, userID string) (*Goal, error)
	GetAllByUser(ctx context.Context, userID string) ([]*Goal, error)
}
