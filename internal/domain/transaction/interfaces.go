package transaction

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// CategoryChecker é implementado pelo serviço de categorias. A interface vive
// aqui para evitar ciclo de importação entre os domínios.
type CategoryChecker interface {
	EnsureExists(ctx context.Context, categoryID ulid.ULID, userID string) error
}
