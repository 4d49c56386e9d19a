package category

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// TransactionCounter é implementado pelo repositório de transações. A
// interface vive aqui para evitar ciclo de importação entre os domínios.
type TransactionCounter interface {
	CountByCategory(ctx context.Context, categoryID ulid.ULID, userID string) (int64, error)
}
