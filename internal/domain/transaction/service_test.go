package transaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/cache"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/transaction"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type fakeRepository struct {
	createFn      func(ctx context.Context, t *transaction.Transaction) error
	createBatchFn func(ctx context.Context, ts []*transaction.Transaction) error
	updateFn      func(ctx context.Context, t *transaction.Transaction) error
	deleteFn      func(ctx context.Context, id ulid.ULID, userID string) error
	getByIDFn     func(ctx context.Context, id ulid.ULID, userID string) (*transaction.Transaction, error)
	getAllFn      func(ctx context.Context, userID string, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error)

	created int
	batched int
}

func (f *fakeRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	f.created++
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeRepository) CreateBatch(ctx context.Context, ts []*transaction.Transaction) error {
	f.batched += len(ts)
	if f.createBatchFn != nil {
		return f.createBatchFn(ctx, ts)
	}
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id ulid.ULID, userID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, userID)
	}
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id ulid.ULID, userID string) (*transaction.Transaction, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id, userID)
	}
	return &transaction.Transaction{
		Id:          id,
		UserId:      userID,
		Type:        transaction.Expense,
		Description: "Mercado",
		Amount:      50,
		Date:        time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeRepository) GetAll(ctx context.Context, userID string, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, userID, filters, pagination)
	}
	return nil, 0, nil
}

func (f *fakeRepository) ListByPeriod(ctx context.Context, userID string, from, to time.Time) ([]*transaction.Transaction, error) {
	return nil, nil
}

func (f *fakeRepository) CountByCategory(ctx context.Context, categoryID ulid.ULID, userID string) (int64, error) {
	return 0, nil
}

func (f *fakeRepository) SumByCategoryAndPeriod(ctx context.Context, categoryID ulid.ULID, userID string, transactionType transaction.Types, from, to time.Time) (float64, error) {
	return 0, nil
}

type fakeCategoryChecker struct {
	ensureFn func(ctx context.Context, categoryID ulid.ULID, userID string) error
}

func (f *fakeCategoryChecker) EnsureExists(ctx context.Context, categoryID ulid.ULID, userID string) error {
	if f.ensureFn != nil {
		return f.ensureFn(ctx, categoryID, userID)
	}
	return nil
}

func newService(repo *fakeRepository, categories *fakeCategoryChecker) *transaction.Service {
	return transaction.NewService(repo, categories, cache.New(cache.NewMemoryStore(), time.Minute))
}

func validTransaction() *transaction.Transaction {
	return &transaction.Transaction{
		UserId:      "u1",
		Type:        transaction.Expense,
		Description: "Mercado",
		Amount:      150.5,
		Date:        time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		Account:     "Nubank",
	}
}

func TestCreateTransaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(tx *transaction.Transaction)
		wantCode string
	}{
		{name: "valid", mutate: func(tx *transaction.Transaction) {}},
		{
			name:     "invalid type",
			mutate:   func(tx *transaction.Transaction) { tx.Type = transaction.Types("TRANSFER") },
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "blank description",
			mutate:   func(tx *transaction.Transaction) { tx.Description = "   " },
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "negative amount",
			mutate:   func(tx *transaction.Transaction) { tx.Amount = -10 },
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "zero date",
			mutate:   func(tx *transaction.Transaction) { tx.Date = time.Time{} },
			wantCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			svc := newService(repo, &fakeCategoryChecker{})

			tx := validTransaction()
			tt.mutate(tx)

			err := svc.CreateTransaction(context.Background(), tx)
			if tt.wantCode != "" {
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != tt.wantCode {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
				if repo.created != 0 {
					t.Fatalf("transação inválida não pode ser persistida")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if pkg.IsEmptyULID(tx.Id) {
				t.Fatalf("id não foi gerado")
			}
		})
	}
}

func TestCreateTransactionRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	checker := &fakeCategoryChecker{
		ensureFn: func(ctx context.Context, categoryID ulid.ULID, userID string) error {
			return appErrors.ErrCategoryNotFound
		},
	}
	svc := newService(&fakeRepository{}, checker)

	tx := validTransaction()
	categoryID := pkg.GenerateULIDObject()
	tx.CategoryId = &categoryID

	err := svc.CreateTransaction(context.Background(), tx)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "CATEGORY_NOT_FOUND" {
		t.Fatalf("expected CATEGORY_NOT_FOUND, got %v", err)
	}
}

func TestTransactionWriteInvalidatesDerivedCaches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.New(cache.NewMemoryStore(), time.Minute)
	svc := transaction.NewService(&fakeRepository{}, &fakeCategoryChecker{}, c)

	keys := map[string]string{
		"transactions": cache.Key("transactions", map[string]interface{}{"userId": "u1"}),
		"reports":      cache.Key("reports", map[string]interface{}{"userId": "u1"}),
		"budgets":      cache.Key("budgets", map[string]interface{}{"userId": "u1"}),
		"categories":   cache.Key("categories", map[string]interface{}{"userId": "u1"}),
	}
	for _, key := range keys {
		c.SetJSON(ctx, key, 1)
	}

	if err := svc.CreateTransaction(ctx, validTransaction()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out int
	for _, prefix := range []string{"transactions", "reports", "budgets"} {
		if c.GetJSON(ctx, keys[prefix], &out) {
			t.Fatalf("cache de %s deveria ter sido invalidado", prefix)
		}
	}
	if !c.GetJSON(ctx, keys["categories"], &out) {
		t.Fatalf("cache de categorias não deveria ter sido invalidado")
	}
}

func TestUpdateTransactionNotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID, userID string) (*transaction.Transaction, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newService(repo, &fakeCategoryChecker{})

	_, err := svc.UpdateTransaction(context.Background(), pkg.GenerateULIDObject(), "u1", &transaction.UpdateRequest{})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "TRANSACTION_NOT_FOUND" {
		t.Fatalf("expected TRANSACTION_NOT_FOUND, got %v", err)
	}
}

func TestUpdateTransactionAppliesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeRepository{}, &fakeCategoryChecker{})

	paid := true
	updated, err := svc.UpdateTransaction(context.Background(), pkg.GenerateULIDObject(), "u1", &transaction.UpdateRequest{Paid: &paid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Paid {
		t.Fatalf("paid não foi atualizado: %+v", updated)
	}
	if updated.Description != "Mercado" || updated.Amount != 50 {
		t.Fatalf("campos não informados deveriam ser preservados: %+v", updated)
	}
}

func TestDeleteTransactionNotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID, userID string) (*transaction.Transaction, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newService(repo, &fakeCategoryChecker{})

	err := svc.DeleteTransaction(context.Background(), pkg.GenerateULIDObject(), "u1")
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "TRANSACTION_NOT_FOUND" {
		t.Fatalf("expected TRANSACTION_NOT_FOUND, got %v", err)
	}
}

func TestImportOFX(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{}
	svc := newService(repo, &fakeCategoryChecker{})

	transactions := []*transaction.Transaction{
		{Type: transaction.Income, Description: "Salário", Amount: 5000, Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{Type: transaction.Expense, Description: "Mercado", Amount: 300, Date: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)},
	}

	imported, err := svc.ImportOFX(context.Background(), "u1", "Nubank", transactions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imported != 2 || repo.batched != 2 {
		t.Fatalf("expected 2 imported, got %d (batched %d)", imported, repo.batched)
	}
	for _, tx := range transactions {
		if tx.UserId != "u1" || tx.Account != "Nubank" || !tx.Paid {
			t.Fatalf("transação importada incompleta: %+v", tx)
		}
		if pkg.IsEmptyULID(tx.Id) {
			t.Fatalf("id não foi gerado na importação")
		}
	}
}

func TestImportOFXRejectsEmptyFile(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeRepository{}, &fakeCategoryChecker{})

	_, err := svc.ImportOFX(context.Background(), "u1", "Nubank", nil)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestListTransactionsCachesList(t *testing.T) {
	t.Parallel()

	fetches := 0
	repo := &fakeRepository{
		getAllFn: func(ctx context.Context, userID string, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
			fetches++
			return []*transaction.Transaction{validTransaction()}, 1, nil
		},
	}
	svc := newService(repo, &fakeCategoryChecker{})

	ctx := context.Background()
	if _, _, err := svc.ListTransactions(ctx, "u1", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, total, err := svc.ListTransactions(ctx, "u1", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetches != 1 {
		t.Fatalf("segunda listagem deveria vir do cache, fetches = %d", fetches)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("resultado inesperado do cache: %v (total %d)", items, total)
	}
}
