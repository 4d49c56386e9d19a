package category_test

import (
	"context"
	"testing"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/cache"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/category"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type fakeRepository struct {
	createFn  func(ctx context.Context, c *category.Category) error
	updateFn  func(ctx context.Context, c *category.Category) error
	deleteFn  func(ctx context.Context, id ulid.ULID, userID string) error
	getByIDFn func(ctx context.Context, id ulid.ULID, userID string) (*category.Category, error)
	getAllFn  func(ctx context.Context, userID string, filters *category.Filters, pagination *pkg.PaginationParams) ([]*category.Category, int64, error)

	deleted int
}

func (f *fakeRepository) Create(ctx context.Context, c *category.Category) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, c *category.Category) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, c)
	}
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id ulid.ULID, userID string) error {
	f.deleted++
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, userID)
	}
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id ulid.ULID, userID string) (*category.Category, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id, userID)
	}
	return &category.Category{Id: id, UserId: userID, Name: "Alimentação", Type: category.Expense}, nil
}

func (f *fakeRepository) GetAll(ctx context.Context, userID string, filters *category.Filters, pagination *pkg.PaginationParams) ([]*category.Category, int64, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, userID, filters, pagination)
	}
	return nil, 0, nil
}

type fakeTransactionCounter struct {
	countFn func(ctx context.Context, categoryID ulid.ULID, userID string) (int64, error)
}

func (f *fakeTransactionCounter) CountByCategory(ctx context.Context, categoryID ulid.ULID, userID string) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx, categoryID, userID)
	}
	return 0, nil
}

func newService(repo *fakeRepository, counter *fakeTransactionCounter) *category.Service {
	return category.NewService(repo, counter, cache.New(cache.NewMemoryStore(), time.Minute))
}

func TestCreateCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category *category.Category
		wantCode string
		wantName string
	}{
		{
			name:     "valid",
			category: &category.Category{UserId: "u1", Name: "alimentação fora", Type: category.Expense},
			wantName: "Alimentação Fora",
		},
		{
			name:     "empty name",
			category: &category.Category{UserId: "u1", Name: "   ", Type: category.Expense},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "invalid type",
			category: &category.Category{UserId: "u1", Name: "Mercado", Type: category.Types("OTHER")},
			wantCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&fakeRepository{}, &fakeTransactionCounter{})

			err := svc.Create(context.Background(), tt.category)
			if tt.wantCode != "" {
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != tt.wantCode {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.category.Name != tt.wantName {
				t.Fatalf("nome deveria ser normalizado para %q, got %q", tt.wantName, tt.category.Name)
			}
			if pkg.IsEmptyULID(tt.category.Id) {
				t.Fatalf("id não foi gerado")
			}
		})
	}
}

func TestDeleteCategoryWithTransactionsIsBlocked(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{}
	counter := &fakeTransactionCounter{
		countFn: func(ctx context.Context, categoryID ulid.ULID, userID string) (int64, error) {
			return 3, nil
		},
	}
	svc := newService(repo, counter)

	err := svc.Delete(context.Background(), pkg.GenerateULIDObject(), "u1")
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "BUSINESS_RULE" {
		t.Fatalf("expected BUSINESS_RULE, got %v", err)
	}
	if repo.deleted != 0 {
		t.Fatalf("categoria com transações não pode ser excluída")
	}
}

func TestDeleteCategoryWithoutTransactions(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{}
	svc := newService(repo, &fakeTransactionCounter{})

	if err := svc.Delete(context.Background(), pkg.GenerateULIDObject(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.deleted != 1 {
		t.Fatalf("exclusão não chegou ao repositório")
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID, userID string) (*category.Category, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newService(repo, &fakeTransactionCounter{})

	err := svc.Delete(context.Background(), pkg.GenerateULIDObject(), "u1")
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "CATEGORY_NOT_FOUND" {
		t.Fatalf("expected CATEGORY_NOT_FOUND, got %v", err)
	}
}

func TestUpdateCategoryAppliesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	id := pkg.GenerateULIDObject()
	repo := &fakeRepository{
		getByIDFn: func(ctx context.Context, categoryID ulid.ULID, userID string) (*category.Category, error) {
			return &category.Category{Id: id, UserId: userID, Name: "Mercado", Type: category.Expense, Color: "#ff0000", Icon: "cart"}, nil
		},
	}
	svc := newService(repo, &fakeTransactionCounter{})

	color := "#00ff00"
	updated, err := svc.Update(context.Background(), id, "u1", &category.UpdateRequest{Color: &color})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Color != "#00ff00" {
		t.Fatalf("cor não foi atualizada: %+v", updated)
	}
	if updated.Name != "Mercado" || updated.Type != category.Expense || updated.Icon != "cart" {
		t.Fatalf("campos não informados deveriam ser preservados: %+v", updated)
	}
}

func TestCategoryWriteInvalidatesReports(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := cache.NewMemoryStore()
	c := cache.New(store, time.Minute)
	svc := category.NewService(&fakeRepository{}, &fakeTransactionCounter{}, c)

	categoriesKey := cache.Key("categories", map[string]interface{}{"userId": "u1"})
	reportsKey := cache.Key("reports", map[string]interface{}{"userId": "u1"})
	budgetsKey := cache.Key("budgets", map[string]interface{}{"userId": "u1"})
	c.SetJSON(ctx, categoriesKey, 1)
	c.SetJSON(ctx, reportsKey, 2)
	c.SetJSON(ctx, budgetsKey, 3)

	if err := svc.Create(ctx, &category.Category{UserId: "u1", Name: "Mercado", Type: category.Expense}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out int
	if c.GetJSON(ctx, categoriesKey, &out) {
		t.Fatalf("cache de categorias deveria ter sido invalidado")
	}
	if c.GetJSON(ctx, reportsKey, &out) {
		t.Fatalf("cache de relatórios deveria ter sido invalidado")
	}
	if !c.GetJSON(ctx, budgetsKey, &out) {
		t.Fatalf("cache de orçamentos não deveria ter sido invalidado")
	}
}

func TestGetAllCachesList(t *testing.T) {
	t.Parallel()

	fetches := 0
	repo := &fakeRepository{
		getAllFn: func(ctx context.Context, userID string, filters *category.Filters, pagination *pkg.PaginationParams) ([]*category.Category, int64, error) {
			fetches++
			return []*category.Category{{UserId: userID, Name: "Mercado", Type: category.Expense}}, 1, nil
		},
	}
	svc := newService(repo, &fakeTransactionCounter{})

	ctx := context.Background()
	if _, _, err := svc.GetAll(ctx, "u1", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, total, err := svc.GetAll(ctx, "u1", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetches != 1 {
		t.Fatalf("segunda listagem deveria vir do cache, fetches = %d", fetches)
	}
	if total != 1 || len(items) != 1 || items[0].Name != "Mercado" {
		t.Fatalf("resultado inesperado do cache: %v (total %d)", items, total)
	}
}
