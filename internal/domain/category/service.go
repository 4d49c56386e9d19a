package category

import (
	"context"
	"errors"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/cache"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/shared"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

const cachePrefix = "categories"

type Service struct {
	Repository   Repository
	Transactions TransactionCounter
	Cache        *cache.Cache
}

func NewService(repo Repository, transactions TransactionCounter, c *cache.Cache) *Service {
	return &Service{
		Repository:   repo,
		Transactions: transactions,
		Cache:        c,
	}
}

type cachedList struct {
	Items []*Category `json:"items"`
	Total int64       `json:"total"`
}

func (s *Service) Create(ctx context.Context, category *Category) error {
	category.Name = shared.NormalizeName(category.Name)
	if category.Name == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}
	if !category.Type.IsValid() {
		return appErrors.NewValidationError("type", "deve ser INCOME ou EXPENSE")
	}

	category.Id = pkg.GenerateULIDObject()
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()

	if err := s.Repository.Create(ctx, category); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *Service) Update(ctx context.Context, categoryID ulid.ULID, userID string, req *UpdateRequest) (*Category, error) {
	existing, err := s.Repository.GetByID(ctx, categoryID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if req.Name != nil {
		name := shared.NormalizeName(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "é obrigatório")
		}
		existing.Name = name
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, appErrors.NewValidationError("type", "deve ser INCOME ou EXPENSE")
		}
		existing.Type = *req.Type
	}
	if req.Color != nil {
		existing.Color = *req.Color
	}
	if req.Icon != nil {
		existing.Icon = *req.Icon
	}
	existing.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, existing); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	s.invalidate(ctx)
	return existing, nil
}

// Delete recusa a exclusão de categorias que ainda possuem transações
// associadas.
func (s *Service) Delete(ctx context.Context, categoryID ulid.ULID, userID string) error {
	if _, err := s.Repository.GetByID(ctx, categoryID, userID); errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.ErrCategoryNotFound
	} else if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	count, err := s.Transactions.CountByCategory(ctx, categoryID, userID)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if count > 0 {
		return appErrors.NewBusinessRuleError("Não é possível excluir uma categoria que possui transações associadas")
	}

	if err := s.Repository.Delete(ctx, categoryID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *Service) GetByID(ctx context.Context, categoryID ulid.ULID, userID string) (*Category, error) {
	key := cache.Key(cachePrefix, map[string]interface{}{
		"op":     "getById",
		"id":     categoryID.String(),
		"userId": userID,
	})

	var cached Category
	if s.Cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	category, err := s.Repository.GetByID(ctx, categoryID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	s.Cache.SetJSON(ctx, key, category)
	return category, nil
}

func (s *Service) GetAll(ctx context.Context, userID string, filters *Filters, pagination *pkg.PaginationParams) ([]*Category, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	keyFilters := map[string]interface{}{
		"op":      "list",
		"userId":  userID,
		"page":    pagination.Page,
		"perPage": pagination.PerPage,
	}
	if filters != nil && filters.Type != nil {
		keyFilters["type"] = string(*filters.Type)
	}
	key := cache.Key(cachePrefix, keyFilters)

	var cached cachedList
	if s.Cache.GetJSON(ctx, key, &cached) {
		return cached.Items, cached.Total, nil
	}

	categories, total, err := s.Repository.GetAll(ctx, userID, filters, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	s.Cache.SetJSON(ctx, key, cachedList{Items: categories, Total: total})
	return categories, total, nil
}

// EnsureExists valida que a categoria pertence ao usuário. Usado pelos
// domínios que referenciam categorias sem importar este pacote inteiro.
func (s *Service) EnsureExists(ctx context.Context, categoryID ulid.ULID, userID string) error {
	_, err := s.Repository.GetByID(ctx, categoryID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.ErrCategoryNotFound
	}
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	s.Cache.Invalidate(ctx, cachePrefix, "reports")
}
