package infrastructure

import (
	"context"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/domain/category"
	"github.com/rodrigordgfs/CashWise-API/internal/domain/report"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

type categoryDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	UserId    string    `gorm:"type:varchar(64);index:idx_categories_user;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Type      string    `gorm:"type:varchar(10);not null"`
	Color     string    `gorm:"type:varchar(7)"`
	Icon      string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (categoryDB) TableName() string {
	return "categories"
}

func toDomainCategory(cdb *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.NewDataIntegrityError(err)
	}

	return &category.Category{
		Id:        id,
		UserId:    cdb.UserId,
		Name:      cdb.Name,
		Type:      category.Types(cdb.Type),
		Color:     cdb.Color,
		Icon:      cdb.Icon,
		CreatedAt: cdb.CreatedAt,
		UpdatedAt: cdb.UpdatedAt,
	}, nil
}

func toDBCategory(c *category.Category) *categoryDB {
	return &categoryDB{
		Id:        c.Id.String(),
		UserId:    c.UserId,
		Name:      c.Name,
		Type:      string(c.Type),
		Color:     c.Color,
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	return r.DB.WithContext(ctx).Create(toDBCategory(c)).Error
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	cdb := toDBCategory(c)
	return r.DB.WithContext(ctx).Model(&categoryDB{}).
		Where("id = ? AND user_id = ?", cdb.Id, cdb.UserId).
		Updates(cdb).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID ulid.ULID, userID string) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", categoryID.String(), userID).
		Delete(&categoryDB{}).Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID ulid.ULID, userID string) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", categoryID.String(), userID).
		First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) GetAll(ctx context.Context, userID string, filters *category.Filters, pagination *pkg.PaginationParams) ([]*category.Category, int64, error) {
	query := r.DB.WithContext(ctx).Model(&categoryDB{}).Where("user_id = ?", userID)
	if filters != nil && filters.Type != nil {
		query = query.Where("type = ?", string(*filters.Type))
	}

	return pkg.Paginate(query, pagination, "name ASC", toDomainCategory)
}

// ListWithTransactions retorna cada categoria do usuário com as transações
// dela dentro do intervalo [from, to]. Categorias sem transações no
// intervalo saem com a lista vazia.
func (r *CategoryRepository) ListWithTransactions(ctx context.Context, userID string, from, to time.Time) ([]*report.CategoryTransactions, error) {
	var categoryRows []categoryDB
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categoryRows).Error
	if err != nil {
		return nil, err
	}

	var transactionRows []transactionDB
	err = r.DB.WithContext(ctx).
		Where("user_id = ? AND category_id IS NOT NULL AND date >= ? AND date <= ?", userID, from, to).
		Find(&transactionRows).Error
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]*transactionDB, len(categoryRows))
	for i := range transactionRows {
		row := &transactionRows[i]
		if row.CategoryId == nil {
			continue
		}
		byCategory[*row.CategoryId] = append(byCategory[*row.CategoryId], row)
	}

	groups := make([]*report.CategoryTransactions, 0, len(categoryRows))
	for i := range categoryRows {
		cdb := &categoryRows[i]
		id, err := pkg.ParseULID(cdb.Id)
		if err != nil {
			return nil, appErrors.NewDataIntegrityError(err)
		}

		group := &report.CategoryTransactions{
			CategoryId: id,
			Name:       cdb.Name,
			Color:      cdb.Color,
		}
		for _, row := range byCategory[cdb.Id] {
			t, err := toDomainTransaction(row)
			if err != nil {
				return nil, err
			}
			group.Transactions = append(group.Transactions, t)
		}
		groups = append(groups, group)
	}

	return groups, nil
}
