package infrastructure

import (
	"context"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/domain/budget"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type BudgetRepository struct {
	DB *gorm.DB
}

var _ budget.Repository = (*BudgetRepository)(nil)

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{DB: db}
}

type budgetDB struct {
	Id         string    `gorm:"type:varchar(26);primaryKey"`
	UserId     string    `gorm:"type:varchar(64);index:idx_budgets_user;not null"`
	CategoryId string    `gorm:"type:varchar(26);index;not null"`
	Limit      float64   `gorm:"column:limit_amount;not null"`
	Date       time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (budgetDB) TableName() string {
	return "budgets"
}

func toDomainBudget(bdb *budgetDB) (*budget.Budget, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, appErrors.NewDataIntegrityError(err)
	}

	categoryID, err := pkg.ParseULID(bdb.CategoryId)
	if err != nil {
		return nil, appErrors.NewDataIntegrityError(err)
	}

	return &budget.Budget{
		Id:         id,
		UserId:     bdb.UserId,
		CategoryId: categoryID,
		Limit:      bdb.Limit,
		Date:       bdb.Date,
		CreatedAt:  bdb.CreatedAt,
		UpdatedAt:  bdb.UpdatedAt,
	}, nil
}

func toDBBudget(b *budget.Budget) *budgetDB {
	return &budgetDB{
		Id:         b.Id.String(),
		UserId:     b.UserId,
		CategoryId: b.CategoryId.String(),
		Limit:      b.Limit,
		Date:       b.Date,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (r *BudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	return r.DB.WithContext(ctx).Create(toDBBudget(b)).Error
}

func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	bdb := toDBBudget(b)
	return r.DB.WithContext(ctx).Model(&budgetDB{}).
		Where("id = ? AND user_id = ?", bdb.Id, bdb.UserId).
		Updates(bdb).Error
}

func (r *BudgetRepository) Delete(ctx context.Context, budgetID ulid.ULID, userID string) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", budgetID.String(), userID).
		Delete(&budgetDB{}).Error
}

func (r *BudgetRepository) GetByID(ctx context.Context, budgetID ulid.ULID, userID string) (*budget.Budget, error) {
	var bdb budgetDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", budgetID.String(), userID).
		First(&bdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainBudget(&bdb)
}

func (r *BudgetRepository) GetAllByUser(ctx context.Context, userID string) ([]*budget.Budget, error) {
	var rows []budgetDB
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	budgets := make([]*budget.Budget, 0, len(rows))
	for i := range rows {
		b, err := toDomainBudget(&rows[i])
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}
