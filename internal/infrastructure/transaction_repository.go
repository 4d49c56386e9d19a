package infrastructure

import (
	"context"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/domain/transaction"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

type transactionDB struct {
	Id           string    `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId       string    `gorm:"type:varchar(64);index:idx_transactions_user_date,priority:1;not null;column:user_id"`
	Type         string    `gorm:"type:varchar(10);not null;column:type"`
	Description  string    `gorm:"size:255;not null;column:description"`
	CategoryId   *string   `gorm:"type:varchar(26);index;column:category_id"`
	CategoryName string    `gorm:"->;column:category_name"`
	Date         time.Time `gorm:"not null;index:idx_transactions_user_date,priority:2;column:date"`
	Account      string    `gorm:"size:100;column:account"`
	Amount       float64   `gorm:"not null;column:amount"`
	Paid         bool      `gorm:"not null;default:false;column:paid"`
	CreatedAt    time.Time `gorm:"not null;column:created_at"`
	UpdatedAt    time.Time `gorm:"not null;column:updated_at"`
}

func (transactionDB) TableName() string {
	return "transactions"
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, appErrors.NewDataIntegrityError(err)
	}

	var categoryID *ulid.ULID
	if tdb.CategoryId != nil && *tdb.CategoryId != "" {
		parsed, err := pkg.ParseULID(*tdb.CategoryId)
		if err != nil {
			return nil, appErrors.NewDataIntegrityError(err)
		}
		categoryID = &parsed
	}

	return &transaction.Transaction{
		Id:           id,
		UserId:       tdb.UserId,
		Type:         transaction.Types(tdb.Type),
		Description:  tdb.Description,
		CategoryId:   categoryID,
		CategoryName: tdb.CategoryName,
		Date:         tdb.Date,
		Account:      tdb.Account,
		Amount:       tdb.Amount,
		Paid:         tdb.Paid,
		CreatedAt:    tdb.CreatedAt,
		UpdatedAt:    tdb.UpdatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	var categoryID *string
	if t.CategoryId != nil {
		s := t.CategoryId.String()
		categoryID = &s
	}

	return &transactionDB{
		Id:          t.Id.String(),
		UserId:      t.UserId,
		Type:        string(t.Type),
		Description: t.Description,
		CategoryId:  categoryID,
		Date:        t.Date,
		Account:     t.Account,
		Amount:      t.Amount,
		Paid:        t.Paid,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	return r.DB.WithContext(ctx).Create(toDBTransaction(t)).Error
}

func (r *TransactionRepository) CreateBatch(ctx context.Context, transactions []*transaction.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	rows := make([]*transactionDB, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, toDBTransaction(t))
	}
	return r.DB.WithContext(ctx).CreateInBatches(rows, 100).Error
}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Model(&transactionDB{}).
		Where("id = ? AND user_id = ?", tdb.Id, tdb.UserId).
		Select("type", "description", "category_id", "date", "account", "amount", "paid", "updated_at").
		Updates(tdb).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID, userID string) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", transactionID.String(), userID).
		Delete(&transactionDB{}).Error
}

func (r *TransactionRepository) GetByID(ctx context.Context, transactionID ulid.ULID, userID string) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.withCategoryName(r.DB.WithContext(ctx)).
		Where("transactions.id = ? AND transactions.user_id = ?", transactionID.String(), userID).
		First(&tdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) GetAll(ctx context.Context, userID string, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	query := r.withCategoryName(r.DB.WithContext(ctx)).
		Where("transactions.user_id = ?", userID)

	orderBy := "transactions.date DESC"
	if filters != nil {
		if filters.SortAsc {
			orderBy = "transactions.date ASC"
		}
		if filters.Type != nil {
			query = query.Where("transactions.type = ?", string(*filters.Type))
		}
		if filters.Search != "" {
			pattern := "%" + filters.Search + "%"
			query = query.Where("transactions.description ILIKE ? OR transactions.account ILIKE ?", pattern, pattern)
		}
		if filters.Date != nil {
			query = query.Where("transactions.date >= ? AND transactions.date < ?", filters.Date, filters.Date.AddDate(0, 0, 1))
		}
		if filters.PeriodFrom != nil {
			query = query.Where("transactions.date >= ?", filters.PeriodFrom)
		}
		if filters.PeriodTo != nil {
			query = query.Where("transactions.date <= ?", filters.PeriodTo)
		}
		if filters.CategoryId != nil {
			query = query.Where("transactions.category_id = ?", filters.CategoryId.String())
		}
	}

	return pkg.Paginate(query, pagination, orderBy, toDomainTransaction)
}

func (r *TransactionRepository) ListByPeriod(ctx context.Context, userID string, from, to time.Time) ([]*transaction.Transaction, error) {
	var rows []transactionDB
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		t, err := toDomainTransaction(&rows[i])
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

func (r *TransactionRepository) CountByCategory(ctx context.Context, categoryID ulid.ULID, userID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&transactionDB{}).
		Where("category_id = ? AND user_id = ?", categoryID.String(), userID).
		Count(&count).Error
	return count, err
}

// SumByCategoryAndPeriod soma os valores da categoria no intervalo [from, to),
// filtrados por tipo. Usado para derivar o gasto de um orçamento.
func (r *TransactionRepository) SumByCategoryAndPeriod(ctx context.Context, categoryID ulid.ULID, userID string, transactionType transaction.Types, from, to time.Time) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Model(&transactionDB{}).
		Where("category_id = ? AND user_id = ? AND type = ? AND date >= ? AND date < ?",
			categoryID.String(), userID, string(transactionType), from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// withCategoryName junta o nome da categoria na leitura, sem persisti-lo.
func (r *TransactionRepository) withCategoryName(db *gorm.DB) *gorm.DB {
	return db.Model(&transactionDB{}).
		Select("transactions.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id")
}
