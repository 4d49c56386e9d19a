package infrastructure

import (
	"context"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/domain/goal"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

var _ goal.Repository = (*GoalRepository)(nil)

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

type goalDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey"`
	UserId        string    `gorm:"type:varchar(64);index:idx_goals_user;not null"`
	CategoryId    string    `gorm:"type:varchar(26);index"`
	Title         string    `gorm:"type:varchar(100);not null"`
	Description   string    `gorm:"type:varchar(255)"`
	TargetAmount  float64   `gorm:"not null"`
	CurrentAmount float64   `gorm:"not null;default:0"`
	Deadline      time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (goalDB) TableName() string {
	return "goals"
}

func toDomainGoal(gdb *goalDB) (*goal.Goal, error) {
	id, err := pkg.ParseULID(gdb.Id)
	if err != nil {
		return nil, appErrors.NewDataIntegrityError(err)
	}

	var categoryID ulid.ULID
	if gdb.CategoryId != "" {
		categoryID, err = pkg.ParseULID(gdb.CategoryId)
		if err != nil {
			return nil, appErrors.NewDataIntegrityError(err)
		}
	}

	return &goal.Goal{
		Id:            id,
		UserId:        gdb.UserId,
		CategoryId:    categoryID,
		Title:         gdb.Title,
		Description:   gdb.Description,
		TargetAmount:  gdb.TargetAmount,
		CurrentAmount: gdb.CurrentAmount,
		Deadline:      gdb.Deadline,
		CreatedAt:     gdb.CreatedAt,
		UpdatedAt:     gdb.UpdatedAt,
	}, nil
}

func toDBGoal(g *goal.Goal) *goalDB {
	categoryID := ""
	if !pkg.IsEmptyULID(g.CategoryId) {
		categoryID = g.CategoryId.String()
	}

	return &goalDB{
		Id:            g.Id.String(),
		UserId:        g.UserId,
		CategoryId:    categoryID,
		Title:         g.Title,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	return r.DB.WithContext(ctx).Create(toDBGoal(g)).Error
}

func (r *GoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	gdb := toDBGoal(g)
	return r.DB.WithContext(ctx).Model(&goalDB{}).
		Where("id = ? AND user_id = ?", gdb.Id, gdb.UserId).
		Select("category_id", "title", "description", "target_amount", "current_amount", "deadline", "updated_at").
		Updates(gdb).Error
}

func (r *GoalRepository) Delete(ctx context.Context, goalID ulid.ULID, userID string) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID.String(), userID).
		Delete(&goalDB{}).Error
}

func (r *GoalRepository) GetByID(ctx context.Context, goalID ulid.ULID, userID string) (*goal.Goal, error) {
	var gdb goalDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID.String(), userID).
		First(&gdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainGoal(&gdb)
}

func (r *GoalRepository) GetAllByUser(ctx context.Context, userID string) ([]*goal.Goal, error) {
	var rows []goalDB
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("deadline ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	goals := make([]*goal.Goal, 0, len(rows))
	for i := range rows {
		g, err := toDomainGoal(&rows[i])
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}
