package goal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rodrigordgfs/CashWise-API/internal/cache"
	appErrors "github.com/rodrigordgfs/CashWise-API/internal/errors"
	"github.com/rodrigordgfs/CashWise-API/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

const cachePrefix = "goals"

// CategoryChecker é implementado pelo serviço de categorias.
type CategoryChecker interface {
	EnsureExists(ctx context.Context, categoryID ulid.ULID, userID string) error
}

type Service struct {
	Repository Repository
	Categories CategoryChecker
	Cache      *cache.Cache
}

func NewService(repo Repository, categories CategoryChecker, c *cache.Cache) *Service {
	return &Service{
		Repository: repo,
		Categories: categories,
		Cache:      c,
	}
}

func (s *Service) CreateGoal(ctx context.Context, goal *Goal) error {
	if err := s.validate(ctx, goal); err != nil {
		return err
	}

	goal.Id = pkg.GenerateULIDObject()
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = time.Now()

	if err := s.Repository.Create(ctx, goal); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	s.Cache.Invalidate(ctx, cachePrefix)
	return nil
}

func (s *Service) UpdateGoal(ctx context.Context, goalID ulid.ULID, userID string, req *UpdateRequest) (*Goal, error) {
	existing, err := s.Repository.GetByID(ctx, goalID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrGoalNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if req.CategoryId != nil {
		existing.CategoryId = *req.CategoryId
	}
	if req.Title != nil {
		existing.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		existing.Description = strings.TrimSpace(*req.Description)
	}
	if req.TargetAmount != nil {
		existing.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		existing.CurrentAmount = *req.CurrentAmount
	}
	if req.Deadline != nil {
		existing.Deadline = *req.Deadline
	}

	if err := s.validate(ctx, existing); err != nil {
		return nil, err
	}

	existing.UpdatedAt = time.Now()
	if err := s.Repository.Update(ctx, existing); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	s.Cache.Invalidate(ctx, cachePrefix)
	return existing, nil
}

func (s *Service) DeleteGoal(ctx context.Context, goalID ulid.ULID, userID string) error {
	if _, err := s.Repository.GetByID(ctx, goalID, userID); errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.ErrGoalNotFound
	} else if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Repository.Delete(ctx, goalID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	s.Cache.Invalidate(ctx, cachePrefix)
	return nil
}

func (s *Service) GetGoalByID(ctx context.Context, goalID ulid.ULID, userID string) (*Goal, error) {
	key := cache.Key(cachePrefix, map[string]interface{}{
		"op":     "getById",
		"id":     goalID.String(),
		"userId": userID,
	})

	var cached Goal
	if s.Cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	goal, err := s.Repository.GetByID(ctx, goalID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrGoalNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	s.Cache.SetJSON(ctx, key, goal)
	return goal, nil
}

func (s *Service) ListGoals(ctx context.Context, userID string) ([]*Goal, error) {
	key := cache.Key(cachePrefix, map[string]interface{}{
		"op":     "list",
		"userId": userID,
	})

	var cached []*Goal
	if s.Cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	goals, err := s.Repository.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	s.Cache.SetJSON(ctx, key, goals)
	return goals, nil
}

// validate exige título, valor alvo positivo e prazo estritamente no futuro.
func (s *Service) validate(ctx context.Context, goal *Goal) error {
	goal.Title = strings.TrimSpace(goal.Title)
	if goal.Title == "" {
		return appErrors.NewValidationError("title", "é obrigatório")
	}
	if goal.TargetAmount <= 0 {
		return appErrors.NewValidationError("targetAmount", "deve ser maior que zero")
	}
	if goal.CurrentAmount < 0 {
		return appErrors.NewValidationError("currentAmount", "deve ser maior ou igual a zero")
	}
	if goal.Deadline.IsZero() || !goal.Deadline.After(time.Now()) {
		return appErrors.NewValidationError("deadline", "deve ser uma data futura")
	}

	if !pkg.IsEmptyULID(goal.CategoryId) {
		if err := s.Categories.EnsureExists(ctx, goal.CategoryId, goal.UserId); err != nil {
			return err
		}
	}

	return nil
}
