package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartgoals/internal/model"
)

// GoalRepository defines goal persistence operations.
type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Goal, error)
	Update(ctx context.Context, goal *model.Goal) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]model.Goal, error)
}

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository builds a GORM-backed repository.
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Goal, error) {
	var goal model.Goal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *model.Goal) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Goal{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *goalRepository) List(ctx context.Context) ([]model.Goal, error) {
	var goals []model.Goal
	if err := r.db.WithContext(ctx).Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}
