package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartgoals/internal/cache"
	"smartgoals/internal/errors"
	"smartgoals/internal/model"
	"smartgoals/internal/repository"
)

const (
	goalCacheTTL     = 5 * time.Minute
	goalListCacheKey = "goals:all"
)

// GoalUpdate carries the mutable goal fields. Nil pointers leave the stored
// value untouched.
type GoalUpdate struct {
	Title       *string
	Description *string
	Smart       *model.Smart
	Status      *model.GoalStatus
	Tags        *[]string
	IsPublic    *bool
}

// GoalService handles SMART goal operations.
type GoalService interface {
	CreateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error)
	GetGoal(ctx context.Context, id uuid.UUID) (*model.Goal, error)
	ListGoals(ctx context.Context) ([]model.Goal, error)
	UpdateGoal(ctx context.Context, id uuid.UUID, update GoalUpdate) (*model.Goal, error)
	DeleteGoal(ctx context.Context, id uuid.UUID) error
}

type goalService struct {
	repo  repository.GoalRepository
	cache *cache.Client
}

// NewGoalService builds a GoalService with repository and cache.
func NewGoalService(repo repository.GoalRepository, cache *cache.Client) GoalService {
	return &goalService{repo: repo, cache: cache}
}

func (s *goalService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("goal:%s", id)
}

func (s *goalService) invalidate(ctx context.Context, id uuid.UUID) {
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, goalListCacheKey)
}

func (s *goalService) CreateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	s.invalidate(ctx, goal.ID)
	return goal, nil
}

// GetGoal retrieves a goal by ID with caching.
func (s *goalService) GetGoal(ctx context.Context, id uuid.UUID) (*model.Goal, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Goal
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	goal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrGoalNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(goal); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, goalCacheTTL)
	}
	return goal, nil
}

// ListGoals returns all goals, serving from cache when possible. An empty
// result is a valid empty list, not an error.
func (s *goalService) ListGoals(ctx context.Context) ([]model.Goal, error) {
	if data, _ := s.cache.Get(ctx, goalListCacheKey); data != nil {
		var cached []model.Goal
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	goals, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(goals); err == nil {
		_ = s.cache.Set(ctx, goalListCacheKey, payload, goalCacheTTL)
	}
	return goals, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, id uuid.UUID, update GoalUpdate) (*model.Goal, error) {
	goal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrGoalNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		goal.Title = *update.Title
	}
	if update.Description != nil {
		goal.Description = *update.Description
	}
	if update.Smart != nil {
		goal.Smart = *update.Smart
	}
	if update.Status != nil {
		goal.Status = *update.Status
	}
	if update.Tags != nil {
		goal.Tags = *update.Tags
	}
	if update.IsPublic != nil {
		goal.IsPublic = *update.IsPublic
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}

	s.invalidate(ctx, id)
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if !deleted {
		return errors.ErrGoalNotFound
	}
	s.invalidate(ctx, id)
	return nil
}
