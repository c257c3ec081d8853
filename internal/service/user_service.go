package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartgoals/internal/auth"
	"smartgoals/internal/cache"
	"smartgoals/internal/errors"
	"smartgoals/internal/model"
	"smartgoals/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserUpdate carries the mutable profile fields. Nil pointers leave the
// stored value untouched; the password is not mutable through this path.
type UserUpdate struct {
	Name     *string
	LastName *string
	Username *string
	Email    *string
}

// UserService handles account management and the authentication flows.
type UserService interface {
	Signup(ctx context.Context, user *model.User) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo       repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client) UserService {
	return &userService{repo: repo, jwtService: jwtService, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// Signup registers a new account and returns it with a fresh access token.
// The duplicate pre-check is an optimization; the unique index on email is
// the source of truth, so an insert-time violation maps to the same error.
func (s *userService) Signup(ctx context.Context, user *model.User) (*model.User, string, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return nil, "", errors.ErrEmailTaken
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", errors.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate access token: %w", err)
	}

	return user, token, nil
}

// Login authenticates by email and password and returns an access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate access token: %w", err)
	}

	return user, token, nil
}

// GetUser retrieves a user by ID with caching. The cached copy round-trips
// through JSON, which strips the password hash; read paths never need it.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, errors.ErrNoUsers
	}
	return users, nil
}

// UpdateUser applies only the provided fields and persists the record.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, update UserUpdate) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return errors.ErrUserNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
