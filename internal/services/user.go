package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skillconnect/server/internal/logger"
	apperr "github.com/skillconnect/server/internal/pkg/errors"
	"github.com/skillconnect/server/internal/repos"
	"github.com/skillconnect/server/internal/types"
)

type UserService interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	List(ctx context.Context) ([]*types.User, error)
	Update(ctx context.Context, userID uuid.UUID, user *types.User) (*types.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{
		db:       db,
		log:      baseLog.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func (us *userService) GetByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	return us.userRepo.GetByID(ctx, nil, userID)
}

func (us *userService) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	return us.userRepo.GetByEmail(ctx, nil, email)
}

func (us *userService) List(ctx context.Context) ([]*types.User, error) {
	return us.userRepo.List(ctx, nil)
}

func (us *userService) Update(ctx context.Context, userID uuid.UUID, user *types.User) (*types.User, error) {
	user.ID = userID
	var updated *types.User
	err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := us.userRepo.GetByID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if existing == nil {
			return apperr.NotFound("user", userID.String())
		}
		updated, err = us.userRepo.Update(ctx, tx, user)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	us.log.Info("User updated", "user_id", userID)
	return updated, nil
}

func (us *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := us.userRepo.Delete(ctx, nil, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	us.log.Info("User deleted", "user_id", userID)
	return nil
}

func (us *userService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return us.userRepo.EmailExists(ctx, nil, email)
}

func (us *userService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return us.userRepo.UsernameExists(ctx, nil, username)
}

func (us *userService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return apperr.Invalid("new_password", "must be at least 8 characters")
	}
	return us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := us.userRepo.GetByID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if user == nil {
			return apperr.NotFound("user", userID.String())
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
			return apperr.ErrUnauthorized
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if err := tx.WithContext(ctx).
			Model(&types.User{}).
			Where("id = ?", userID).
			Update("password", string(hash)).Error; err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		us.log.Info("Password changed", "user_id", userID)
		return nil
	})
}
