package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skillconnect/server/internal/logger"
	apperr "github.com/skillconnect/server/internal/pkg/errors"
	"github.com/skillconnect/server/internal/repos"
	"github.com/skillconnect/server/internal/requestdata"
	"github.com/skillconnect/server/internal/types"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user *types.User) (*types.User, error)
	LoginUser(ctx context.Context, email, password string) (string, string, error)
	LogoutUser(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:            db,
		log:           baseLog.With("service", "AuthService"),
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) (*types.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Username = strings.TrimSpace(user.Username)

	if user.Email == "" {
		return nil, apperr.Invalid("email", "required")
	}
	if user.Username == "" {
		return nil, apperr.Invalid("username", "required")
	}
	if len(user.Password) < 8 {
		return nil, apperr.Invalid("password", "must be at least 8 characters")
	}

	var created *types.User
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		emailTaken, err := as.userRepo.EmailExists(ctx, tx, user.Email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if emailTaken {
			return apperr.Invalid("email", "already registered")
		}
		usernameTaken, err := as.userRepo.UsernameExists(ctx, tx, user.Username)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if usernameTaken {
			return apperr.Invalid("username", "already taken")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hash)
		user.ID = uuid.New()

		created, err = as.userRepo.Create(ctx, tx, user)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	as.log.Info("User registered", "user_id", created.ID)
	return created, nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := as.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return "", "", fmt.Errorf("load user by email: %w", err)
	}
	if user == nil {
		return "", "", apperr.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", apperr.ErrUnauthorized
	}

	var accessToken, refreshToken string
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := as.userTokenRepo.DeleteExpired(ctx, tx, time.Now()); err != nil {
			as.log.Warn("Failed to prune expired tokens", "error", err)
		}

		accessToken, err = as.generateAccessToken(user)
		if err != nil {
			return fmt.Errorf("generate access token: %w", err)
		}
		refreshToken = uuid.New().String()

		_, err = as.userTokenRepo.Create(ctx, tx, &types.UserToken{
			ID:           uuid.New(),
			UserID:       user.ID,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    time.Now().Add(as.refreshTTL),
		})
		if err != nil {
			return fmt.Errorf("create user token: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	as.log.Info("User logged in", "user_id", user.ID)
	return accessToken, refreshToken, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return apperr.ErrUnauthorized
	}
	if err := as.userTokenRepo.DeleteByUserID(ctx, nil, rd.UserID); err != nil {
		return fmt.Errorf("delete user tokens: %w", err)
	}
	as.log.Info("User logged out", "user_id", rd.UserID)
	return nil
}

// SetContextFromToken verifies the access token and attaches the caller's
// identity to the context for downstream handlers.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return ctx, apperr.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, apperr.ErrUnauthorized
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ctx, apperr.ErrUnauthorized
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return ctx, apperr.ErrUnauthorized
	}

	return requestdata.WithRequestData(ctx, &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      userID,
	}), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(as.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}
