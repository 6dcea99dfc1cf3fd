package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	apperr "github.com/skillconnect/server/internal/pkg/errors"
	"github.com/skillconnect/server/internal/repos"
	"github.com/skillconnect/server/internal/repos/testutil"
	"github.com/skillconnect/server/internal/requestdata"
	"github.com/skillconnect/server/internal/types"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	userRepo := repos.NewUserRepo(db, log)
	tokenRepo := repos.NewUserTokenRepo(db, log)
	return NewAuthService(db, log, userRepo, tokenRepo, "test-secret", 15*time.Minute, 24*time.Hour)
}

func registerUser(t *testing.T, svc AuthService, email string) *types.User {
	t.Helper()
	u, err := svc.RegisterUser(context.Background(), &types.User{
		Username: "u-" + uuid.New().String()[:8],
		Email:    email,
		Password: "s3cret-password",
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	return u
}

func TestRegisterLoginRoundtrip(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	u := registerUser(t, svc, "roundtrip@example.com")

	access, refresh, err := svc.LoginUser(ctx, "ROUNDTRIP@example.com", "s3cret-password")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("LoginUser: expected token pair")
	}

	authed, err := svc.SetContextFromToken(ctx, access)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := requestdata.GetRequestData(authed)
	if rd == nil || rd.UserID != u.ID {
		t.Fatalf("SetContextFromToken: expected user %s in context, got %+v", u.ID, rd)
	}

	if err := svc.LogoutUser(authed); err != nil {
		t.Fatalf("LogoutUser: %v", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	u := registerUser(t, svc, "dup@example.com")

	_, err := svc.RegisterUser(ctx, &types.User{
		Username: "another",
		Email:    "dup@example.com",
		Password: "s3cret-password",
	})
	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("RegisterUser: expected duplicate email rejection, got %v", err)
	}

	_, err = svc.RegisterUser(ctx, &types.User{
		Username: u.Username,
		Email:    "other@example.com",
		Password: "s3cret-password",
	})
	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("RegisterUser: expected duplicate username rejection, got %v", err)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newAuthService(t)
	u := registerUser(t, svc, "hash@example.com")
	if u.Password == "s3cret-password" {
		t.Fatal("RegisterUser: password stored in plain text")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	registerUser(t, svc, "badcreds@example.com")

	if _, _, err := svc.LoginUser(ctx, "badcreds@example.com", "wrong-password"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("LoginUser: expected unauthorized for wrong password, got %v", err)
	}
	if _, _, err := svc.LoginUser(ctx, "nobody@example.com", "s3cret-password"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("LoginUser: expected unauthorized for unknown email, got %v", err)
	}
}

func TestSetContextFromTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(t)
	if _, err := svc.SetContextFromToken(context.Background(), "not-a-jwt"); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("SetContextFromToken: expected unauthorized, got %v", err)
	}
}
