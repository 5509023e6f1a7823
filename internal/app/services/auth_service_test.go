package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gris34/psis-inscripciones-backend/internal/app/models"
	"github.com/gris34/psis-inscripciones-backend/internal/app/models/dto"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/apperrors"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/auth"
)

type fakeTokenRepo struct {
	created []string
	revoked []string
}

func (r *fakeTokenRepo) CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	r.created = append(r.created, token)
	return nil
}

func (r *fakeTokenRepo) GetTokenByValue(ctx context.Context, token string) (int64, time.Time, bool, error) {
	return 0, time.Time{}, false, apperrors.ErrTokenNotFound
}

func (r *fakeTokenRepo) RevokeToken(ctx context.Context, token string) error {
	r.revoked = append(r.revoked, token)
	return nil
}

func (r *fakeTokenRepo) RevokeAllUserTokens(ctx context.Context, userID int64) error { return nil }

func (r *fakeTokenRepo) CleanupExpiredTokens(ctx context.Context) (int64, error) { return 0, nil }

func newAuthFixture(t *testing.T, password string) (*AuthService, *fakeTokenRepo) {
	t.Helper()

	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	userRepo := &fakeUserRepo{
		users: map[int64]*models.User{
			7: {ID: 7, Username: "ana.gomez", Email: "ana.gomez@mail.com", Password: hashed, IsActive: true},
		},
		takenUsernames: map[string]bool{},
	}
	tokenRepo := &fakeTokenRepo{}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})

	return NewAuthService(userRepo, tokenRepo, jwtService), tokenRepo
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	service, tokenRepo := newAuthFixture(t, "Secret123!")

	_, err := service.Login(context.Background(), &dto.LoginRequest{Username: "ana.gomez", Password: "wrong"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}
	if len(tokenRepo.created) != 0 {
		t.Errorf("tokens created = %d, want 0", len(tokenRepo.created))
	}
}

func TestLoginIssuesTokensForCorrectPassword(t *testing.T) {
	service, tokenRepo := newAuthFixture(t, "Secret123!")

	resp, err := service.Login(context.Background(), &dto.LoginRequest{Username: "ana.gomez", Password: "Secret123!"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token.AccessToken == "" || resp.Token.RefreshToken == "" {
		t.Error("expected both access and refresh tokens to be issued")
	}
	if len(tokenRepo.created) != 1 {
		t.Errorf("stored refresh tokens = %d, want 1", len(tokenRepo.created))
	}
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	service, _ := newAuthFixture(t, "Secret123!")

	_, err := service.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "Secret123!"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}
