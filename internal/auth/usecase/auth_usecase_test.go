package usecase

import (
	"context"
	"testing"
	"time"

	authdomain "ferrylog-backend/internal/auth/domain"
	authdto "ferrylog-backend/internal/auth/dto"
	"ferrylog-backend/internal/auth/repository"
	"ferrylog-backend/internal/store"
	"ferrylog-backend/pkg/config"
)

func newTestAuthUsecase(t *testing.T) AuthUsecase {
	t.Helper()
	st := store.New(store.NewMemoryGateway())
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	hash, err := repository.HashPassword("1234")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	users := []authdomain.User{
		{ID: "u1", Name: "홍길동", Role: authdomain.RoleAdmin, Password: hash},
	}
	if err := st.ReplaceUsers(context.Background(), users); err != nil {
		t.Fatalf("ReplaceUsers() error = %v", err)
	}

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
	return NewAuthUsecase(repository.NewUserRepository(st), cfg)
}

func TestLogin(t *testing.T) {
	uc := newTestAuthUsecase(t)

	resp, err := uc.Login(&authdto.LoginRequest{UserID: "u1", Password: "1234"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("Login() returned empty tokens")
	}
	if resp.User == nil || resp.User.ID != "u1" {
		t.Errorf("Login() user = %+v, want u1", resp.User)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc := newTestAuthUsecase(t)

	tests := []struct {
		name string
		req  authdto.LoginRequest
	}{
		{"wrong password", authdto.LoginRequest{UserID: "u1", Password: "wrong"}},
		{"unknown user", authdto.LoginRequest{UserID: "ghost", Password: "1234"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Login(&tt.req); err == nil {
				t.Error("Login() error = nil, want rejection")
			}
		})
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	uc := newTestAuthUsecase(t)

	resp, err := uc.Login(&authdto.LoginRequest{UserID: "u1", Password: "1234"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	user, err := uc.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if user.ID != "u1" || user.Role != authdomain.RoleAdmin {
		t.Errorf("ValidateToken() user = %+v, want u1/admin", user)
	}
}

func TestValidateTokenRejectsRefreshToken(t *testing.T) {
	uc := newTestAuthUsecase(t)

	resp, err := uc.Login(&authdto.LoginRequest{UserID: "u1", Password: "1234"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if _, err := uc.ValidateToken(resp.RefreshToken); err == nil {
		t.Error("ValidateToken() accepted a refresh token")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	uc := newTestAuthUsecase(t)
	if _, err := uc.ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken() accepted malformed input")
	}
}

func TestRefreshToken(t *testing.T) {
	uc := newTestAuthUsecase(t)

	resp, err := uc.Login(&authdto.LoginRequest{UserID: "u1", Password: "1234"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	refreshed, err := uc.RefreshToken(resp.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("RefreshToken() returned empty access token")
	}
	if _, err := uc.ValidateToken(refreshed.AccessToken); err != nil {
		t.Errorf("refreshed access token invalid: %v", err)
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	uc := newTestAuthUsecase(t)

	resp, err := uc.Login(&authdto.LoginRequest{UserID: "u1", Password: "1234"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if _, err := uc.RefreshToken(resp.AccessToken); err == nil {
		t.Error("RefreshToken() accepted an access token")
	}
}
