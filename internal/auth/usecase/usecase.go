package usecase

import (
	authdomain "ferrylog-backend/internal/auth/domain"
	authdto "ferrylog-backend/internal/auth/dto"
)

// AuthUsecase is the login collaborator: credential check plus token
// issue/validate for the HTTP layer.
type AuthUsecase interface {
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	ValidateToken(tokenString string) (*authdomain.User, error)
}
