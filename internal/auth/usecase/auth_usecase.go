package usecase

import (
	"errors"
	"time"

	authdomain "ferrylog-backend/internal/auth/domain"
	authdto "ferrylog-backend/internal/auth/dto"
	"ferrylog-backend/internal/auth/repository"
	"ferrylog-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user := u.userRepo.FindByID(req.UserID)
	if user == nil {
		return nil, errors.New("invalid user id or password")
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, errors.New("invalid user id or password")
	}

	return u.generateTokens(user)
}

func (u *authUsecase) RefreshToken(refreshToken string) (*authdto.TokenResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if tokenType, _ := claims["token_type"].(string); tokenType != "refresh" {
		return nil, errors.New("not a refresh token")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	user := u.userRepo.FindByID(userID)
	if user == nil {
		return nil, errors.New("user no longer exists")
	}

	return u.generateTokens(user)
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if tokenType, _ := claims["token_type"].(string); tokenType != "access" {
		return nil, errors.New("not an access token")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	user := u.userRepo.FindByID(userID)
	if user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (u *authUsecase) generateTokens(user *authdomain.User) (*authdto.TokenResponse, error) {
	now := time.Now()

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    user.ID,
		"role":       string(user.Role),
		"token_type": "access",
		"exp":        now.Add(u.config.JWTAccessExpiry).Unix(),
		"iat":        now.Unix(),
	})
	accessString, err := accessToken.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return nil, err
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    user.ID,
		"token_type": "refresh",
		"exp":        now.Add(u.config.JWTRefreshExpiry).Unix(),
		"iat":        now.Unix(),
	})
	refreshString, err := refreshToken.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return nil, err
	}

	// The password hash is masked by the json:"-" tag; the response carries
	// the user so the client can route by role after login.
	return &authdto.TokenResponse{
		AccessToken:  accessString,
		RefreshToken: refreshString,
		User:         user,
	}, nil
}
