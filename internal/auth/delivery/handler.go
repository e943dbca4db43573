package delivery

import (
	"net/http"

	authdomain "ferrylog-backend/internal/auth/domain"
	authdto "ferrylog-backend/internal/auth/dto"
	"ferrylog-backend/internal/auth/repository"
	"ferrylog-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and user management requests.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	userRepo    repository.UserRepository
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, userRepo repository.UserRepository) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		userRepo:    userRepo,
	}
}

// Login authenticates by user id + password.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RefreshToken exchanges a refresh token for a new token pair.
// POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.RefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers returns the full user collection.
// GET /api/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.userRepo.List())
}

// SaveUserRequest is the user management save payload. Password is optional
// on edit; when present it replaces the stored hash.
type SaveUserRequest struct {
	ID             string `json:"id"`
	Name           string `json:"name" binding:"required"`
	Role           string `json:"role" binding:"required"`
	Phone          string `json:"phone"`
	JoinDate       string `json:"joinDate"`
	TelegramChatID string `json:"telegramChatId"`
	Password       string `json:"password"`
}

// SaveUser upserts one user record.
// POST /api/users
func (h *AuthHandler) SaveUser(c *gin.Context) {
	var req SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := authdomain.Role(req.Role)
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	user := &authdomain.User{
		ID:             req.ID,
		Name:           req.Name,
		Role:           role,
		Phone:          req.Phone,
		JoinDate:       req.JoinDate,
		TelegramChatID: req.TelegramChatID,
	}
	if req.Password != "" {
		hash, err := repository.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		user.Password = hash
	}

	if err := h.userRepo.Save(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to persist users: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user by id. Historical logs keep their captured
// names; nothing cascades.
// DELETE /api/users/:id
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.userRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to persist users: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
