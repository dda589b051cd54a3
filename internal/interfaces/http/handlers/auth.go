// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/gamevault-backend/internal/config"
	"github.com/your-org/gamevault-backend/internal/domain/account"
	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
	"github.com/your-org/gamevault-backend/internal/pkg/auth"
)

// AuthHandler handles signup, login, logout and the session record
type AuthHandler struct {
	accountService *account.Service
	jwtManager     *auth.JWTManager
	config         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store storage.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accountService: account.NewService(store),
		jwtManager:     auth.NewJWTManager(cfg),
		config:         cfg,
	}
}

// LoginRequest represents a login request. The identifier may be an email or
// a username.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req account.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	session, err := h.accountService.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingFields),
			errors.Is(err, account.ErrPasswordMismatch),
			errors.Is(err, account.ErrPasswordTooShort),
			errors.Is(err, account.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		}
		return
	}

	h.respondWithSession(c, http.StatusCreated, "Account created successfully", session)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	session, err := h.accountService.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	h.respondWithSession(c, http.StatusOK, "Logged in successfully", session)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.accountService.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetSession handles GET /auth/session
func (h *AuthHandler) GetSession(c *gin.Context) {
	session, err := h.accountService.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session retrieved successfully",
		"data":    session,
	})
}

func (h *AuthHandler) respondWithSession(c *gin.Context, status int, message string, session *account.Session) {
	token, err := h.jwtManager.GenerateToken(session.Username, session.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(status, gin.H{
		"message": message,
		"data": gin.H{
			"session": session,
			"token":   token,
		},
	})
}
