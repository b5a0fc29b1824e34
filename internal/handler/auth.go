package handler

import (
	"errors"
	"net/http"

	"habitboard/internal/logger"
	"habitboard/internal/middleware"
	"habitboard/internal/model"
	"habitboard/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ auth *service.AuthService }

func NewAuthHandler(auth *service.AuthService) *AuthHandler { return &AuthHandler{auth: auth} }

// Signup registers a whitelisted email and logs the new user straight
// in by returning a token.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, service.ErrEmailNotAllowed) || errors.Is(err, service.ErrUsernameTaken) {
		logger.Warn("signup.rejected", "username", req.Username, "email", req.Email, "reason", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logger.Error("signup.failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		return
	}

	logger.Info("signup.ok", "uid", u.ID, "name", u.Username)
	token, _ := middleware.IssueToken(u)
	c.JSON(http.StatusOK, model.LoginResponse{
		Token: token,
		User:  model.UserInfo{ID: u.ID, Username: u.Username, Role: u.Role},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("login.failed", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	logger.Info("login.ok", "uid", u.ID, "name", u.Username)
	token, _ := middleware.IssueToken(u)
	c.JSON(http.StatusOK, model.LoginResponse{
		Token: token,
		User:  model.UserInfo{ID: u.ID, Username: u.Username, Role: u.Role},
	})
}

// Logout is a no-op server side; tokens are stateless and the client
// just discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	logger.Info("logout.ok", "uid", c.GetInt("user_id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
