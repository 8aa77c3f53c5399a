package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/oddbill/billing-api/internal/application/service"
	"github.com/oddbill/billing-api/internal/presentation/http/dto/response"
)

// AuthHandler handles the login endpoint
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token
type LoginResponse struct {
	Token string `json:"token"`
}

// Login verifies the operator password and issues a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Password is required")
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", LoginResponse{Token: token})
}
