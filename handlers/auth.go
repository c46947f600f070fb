package handlers

import (
	"errors"
	"net/http"

	"meetly/services/organizer"
	"meetly/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes organizer registration and login.
type AuthHandler struct {
	Service organizer.OrganizerService
}

func NewAuthHandler(svc organizer.OrganizerService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterHandler creates the organizer account (initial deployment setup).
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "details": err.Error()})
		return
	}

	created, err := h.Service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, organizer.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Organizer created", "data": created})
}

// LoginHandler authenticates the organizer and returns a JWT.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "details": err.Error()})
		return
	}

	token, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, organizer.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
