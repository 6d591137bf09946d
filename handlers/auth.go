package handlers

import (
	"errors"
	"net/http"

	"delivery-marketplace-api/middleware"
	"delivery-marketplace-api/models"
	"delivery-marketplace-api/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type SignUpRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required,oneof=vendor driver"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUp creates a new user account with onboarding still pending
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindError(err)})
		return
	}

	if _, err := h.store.GetUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.serverError(c, "Failed to create account", err)
		return
	}

	user, err := h.store.CreateUser(models.User{
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
	})
	if err != nil {
		h.serverError(c, "Failed to create account", err)
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		h.serverError(c, "Failed to create account", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// SignIn authenticates a user and returns the role profile alongside, so the
// client can route straight to the right dashboard.
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindError(err)})
		return
	}

	user, err := h.store.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		h.serverError(c, "Failed to sign in", err)
		return
	}

	// Bad credentials short-circuit before any profile lookup
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	var vendor *models.Vendor
	var driver *models.Driver
	switch user.Role {
	case models.RoleVendor:
		if v, err := h.store.GetVendorByUserID(user.ID); err == nil {
			vendor = &v
		}
	case models.RoleDriver:
		if d, err := h.store.GetDriverByUserID(user.ID); err == nil {
			driver = &d
		}
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		h.serverError(c, "Failed to sign in", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   user,
		"vendor": vendor,
		"driver": driver,
		"token":  token,
	})
}

// Me returns the authenticated user's record
func (h *Handler) Me(c *gin.Context) {
	user, err := h.store.GetUser(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
