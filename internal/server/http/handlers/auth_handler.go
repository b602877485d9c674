package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	"github.com/dakarmarket/backend/internal/server/http/dto"
	"github.com/dakarmarket/backend/internal/server/http/middleware"
)

// AuthHandler processes registration, login and profile endpoints.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	profile, token, err := h.facade.Register(c.Request.Context(), req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, Profile: toProfileResponse(profile)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	profile, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, Profile: toProfileResponse(profile)})
}

// Me handles GET /api/profile.
func (h *AuthHandler) Me(c *gin.Context) {
	profile := CurrentProfile(c)
	if profile == nil {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Update handles PATCH /api/profile.
func (h *AuthHandler) Update(c *gin.Context) {
	profile := CurrentProfile(c)
	if profile == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.facade.UpdateProfile(c.Request.Context(), profile.ID, model.ProfileUpdate{
		DisplayName:    req.DisplayName,
		AvatarURL:      req.AvatarURL,
		Phone:          req.Phone,
		WhatsAppNumber: req.WhatsAppNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(updated))
}
