package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/server/http/dto"
)

// FavoriteHandler manages saved-product endpoints.
type FavoriteHandler struct {
	facade FavoriteFacade
}

// NewFavoriteHandler constructs FavoriteHandler.
func NewFavoriteHandler(facade FavoriteFacade) *FavoriteHandler {
	return &FavoriteHandler{facade: facade}
}

// List handles GET /api/favorites.
func (h *FavoriteHandler) List(c *gin.Context) {
	lines, err := h.facade.Favorites(c.Request.Context(), CurrentProfile(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	resp := make([]dto.FavoriteResponse, 0, len(lines))
	for _, line := range lines {
		resp = append(resp, dto.FavoriteResponse{
			ID:      line.Favorite.ID,
			Product: toProductResponse(line.Product),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Add handles POST /api/favorites/:productID.
func (h *FavoriteHandler) Add(c *gin.Context) {
	_, err := h.facade.AddFavorite(c.Request.Context(), CurrentProfile(c), c.Param("productID"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusCreated)
}

// Remove handles DELETE /api/favorites/:productID.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	err := h.facade.RemoveFavorite(c.Request.Context(), CurrentProfile(c), c.Param("productID"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
