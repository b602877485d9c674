package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dakarmarket/backend/internal/domain/model"
	"github.com/dakarmarket/backend/internal/server/http/dto"
	"github.com/dakarmarket/backend/internal/server/http/middleware"
)

// CurrentProfile extracts the authenticated profile from context.
func CurrentProfile(c *gin.Context) *model.Profile {
	val, ok := c.Get(middleware.ProfileContextKey)
	if !ok {
		return nil
	}
	profile, _ := val.(*model.Profile)
	return profile
}

func toProfileResponse(p *model.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:             p.ID,
		Email:          p.Email,
		DisplayName:    p.DisplayName,
		AvatarURL:      p.AvatarURL,
		Role:           string(p.Role),
		Phone:          p.Phone,
		WhatsAppNumber: p.WhatsAppNumber,
		CreatedAt:      p.CreatedAt,
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		MerchantID:  p.MerchantID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
	}
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:         o.ID,
		ClientID:   o.ClientID,
		ProductID:  o.ProductID,
		MerchantID: o.MerchantID,
		Quantity:   o.Quantity,
		Total:      o.Total,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func toMessageResponse(m model.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:        m.ID,
		FromUser:  m.FromUser,
		ToUser:    m.ToUser,
		Content:   m.Content,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}
