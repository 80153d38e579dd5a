package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/elbekdesign/storefront/internal/domain/model"
	"github.com/elbekdesign/storefront/internal/server/http/dto"
	"github.com/elbekdesign/storefront/internal/server/http/middleware"
)

// CurrentViewer extracts the authenticated viewer from the gin context.
func CurrentViewer(c *gin.Context) model.Viewer {
	val, ok := c.Get(middleware.ViewerContextKey)
	if !ok {
		return model.Viewer{}
	}
	viewer, _ := val.(model.Viewer)
	return viewer
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:             order.ID,
		ViewerID:       order.ViewerID,
		ViewerEmail:    order.ViewerEmail,
		ViewerName:     order.ViewerName,
		FirstName:      order.FirstName,
		LastName:       order.LastName,
		Gender:         string(order.Gender),
		Phone:          order.Phone,
		TelegramHandle: order.TelegramHandle,
		DesignType:     string(order.DesignType),
		Game:           order.Game,
		Message:        order.Message,
		TotalPrice:     order.TotalPrice,
		PromoCode:      order.PromoCode,
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt,
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}
