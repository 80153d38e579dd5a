package dto

// StatusUpdateRequest moves an order to a new status.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,orderstatus"`
}

// OrderResponse is a frozen order record as served to clients.
type OrderResponse struct {
	ID             string `json:"id"`
	ViewerID       string `json:"viewer_id"`
	ViewerEmail    string `json:"viewer_email"`
	ViewerName     string `json:"viewer_name"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Gender         string `json:"gender"`
	Phone          string `json:"phone"`
	TelegramHandle string `json:"telegram"`
	DesignType     string `json:"design_type"`
	Game           string `json:"game"`
	Message        string `json:"message,omitempty"`
	TotalPrice     int64  `json:"total_price"`
	PromoCode      string `json:"promo_code,omitempty"`
	Status         string `json:"status"`
	CreatedAt      int64  `json:"created_at"`
}
