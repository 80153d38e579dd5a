package dto

// DraftUpdateRequest is a partial draft update; absent fields stay untouched.
// Enum fields are validated at binding time, free text in the use case.
type DraftUpdateRequest struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Gender         *string `json:"gender,omitempty" binding:"omitempty,gender"`
	Phone          *string `json:"phone,omitempty"`
	TelegramHandle *string `json:"telegram,omitempty"`
	DesignType     *string `json:"design_type,omitempty" binding:"omitempty,designtype"`
	Game           *string `json:"game,omitempty" binding:"omitempty,ordergame"`
	Message        *string `json:"message,omitempty" binding:"omitempty,max=1000"`
	PromoCode      *string `json:"promo_code,omitempty"`
	Consent        *bool   `json:"consent,omitempty"`
}

// QuoteResponse is the computed price breakdown for a draft.
type QuoteResponse struct {
	BasePrice int64   `json:"base_price"`
	Discount  float64 `json:"discount"`
	Total     int64   `json:"total"`
	Promo     string  `json:"promo"`
}

// DraftResponse is the full wizard state returned after every draft call.
type DraftResponse struct {
	Step           int           `json:"step"`
	Phase          string        `json:"phase"`
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	Gender         string        `json:"gender"`
	Phone          string        `json:"phone"`
	TelegramHandle string        `json:"telegram"`
	DesignType     string        `json:"design_type"`
	Game           string        `json:"game"`
	Message        string        `json:"message"`
	PromoCode      string        `json:"promo_code"`
	Consent        bool          `json:"consent"`
	Quote          QuoteResponse `json:"quote"`
	PaymentCard    string        `json:"payment_card,omitempty"`
}
