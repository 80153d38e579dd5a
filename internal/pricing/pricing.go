package pricing

import (
	"strings"

	"github.com/elbekdesign/storefront/internal/domain/model"
)

// PromoCode is the single recognized promo code. It is marketing content
// announced on the studio's channel, not a secret.
const PromoCode = "Artishok_uz"

// PromoDiscount is the fraction taken off the base price for a valid code.
const PromoDiscount = 0.25

// prices maps design category to its base price in so'm.
var prices = map[model.DesignType]int64{
	model.DesignTypePreview: 100000,
	model.DesignTypeBanner:  50000,
	model.DesignTypeAvatar:  25000,
}

// PriceFor returns the base price for a design category.
func PriceFor(t model.DesignType) int64 {
	return prices[t]
}

// PromoState classifies the promo code field of a draft.
type PromoState int

const (
	// PromoNone means no code was entered.
	PromoNone PromoState = iota
	// PromoValid means the recognized code was entered.
	PromoValid
	// PromoInvalid means a non-empty unrecognized code was entered.
	PromoInvalid
)

// String renders the state for logs and API payloads.
func (s PromoState) String() string {
	switch s {
	case PromoValid:
		return "valid"
	case PromoInvalid:
		return "invalid"
	default:
		return "none"
	}
}

// Quote is the computed price for a category/promo pair.
type Quote struct {
	BasePrice int64
	Discount  float64
	Total     int64
	Promo     PromoState
}

// ApplyPromo evaluates code against basePrice. The match is exact on the
// trimmed input; any other non-empty code is flagged invalid, which is
// distinct from no code at all.
func ApplyPromo(basePrice int64, code string) Quote {
	q := Quote{BasePrice: basePrice, Total: basePrice}

	trimmed := strings.TrimSpace(code)
	switch {
	case trimmed == "":
		q.Promo = PromoNone
	case trimmed == PromoCode:
		q.Promo = PromoValid
		q.Discount = PromoDiscount
		q.Total = basePrice - int64(float64(basePrice)*PromoDiscount)
	default:
		q.Promo = PromoInvalid
	}

	return q
}

// QuoteFor computes the quote straight from a category.
func QuoteFor(t model.DesignType, code string) Quote {
	return ApplyPromo(PriceFor(t), code)
}
