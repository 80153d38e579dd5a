package pricing

import (
	"testing"

	"github.com/elbekdesign/storefront/internal/domain/model"
)

func TestPriceFor(t *testing.T) {
	cases := []struct {
		dt    model.DesignType
		price int64
	}{
		{model.DesignTypePreview, 100000},
		{model.DesignTypeBanner, 50000},
		{model.DesignTypeAvatar, 25000},
	}

	for _, tc := range cases {
		t.Run(string(tc.dt), func(t *testing.T) {
			if got := PriceFor(tc.dt); got != tc.price {
				t.Fatalf("expected %d, got %d", tc.price, got)
			}
		})
	}
}

func TestApplyPromoValidCode(t *testing.T) {
	q := ApplyPromo(100000, "Artishok_uz")
	if q.Promo != PromoValid {
		t.Fatalf("expected valid promo, got %v", q.Promo)
	}
	if q.Discount != 0.25 {
		t.Fatalf("expected discount 0.25, got %v", q.Discount)
	}
	if q.Total != 75000 {
		t.Fatalf("expected total 75000, got %d", q.Total)
	}
}

func TestApplyPromoUnknownCode(t *testing.T) {
	q := ApplyPromo(100000, "anything-else")
	if q.Promo != PromoInvalid {
		t.Fatalf("expected invalid promo, got %v", q.Promo)
	}
	if q.Discount != 0 {
		t.Fatalf("expected zero discount, got %v", q.Discount)
	}
	if q.Total != 100000 {
		t.Fatalf("expected total 100000, got %d", q.Total)
	}
}

func TestApplyPromoEmptyCode(t *testing.T) {
	q := ApplyPromo(100000, "")
	if q.Promo != PromoNone {
		t.Fatalf("expected no promo, got %v", q.Promo)
	}
	if q.Total != 100000 {
		t.Fatalf("expected total 100000, got %d", q.Total)
	}
}

func TestApplyPromoCaseSensitive(t *testing.T) {
	q := ApplyPromo(100000, "artishok_uz")
	if q.Promo != PromoInvalid {
		t.Fatalf("expected case mismatch to be invalid, got %v", q.Promo)
	}
}

func TestApplyPromoTrimsSurroundingWhitespace(t *testing.T) {
	q := ApplyPromo(50000, "  Artishok_uz  ")
	if q.Promo != PromoValid {
		t.Fatalf("expected trimmed code to match, got %v", q.Promo)
	}
	if q.Total != 37500 {
		t.Fatalf("expected total 37500, got %d", q.Total)
	}
}

func TestQuoteFor(t *testing.T) {
	q := QuoteFor(model.DesignTypeBanner, "Artishok_uz")
	if q.BasePrice != 50000 || q.Total != 37500 {
		t.Fatalf("unexpected quote %+v", q)
	}
}
