package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/elbekdesign/storefront/internal/domain/model"
)

var genderLabels = map[model.Gender]string{
	model.GenderMale:   "Erkak",
	model.GenderFemale: "Ayol",
}

// OrderNotification renders the human-readable new-order summary sent to the
// owner's chat.
func OrderNotification(order *model.Order) string {
	message := order.Message
	if message == "" {
		message = "Yo'q"
	}
	promo := order.PromoCode
	if promo == "" {
		promo = "Yo'q"
	}

	var b strings.Builder
	b.WriteString("🎨 YANGI BUYURTMA!\n\n")
	fmt.Fprintf(&b, "👤 Mijoz: %s %s\n", order.FirstName, order.LastName)
	fmt.Fprintf(&b, "🚻 Jinsi: %s\n", genderLabels[order.Gender])
	fmt.Fprintf(&b, "📧 Email: %s\n", order.ViewerEmail)
	fmt.Fprintf(&b, "📱 Telefon: %s\n", order.Phone)
	fmt.Fprintf(&b, "✈️ Telegram: %s\n\n", order.TelegramHandle)
	fmt.Fprintf(&b, "🖼 Dizayn turi: %s\n", order.DesignType)
	fmt.Fprintf(&b, "🎮 O'yin: %s\n", order.Game)
	fmt.Fprintf(&b, "💬 Xabar: %s\n\n", message)
	fmt.Fprintf(&b, "💰 Summa: %d so'm\n", order.TotalPrice)
	fmt.Fprintf(&b, "🎟 Promokod: %s\n", promo)
	fmt.Fprintf(&b, "📅 Sana: %s", time.UnixMilli(order.CreatedAt).Format("02.01.2006 15:04"))
	return b.String()
}
