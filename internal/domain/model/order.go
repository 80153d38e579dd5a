package model

// OrderStatus describes the review lifecycle of a commission order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusChecking  OrderStatus = "CHECKING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
)

// Valid reports whether s is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusChecking, OrderStatusConfirmed:
		return true
	}
	return false
}

// DesignType enumerates the commission categories offered by the studio.
type DesignType string

const (
	DesignTypePreview DesignType = "Preview"
	DesignTypeBanner  DesignType = "Banner"
	DesignTypeAvatar  DesignType = "Avatar"
)

// DesignTypes lists all categories in display order.
var DesignTypes = []DesignType{DesignTypePreview, DesignTypeBanner, DesignTypeAvatar}

// Valid reports whether t is a known category.
func (t DesignType) Valid() bool {
	switch t {
	case DesignTypePreview, DesignTypeBanner, DesignTypeAvatar:
		return true
	}
	return false
}

// Gender is collected on the first wizard step.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Valid reports whether g is a known gender value.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Order is a persisted commission request. Immutable once created except for
// Status, which only the status workflow may change.
type Order struct {
	ID string

	// Denormalized viewer identity captured at submission time.
	ViewerID    string
	ViewerEmail string
	ViewerName  string
	ViewerPhoto string

	FirstName      string
	LastName       string
	Gender         Gender
	Phone          string
	TelegramHandle string

	DesignType DesignType
	Game       string
	Message    string

	TotalPrice int64
	PromoCode  string

	Status OrderStatus

	// CreatedAt is epoch milliseconds, the sole feed sort key.
	CreatedAt int64
}
