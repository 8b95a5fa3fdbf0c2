package order

import "time"

// --------------------------------------------------
// PAYMENT METHOD
// --------------------------------------------------

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "Cash"
	PaymentCard    PaymentMethod = "Card"
	PaymentEWallet PaymentMethod = "E-Wallet"
	PaymentOnline  PaymentMethod = "Online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentEWallet, PaymentOnline:
		return true
	}
	return false
}

// --------------------------------------------------
// RECEIPT (PERSISTED ENTITY)
// --------------------------------------------------

// Receipt is the immutable record of one completed checkout.
// Items holds the "Burger x2, Fries x1" form the counter prints.
type Receipt struct {
	OrderID       string    `json:"order_id"`
	Items         string    `json:"items"`
	Total         int       `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	Details       *string   `json:"details,omitempty"`
	UserID        *string   `json:"user_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CheckoutResult is what the checkout endpoint returns. The QR URL is only
// present for cash payments when object storage is configured.
type CheckoutResult struct {
	Receipt   *Receipt `json:"receipt"`
	QRCodeURL string   `json:"qr_code_url,omitempty"`
}
