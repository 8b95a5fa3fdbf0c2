package order

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/cart"
	"github.com/IlogonPearl/Canteen-Genai-System/internal/catalog"
)

// Uploader stores the QR receipt image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	carts   *cart.Service
	menu    *catalog.Catalog
	storage Uploader // optional, nil disables QR receipts
}

func NewService(
	repo Repository,
	carts *cart.Service,
	menu *catalog.Catalog,
	storage Uploader,
) *Service {
	return &Service{
		repo:    repo,
		carts:   carts,
		menu:    menu,
		storage: storage,
	}
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------
// Checkout is all-or-nothing: either the receipt is persisted and the cart
// cleared, or the cart is left exactly as it was.
func (s *Service) Checkout(
	ctx context.Context,
	sessionID string,
	method PaymentMethod,
	details string,
	userID string,
) (*CheckoutResult, error) {

	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPayment, method)
	}

	current, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current.IsEmpty() {
		return nil, ErrEmptyCart
	}

	total, err := current.Total(s.menu)
	if err != nil {
		return nil, err
	}

	receipt := &Receipt{
		OrderID:       newOrderID(),
		Items:         FormatItems(current.Lines()),
		Total:         total,
		PaymentMethod: string(method),
		Details:       refOrNil(strings.TrimSpace(details)),
		UserID:        refOrNil(strings.TrimSpace(userID)),
	}

	if err := s.repo.Insert(ctx, receipt); err != nil {
		return nil, err
	}

	// Receipt is persisted; the cart must not survive the checkout. A cart
	// store hiccup here is logged, not surfaced, because the order already
	// happened.
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		log.Printf("clear cart after checkout %s: %v", receipt.OrderID, err)
	}

	result := &CheckoutResult{Receipt: receipt}

	if method == PaymentCash && s.storage != nil {
		if url, err := s.uploadQR(ctx, receipt); err != nil {
			log.Printf("QR upload for order %s: %v", receipt.OrderID, err)
		} else {
			result.QRCodeURL = url
		}
	}

	return result, nil
}

// --------------------------------------------------
// List Receipts
// --------------------------------------------------
func (s *Service) ListReceipts(ctx context.Context) ([]*Receipt, error) {
	return s.repo.ListAll(ctx)
}

// uploadQR renders the counter QR ("show this at the counter") and stores it.
func (s *Service) uploadQR(ctx context.Context, receipt *Receipt) (string, error) {
	text := fmt.Sprintf(
		"Order ID: %s\nItems: %s\nTotal: ₱%d\nPayment: %s",
		receipt.OrderID,
		receipt.Items,
		receipt.Total,
		receipt.PaymentMethod,
	)

	png, err := qrcode.Encode(text, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("receipts/%s.png", receipt.OrderID)
	return s.storage.Upload(ctx, key, bytes.NewReader(png), "image/png")
}

// newOrderID returns a short unique token, a uuid fragment as printed on
// the paper receipts.
func newOrderID() string {
	return uuid.New().String()[:8]
}
