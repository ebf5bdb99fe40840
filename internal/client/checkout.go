package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ZEBDA1/McHess/internal"
	"github.com/ZEBDA1/McHess/internal/model"
)

// Payee address used when the config endpoint is unreachable.
const fallbackPaypalEmail = "zebdalerat@protonmail.com"

var (
	ErrAlreadySubmitted = errors.New("checkout already produced an order, close the session first")
	ErrSessionClosed    = errors.New("checkout session is closed")
)

// PaymentInstructions is everything the customer needs to complete the
// manual PayPal transfer. The order number in the payment note is the only
// linkage between the off-system payment and the order record.
type PaymentInstructions struct {
	PayeeEmail  string
	Amount      decimal.Decimal
	OrderNumber string
	Note        string
}

// CheckoutSession orchestrates one purchase: pack selection, order creation,
// payment-instruction disclosure and the local cache append. The local append
// happens strictly after a confirmed server success.
type CheckoutSession struct {
	api   *API
	cache *OrderCache
	pack  model.Pack

	mu          sync.Mutex
	email       string
	orderNumber string
	closed      bool
}

func NewCheckoutSession(api *API, cache *OrderCache, pack model.Pack) *CheckoutSession {
	return &CheckoutSession{api: api, cache: cache, pack: pack}
}

// Submit creates the order and returns the payment instructions. A session
// that already produced an order number refuses re-submission with a
// different email; the only further action is Close.
func (s *CheckoutSession) Submit(ctx context.Context, email string) (PaymentInstructions, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return PaymentInstructions{}, ErrSessionClosed
	}
	if s.orderNumber != "" {
		s.mu.Unlock()
		return PaymentInstructions{}, ErrAlreadySubmitted
	}
	s.mu.Unlock()

	if strings.TrimSpace(email) == "" {
		return PaymentInstructions{}, internal.ErrEmptyCustomerEmail
	}

	created, err := s.api.CreateOrder(ctx, s.pack.ID, email)
	if err != nil {
		return PaymentInstructions{}, err
	}

	number := internal.OrderNumber(created.OrderID)

	s.mu.Lock()
	if s.closed {
		// The session was dismissed while the request was in flight; the
		// late response must not reach the cache or the screen.
		s.mu.Unlock()
		return PaymentInstructions{}, ErrSessionClosed
	}
	s.email = email
	s.orderNumber = number
	s.mu.Unlock()

	err = s.cache.Append(model.LocalOrderRecord{
		OrderID:     created.OrderID,
		OrderNumber: number,
		Email:       email,
		PackName:    s.pack.Name,
		Amount:      created.Amount,
		Status:      model.OrderStatusPending,
		Date:        time.Now().UTC(),
	})
	if err != nil {
		return PaymentInstructions{}, err
	}

	return PaymentInstructions{
		PayeeEmail:  s.api.PaypalEmail(ctx, fallbackPaypalEmail),
		Amount:      created.Amount,
		OrderNumber: number,
		Note:        "Ajoutez le numéro de commande " + number + " dans la note du paiement PayPal",
	}, nil
}

// OrderNumber reports the alias issued by a successful Submit, empty before.
func (s *CheckoutSession) OrderNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderNumber
}

// Close resets the session, clearing the order number and email fields.
func (s *CheckoutSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.orderNumber = ""
	s.email = ""
}
