// Package client holds the customer and admin workflows that drive the shop
// backend: a typed REST client, the checkout session, the admin session and
// the local order cache.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ZEBDA1/McHess/internal"
	"github.com/ZEBDA1/McHess/internal/model"
)

const requestTimeout = 10 * time.Second

// ErrNetwork wraps transport failures. Retry is always manual, never
// automatic, so a timed-out order creation is not silently duplicated.
type ErrNetwork struct {
	Err error
}

func (e ErrNetwork) Error() string {
	return fmt.Sprintf("network error, please retry: %s", e.Err.Error())
}

func (e ErrNetwork) Unwrap() error { return e.Err }

type API struct {
	baseURL string
	client  *http.Client
	token   string
}

func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// SetToken attaches the admin session token to subsequent requests.
func (a *API) SetToken(token string) { a.token = token }

func (a *API) ClearToken() { a.token = "" }

func (a *API) Packs(ctx context.Context) ([]model.Pack, error) {
	var packs []model.Pack
	err := a.do(ctx, http.MethodGet, "/api/packs", nil, &packs)
	return packs, err
}

// PaypalEmail resolves the payee address for payment instructions. The
// fallback keeps checkout usable when the config endpoint is unreachable.
func (a *API) PaypalEmail(ctx context.Context, fallback string) string {
	var cfg struct {
		PaypalEmail string `json:"paypal_email"`
	}
	err := a.do(ctx, http.MethodGet, "/api/config", nil, &cfg)
	if err != nil || cfg.PaypalEmail == "" {
		return fallback
	}
	return cfg.PaypalEmail
}

func (a *API) CreateOrder(ctx context.Context, packID, email string) (model.OrderCreated, error) {
	var created model.OrderCreated
	err := a.do(ctx, http.MethodPost, "/api/orders", model.OrderInput{PackID: packID, CustomerEmail: email}, &created)
	return created, err
}

func (a *API) OrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	var orders []model.Order
	err := a.do(ctx, http.MethodGet, "/api/orders/"+email, nil, &orders)
	return orders, err
}

func (a *API) Login(ctx context.Context, login, password string) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	body := map[string]string{"login": login, "password": password}
	err := a.do(ctx, http.MethodPost, "/api/admin/login", body, &res)
	if errors.Is(err, internal.ErrNoSession) {
		return "", internal.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	return res.Token, nil
}

func (a *API) AdminOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := a.do(ctx, http.MethodGet, "/api/admin/orders", nil, &orders)
	return orders, err
}

func (a *API) SetOrderStatus(ctx context.Context, orderID, status string) error {
	return a.do(ctx, http.MethodPut, "/api/admin/orders/"+orderID, model.StatusInput{Status: status}, nil)
}

func (a *API) Deliver(ctx context.Context, orderID, deliveryInfo string) error {
	return a.do(ctx, http.MethodPut, "/api/admin/orders/"+orderID+"/deliver", model.DeliverInput{DeliveryInfo: deliveryInfo}, nil)
}

func (a *API) UpdatePack(ctx context.Context, packID string, i model.PackInput) (model.Pack, error) {
	var pack model.Pack
	err := a.do(ctx, http.MethodPut, "/api/admin/packs/"+packID, i, &pack)
	return pack, err
}

func (a *API) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	res, err := a.client.Do(req)
	if err != nil {
		return ErrNetwork{Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return ErrNetwork{Err: err}
	}

	if res.StatusCode >= 400 {
		return statusError(res.StatusCode, raw)
	}

	if out == nil || res.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// statusError maps backend responses back onto the shared sentinel errors so
// workflows can branch on them the same way the server does.
func statusError(code int, raw []byte) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(raw, &body)

	switch code {
	case http.StatusUnauthorized:
		return internal.ErrNoSession
	case http.StatusNotFound:
		return notFoundError(body.Error)
	case http.StatusConflict:
		return internal.ErrOrderFinalized
	case http.StatusBadRequest:
		return validationError(body.Error)
	default:
		return fmt.Errorf("backend error: status %d", code)
	}
}

func notFoundError(msg string) error {
	if msg == internal.ErrOrderNotFound.Error() {
		return internal.ErrOrderNotFound
	}
	return internal.ErrPackNotFound
}

func validationError(msg string) error {
	for _, sentinel := range []error{
		internal.ErrEmptyCustomerEmail,
		internal.ErrEmptyDeliveryInfo,
		internal.ErrInvalidStatus,
		internal.ErrEmptyPackName,
		internal.ErrEmptyPackDescription,
		internal.ErrInvalidPointsRange,
		internal.ErrInvalidPrice,
	} {
		if msg == sentinel.Error() {
			return sentinel
		}
	}
	return fmt.Errorf("rejected by backend: %s", msg)
}
