package client

import (
	"context"
	"strings"
	"sync"

	"github.com/ZEBDA1/McHess/internal"
	"github.com/ZEBDA1/McHess/internal/model"
)

// AdminSession drives the admin screens: login gate, combined data refresh,
// stats, search and the order/catalog actions. Every operation except Login
// requires the session token obtained from a successful login.
type AdminSession struct {
	api *API

	mu     sync.Mutex
	token  string
	packs  []model.Pack
	orders []model.Order
}

func NewAdminSession(api *API) *AdminSession {
	return &AdminSession{api: api}
}

func (s *AdminSession) Login(ctx context.Context, login, password string) error {
	token, err := s.api.Login(ctx, login, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.api.SetToken(token)
	return nil
}

func (s *AdminSession) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.packs = nil
	s.orders = nil
	s.api.ClearToken()
}

func (s *AdminSession) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

func (s *AdminSession) gate() error {
	if !s.Authenticated() {
		return internal.ErrNoSession
	}
	return nil
}

// Refresh loads the full pack list and full order list together. The two
// fetches run concurrently since they target disjoint data, and neither
// result is applied unless both succeed, so a partial failure never leaves
// the screen half-loaded.
func (s *AdminSession) Refresh(ctx context.Context) error {
	if err := s.gate(); err != nil {
		return err
	}

	packsCh := make(chan []model.Pack, 1)
	ordersCh := make(chan []model.Order, 1)
	errCh := make(chan error, 2)

	go func() {
		packs, err := s.api.Packs(ctx)
		if err != nil {
			errCh <- err
			return
		}
		packsCh <- packs
	}()

	go func() {
		orders, err := s.api.AdminOrders(ctx)
		if err != nil {
			errCh <- err
			return
		}
		ordersCh <- orders
	}()

	var packs []model.Pack
	var orders []model.Order
	gotPacks, gotOrders := false, false
	for !gotPacks || !gotOrders {
		select {
		case packs = <-packsCh:
			gotPacks = true
		case orders = <-ordersCh:
			gotOrders = true
		case err := <-errCh:
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.packs = packs
	s.orders = orders
	return nil
}

func (s *AdminSession) Packs() []model.Pack {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Pack(nil), s.packs...)
}

func (s *AdminSession) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Order(nil), s.orders...)
}

// Stats recomputes the snapshot from the orders of the last refresh.
func (s *AdminSession) Stats() model.StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return internal.ComputeStats(s.orders)
}

// SearchOrders filters the held orders and reports the result count.
func (s *AdminSession) SearchOrders(query, status string) ([]model.Order, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := internal.FilterOrders(s.orders, query, status)
	return filtered, len(filtered)
}

// Deliver marks a pending order delivered and re-runs the full refresh so
// stats and the list reflect the new state. No optimistic local patch.
func (s *AdminSession) Deliver(ctx context.Context, orderID, deliveryInfo string) error {
	if err := s.gate(); err != nil {
		return err
	}
	if strings.TrimSpace(deliveryInfo) == "" {
		return internal.ErrEmptyDeliveryInfo
	}
	if err := s.requirePending(orderID); err != nil {
		return err
	}

	err := s.api.Deliver(ctx, orderID, deliveryInfo)
	if err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *AdminSession) Cancel(ctx context.Context, orderID string) error {
	if err := s.gate(); err != nil {
		return err
	}
	if err := s.requirePending(orderID); err != nil {
		return err
	}

	err := s.api.SetOrderStatus(ctx, orderID, model.OrderStatusCancelled)
	if err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// SavePack validates the edit before the network call, so invalid
// submissions never leave the client.
func (s *AdminSession) SavePack(ctx context.Context, packID string, i model.PackInput) error {
	if err := s.gate(); err != nil {
		return err
	}
	if err := internal.ValidatePackInput(i); err != nil {
		return err
	}

	_, err := s.api.UpdatePack(ctx, packID, i)
	if err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Transition actions are only offered while the order is still pending in
// the last refreshed view; the server enforces the same with a CAS.
func (s *AdminSession) requirePending(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			if o.Status != model.OrderStatusPending {
				return internal.ErrOrderFinalized
			}
			return nil
		}
	}
	return internal.ErrOrderNotFound
}
