package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order snapshots the pack name and price at creation time, so later pack
// edits never change historical orders.
type Order struct {
	ID            string          `json:"id"`
	PackID        string          `json:"pack_id"`
	PackName      string          `json:"pack_name"`
	CustomerEmail string          `json:"customer_email"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	DeliveryInfo  string          `json:"delivery_info,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderInput struct {
	PackID        string `json:"pack_id"`
	CustomerEmail string `json:"customer_email"`
}

type OrderCreated struct {
	OrderID string          `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
}

type StatusInput struct {
	Status string `json:"status"`
}

type DeliverInput struct {
	DeliveryInfo string `json:"delivery_info"`
}

// StatsSnapshot is derived from the full order set on every admin refresh and
// never persisted. Revenue counts delivered orders only.
type StatsSnapshot struct {
	TotalOrders     int             `json:"totalOrders"`
	PendingOrders   int             `json:"pendingOrders"`
	DeliveredOrders int             `json:"deliveredOrders"`
	CancelledOrders int             `json:"cancelledOrders"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
}

// LocalOrderRecord is the client-side echo of an order kept for self-service
// lookup by email. Its status is captured at creation time and is not kept in
// sync with the server; reads from it are informational only.
type LocalOrderRecord struct {
	OrderID     string          `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	Email       string          `json:"email"`
	PackName    string          `json:"pack"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Date        time.Time       `json:"date"`
}
