package internal

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ZEBDA1/McHess/internal/model"
)

// OrderNumber derives the human-facing alias shown in payment instructions:
// the last 8 characters of the order id, upper-cased. It is display-only and
// must never be used as a lookup key against the ledger.
func OrderNumber(orderID string) string {
	if len(orderID) > 8 {
		orderID = orderID[len(orderID)-8:]
	}
	return strings.ToUpper(orderID)
}

// ComputeStats aggregates the full order set. Pending and cancelled orders
// never contribute to revenue.
func ComputeStats(orders []model.Order) model.StatsSnapshot {
	s := model.StatsSnapshot{
		TotalOrders:  len(orders),
		TotalRevenue: decimal.Zero,
	}
	for _, o := range orders {
		switch o.Status {
		case model.OrderStatusPending:
			s.PendingOrders++
		case model.OrderStatusDelivered:
			s.DeliveredOrders++
			s.TotalRevenue = s.TotalRevenue.Add(o.Amount)
		case model.OrderStatusCancelled:
			s.CancelledOrders++
		}
	}
	return s
}

// FilterOrders applies the admin search. The query matches case-insensitively
// against customer email, pack name or order id; the status filter narrows to
// a single status unless it is "all". Both predicates combine with AND.
func FilterOrders(orders []model.Order, query, status string) []model.Order {
	query = strings.ToLower(query)

	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if status != "all" && status != "" && o.Status != status {
			continue
		}
		if query != "" && !matchesQuery(o, query) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

func matchesQuery(o model.Order, query string) bool {
	return strings.Contains(strings.ToLower(o.CustomerEmail), query) ||
		strings.Contains(strings.ToLower(o.PackName), query) ||
		strings.Contains(strings.ToLower(o.ID), query)
}
