package model

import "github.com/shopspring/decimal"

type Pack struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	PointsRange string          `json:"points_range"`
	Price       decimal.Decimal `json:"price"`
}

// PackInput carries an admin pack edit; it is validated before any write.
type PackInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	PointsRange string          `json:"points_range"`
	Price       decimal.Decimal `json:"price"`
}
