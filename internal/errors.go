package internal

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("admin session required")

	ErrPackNotFound  = errors.New("pack not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrNoRecords     = errors.New("no records")

	ErrEmptyCustomerEmail = errors.New("customer email is empty")
	ErrEmptyDeliveryInfo  = errors.New("delivery info is empty")
	ErrInvalidStatus      = errors.New("status must be delivered or cancelled")
	ErrOrderFinalized     = errors.New("order already left pending state")

	ErrEmptyPackName        = errors.New("pack name is empty")
	ErrEmptyPackDescription = errors.New("pack description is empty")
	ErrInvalidPointsRange   = errors.New("points range must be low-high with low < high")
	ErrInvalidPrice         = errors.New("price must be a positive number")
)
