package models

import "github.com/shopspring/decimal"

// Budget is a per-category spending limit
type Budget struct {
	ID       int             `json:"id"`
	UserID   int             `json:"user_id"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}
