package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a financial transaction. A positive amount is
// income, a negative one an expense.
type Transaction struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}
