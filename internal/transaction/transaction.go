package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the direction of a transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Record is a persisted transaction as the data layer stores it.
// Extraction produces candidates of this shape; the duplicate guard
// compares candidates against existing records.
type Record struct {
	ID          uuid.UUID
	UserID      string
	Amount      float64
	Type        Type
	Category    string
	Description string
	Merchant    string
	Date        time.Time
	CreatedAt   time.Time
}
