package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// DealStatus is the closed set of lifecycle labels for a deal.
// No transition rules are enforced yet; IsValid keeps the set closed
// so transition checks can be added in one place later.
type DealStatus string

const (
	DealStatusDraft     DealStatus = "draft"
	DealStatusActive    DealStatus = "active"
	DealStatusPaid      DealStatus = "paid"
	DealStatusCancelled DealStatus = "cancelled"
	DealStatusCompleted DealStatus = "completed"
)

// IsValid reports whether s is one of the known status labels.
func (s DealStatus) IsValid() bool {
	switch s {
	case DealStatusDraft, DealStatusActive, DealStatusPaid, DealStatusCancelled, DealStatusCompleted:
		return true
	}
	return false
}

// Deal represents a sale of a tour to a client.
// Dates are stored as YYYY-MM-DD strings and parsed when needed.
type Deal struct {
	ID                int64           `json:"id" db:"id"`
	ClientID          int64           `json:"client_id" db:"client_id"`
	DealAmount        decimal.Decimal `json:"deal_amount" db:"deal_amount"`
	CommissionPercent decimal.Decimal `json:"commission_percent" db:"commission_percent"`
	CommissionAmount  decimal.Decimal `json:"commission_amount" db:"commission_amount"`
	TourOperator      string          `json:"tour_operator" db:"tour_operator"`
	DealDate          string          `json:"deal_date" db:"deal_date"`
	PaymentDueDate    string          `json:"payment_due_date" db:"payment_due_date"`
	Status            DealStatus      `json:"status" db:"status"`
	Description       *string         `json:"description" db:"description"`
	CreatedAt         *time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt         *time.Time      `json:"updated_at" db:"updated_at"`
}
