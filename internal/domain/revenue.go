package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue represents money received by an owner: salary, invoice
// payment, dividend.
type Revenue struct {
	ID         string
	Owner      OwnerKey
	Amount     decimal.Decimal
	Source     string
	ReceivedAt time.Time
	CreatedAt  time.Time
}

// Validate checks the fields a revenue must carry before it is persisted.
func (r *Revenue) Validate() error {
	if r.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if r.Owner.ID == "" {
		return ErrMissingOwner
	}
	return nil
}
