package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OwnerType distinguishes personal records from business-entity records.
type OwnerType string

const (
	OwnerUser   OwnerType = "user"
	OwnerEntity OwnerType = "entity"
)

// OwnerKey scopes a record to exactly one owner: a user or a business
// entity. Ownership is exclusive.
type OwnerKey struct {
	Type OwnerType
	ID   string
}

// UserOwner returns an OwnerKey for a personal record.
func UserOwner(userID string) OwnerKey {
	return OwnerKey{Type: OwnerUser, ID: userID}
}

// EntityOwner returns an OwnerKey for a business-entity record.
func EntityOwner(entityID string) OwnerKey {
	return OwnerKey{Type: OwnerEntity, ID: entityID}
}

// Cost represents one recurring or one-time monetary obligation.
// CreatedAt doubles as the accrual anchor: the date the obligation
// entered effect.
type Cost struct {
	ID          string
	Owner       OwnerKey
	Amount      decimal.Decimal
	Frequency   Frequency
	IsFixed     bool
	Active      bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOneTime reports whether the cost contributes its amount exactly once.
// Either signal alone forces one-time treatment: a ONCE frequency, or a
// record flagged non-fixed regardless of frequency (legacy-data fallback).
func (c *Cost) IsOneTime() bool {
	return c.Frequency == FrequencyOnce || !c.IsFixed
}

// Normalize enforces the frequency/IsFixed invariant: a ONCE cost is
// never fixed.
func (c *Cost) Normalize() {
	c.Frequency = ParseFrequency(string(c.Frequency))
	if c.Frequency == FrequencyOnce {
		c.IsFixed = false
	}
}

// Validate checks the fields a cost must carry before it is persisted.
func (c *Cost) Validate() error {
	if c.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !c.Frequency.IsValid() {
		return ErrInvalidFrequency
	}
	if c.Owner.ID == "" {
		return ErrMissingOwner
	}
	return ValidateDescription(c.Description)
}
