package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal represents a savings target.
type Goal struct {
	ID           string
	Owner        OwnerKey
	Name         string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	Deadline     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Progress returns the saved/target ratio clamped to [0, 1].
// A zero target counts as fully reached.
func (g *Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.NewFromInt(1)
	}
	ratio := g.SavedAmount.Div(g.TargetAmount)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	if ratio.IsNegative() {
		return decimal.Zero
	}
	return ratio
}

// AddSavings records an additional saved amount.
func (g *Goal) AddSavings(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNegativeAmount
	}
	g.SavedAmount = g.SavedAmount.Add(amount)
	return nil
}

// Validate checks the fields a goal must carry before it is persisted.
func (g *Goal) Validate() error {
	if g.Name == "" {
		return ErrInvalidGoalName
	}
	if g.TargetAmount.IsNegative() || g.SavedAmount.IsNegative() {
		return ErrNegativeAmount
	}
	if g.Owner.ID == "" {
		return ErrMissingOwner
	}
	return nil
}
