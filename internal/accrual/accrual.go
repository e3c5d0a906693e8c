// Package accrual computes the accumulated monetary obligation of a set
// of cost records as of a reference date.
//
// Each calendar month accrues independently: a recurring cost restarts
// counting at the 1st of the month under evaluation, or at its creation
// date when it was created later in that same month. Amounts from prior
// months never carry over. The anchor day itself always counts as one
// unit, so a cost created today already contributes one occurrence.
package accrual

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/domain"
)

const daysPerWeek = 7

// Item classifies a single record's contribution as of the reference date.
type Item struct {
	CostID       string
	Contribution decimal.Decimal
	OneTime      bool
}

// Result is the engine output: the aggregate total plus the per-record
// breakdown that produced it.
type Result struct {
	Total decimal.Decimal
	Items []Item
}

// Total sums the contributions of all active records as of ref.
// It never fails: malformed input degrades to a zero contribution.
func Total(ref time.Time, costs []*domain.Cost) decimal.Decimal {
	total := decimal.Zero
	for _, c := range costs {
		total = total.Add(Contribution(ref, c))
	}
	return total
}

// Breakdown computes the total along with each record's contribution.
func Breakdown(ref time.Time, costs []*domain.Cost) Result {
	res := Result{
		Total: decimal.Zero,
		Items: make([]Item, 0, len(costs)),
	}
	for _, c := range costs {
		contribution := Contribution(ref, c)
		res.Items = append(res.Items, Item{
			CostID:       c.ID,
			Contribution: contribution,
			OneTime:      c.IsOneTime(),
		})
		res.Total = res.Total.Add(contribution)
	}
	return res
}

// Contribution computes a single record's accrued amount as of ref.
// Time of day is ignored on both sides. Inactive records and records
// whose start date lies beyond ref contribute zero.
func Contribution(ref time.Time, c *domain.Cost) decimal.Decimal {
	if !c.Active {
		return decimal.Zero
	}

	refDay := midnight(ref)
	startDay := midnight(c.CreatedAt)

	frequency := domain.ParseFrequency(string(c.Frequency))
	if frequency == domain.FrequencyOnce || !c.IsFixed {
		if refDay.Before(startDay) {
			return decimal.Zero
		}
		return c.Amount
	}

	// Anything dated after ref has not started accruing yet.
	if refDay.Before(startDay) {
		return decimal.Zero
	}

	// Accrual restarts each month: anchor at the 1st of ref's month,
	// or at the creation date if it falls later in that month.
	anchor := startOfMonth(refDay)
	if startDay.After(anchor) {
		anchor = startDay
	}

	var units int64
	switch frequency {
	case domain.FrequencyDaily:
		units = wholeDays(anchor, refDay) + 1
	case domain.FrequencyWeekly:
		units = wholeDays(weekStart(anchor), weekStart(refDay))/daysPerWeek + 1
	case domain.FrequencyMonthly:
		units = monthsBetween(anchor, refDay) + 1
	}

	if units <= 0 {
		return decimal.Zero
	}

	return c.Amount.Mul(decimal.NewFromInt(units))
}

// midnight truncates a timestamp to 00:00 UTC of its calendar date.
func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// weekStart aligns a day to the Sunday that begins its week.
func weekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// wholeDays counts whole 24-hour days from a to b. Both arguments must
// already be normalized to midnight.
func wholeDays(a, b time.Time) int64 {
	return int64(b.Sub(a) / (24 * time.Hour))
}

func monthsBetween(a, b time.Time) int64 {
	return int64(b.Year()-a.Year())*12 + int64(b.Month()-a.Month())
}
