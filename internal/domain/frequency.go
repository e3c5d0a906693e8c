package domain

import "strings"

// Frequency describes how often a cost accrues.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyOnce    Frequency = "ONCE"
)

var validFrequencies = map[Frequency]bool{
	FrequencyDaily:   true,
	FrequencyWeekly:  true,
	FrequencyMonthly: true,
	FrequencyOnce:    true,
}

// IsValid checks if the frequency is one of the four known values.
func (f Frequency) IsValid() bool {
	return validFrequencies[f]
}

// ParseFrequency normalizes a raw frequency string. Input is trimmed and
// uppercased; empty or unrecognized values fall back to DAILY so a bad
// record can never break a dashboard total.
func ParseFrequency(raw string) Frequency {
	f := Frequency(strings.ToUpper(strings.TrimSpace(raw)))
	if !f.IsValid() {
		return FrequencyDaily
	}
	return f
}
