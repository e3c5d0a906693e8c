package dto

import (
	"encoding/json"
	"fmt"
)

// LooseBool carries a legacy boolean field through JSON decoding
// without interpreting it. Old exports encode flags as 0, "0",
// "false", true or null; interpretation happens once, in the domain's
// ParseLooseBool. Absence and explicit null are both reported as nil.
type LooseBool struct {
	set   bool
	value any
}

// UnmarshalJSON records whatever the legacy export produced.
func (b *LooseBool) UnmarshalJSON(data []byte) error {
	b.set = true
	return json.Unmarshal(data, &b.value)
}

// Raw returns the decoded legacy value, or nil when the field was
// absent from the payload.
func (b LooseBool) Raw() any {
	if !b.set {
		return nil
	}
	return b.value
}

// LooseFrequency decodes a legacy frequency field. Anything that is
// not a JSON string collapses to the empty string, which the frequency
// parser treats as DAILY.
type LooseFrequency string

// UnmarshalJSON accepts a string, null, or junk.
func (f *LooseFrequency) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if s, ok := v.(string); ok {
		*f = LooseFrequency(s)
		return nil
	}
	*f = ""
	return nil
}

// LooseAmount decodes an amount that legacy exports wrote either as a
// JSON number or as a string. The text is kept verbatim; decimal
// parsing and validation happen in the use case.
type LooseAmount string

// UnmarshalJSON accepts a string or a number.
func (a *LooseAmount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = LooseAmount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or number: %w", err)
	}
	*a = LooseAmount(n.String())
	return nil
}
