package domain

import "strings"

// ParseLooseBool maps the boolean representations found in historical
// imports (0, "0", "false", nil, 1, "yes", true) to a strict bool.
// This is the single coercion point; callers must not repeat it.
func ParseLooseBool(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "", "0", "false", "no", "off", "null":
			return false
		default:
			return true
		}
	default:
		return false
	}
}
