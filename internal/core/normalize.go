package core

import (
	"strconv"
	"strings"
)

// NormalizeID converts text into a canonical identifier: lowercase ASCII
// letters and digits only. "Mr. Mime" becomes "mrmime".
func NormalizeID(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToID coerces v to a string and normalizes it with NormalizeID.
//
// Strings and numbers are formatted directly. Values that carry their own
// identifier (UserID() or ID()) use it, preferring the user identifier.
// Anything else yields "".
func ToID(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return NormalizeID(val)
	case interface{ UserID() string }:
		return NormalizeID(val.UserID())
	case interface{ ID() string }:
		return NormalizeID(val.ID())
	case int:
		return NormalizeID(strconv.Itoa(val))
	case int8, int16, int32, int64:
		return NormalizeID(strconv.FormatInt(toInt64(val), 10))
	case uint, uint8, uint16, uint32, uint64:
		return NormalizeID(strconv.FormatUint(toUint64(val), 10))
	case float32:
		return NormalizeID(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case float64:
		return NormalizeID(strconv.FormatFloat(val, 'f', -1, 64))
	default:
		return ""
	}
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

func toUint64(v any) uint64 {
	switch n := v.(type) {
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	}
	return 0
}

// NormalizeName converts text into a display name: lowercased and trimmed,
// restricted to letters, digits, spaces, hyphens and apostrophes, with the
// first letter and every letter following a space or hyphen upper-cased.
// "mr. mime" becomes "Mr Mime", "ho-oh" becomes "Ho-Oh".
func NormalizeName(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))
	upper := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			if upper {
				r -= 'a' - 'A'
			}
			upper = false
		case r >= '0' && r <= '9', r == '\'':
			upper = false
		case r == ' ' || r == '-':
			upper = true
		default:
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
