package core

// convert.go provides the value parsers used by schema descriptors.
//
// These functions handle the messy reality of hand-edited spreadsheet data:
//   - Comma decimal separators ("17,5")
//   - Numbers with trailing junk ("45 (approx)")
//   - Excel formula prefixes (="value")
//   - Placeholder dashes for empty slots ("overgrow/-/chlorophyll")
//
// Numeric parsers never fail: input without a leading number yields NaN,
// which is carried into the output rather than rejected.

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// intPrefixRegex matches the leading base-10 integer of a string.
	intPrefixRegex = regexp.MustCompile(`^[+-]?\d+`)

	// floatPrefixRegex matches the leading decimal number of a string,
	// including scientific notation.
	floatPrefixRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

	// listSeparatorRegex splits multi-value fields.
	listSeparatorRegex = regexp.MustCompile(`[/,]`)
)

// StatNames are the base stat slots in output order.
var StatNames = []string{"hp", "atk", "def", "spa", "spd", "spe"}

// AbilitySlots are the ability slot keys in output order.
var AbilitySlots = []string{"0", "1", "H"}

// ParseInt parses the leading base-10 integer of s, ignoring leading
// whitespace. Returns NaN if s does not start with digits.
func ParseInt(s string) float64 {
	m := intPrefixRegex.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// ParseDecimal parses the leading decimal number of s, accepting either
// "." or "," as the decimal separator. Returns NaN if s does not start with
// a number.
func ParseDecimal(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	m := floatPrefixRegex.FindString(s)
	if m == "" {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// SplitList splits a slash- or comma-delimited field, trimming pieces and
// dropping empty ones.
func SplitList(s string) []string {
	parts := listSeparatorRegex.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NameList splits s and normalizes each piece as a display name.
func NameList(s string) any {
	parts := SplitList(s)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := NormalizeName(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// IDList splits s and normalizes each piece as an identifier.
func IDList(s string) any {
	parts := SplitList(s)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if id := NormalizeID(p); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// Integer is the ParseFunc form of ParseInt.
func Integer(s string) any {
	return ParseInt(s)
}

// Decimal is the ParseFunc form of ParseDecimal.
func Decimal(s string) any {
	return ParseDecimal(s)
}

// Name is the ParseFunc form of NormalizeName.
func Name(s string) any {
	return NormalizeName(s)
}

// Identifier is the ParseFunc form of NormalizeID.
func Identifier(s string) any {
	return NormalizeID(s)
}

// Text returns the cleaned raw cell.
func Text(s string) any {
	return CleanCell(s)
}

// GenderLetter returns the upper-cased identifier form: "m" -> "M".
func GenderLetter(s string) any {
	return strings.ToUpper(NormalizeID(s))
}

// StatBlock parses "hp/atk/def/spa/spd/spe" into a record with the six
// fixed stat slots. Missing slots are NaN.
func StatBlock(s string) any {
	parts := strings.Split(s, "/")
	rec := NewRecord(len(StatNames))
	for i, name := range StatNames {
		v := math.NaN()
		if i < len(parts) {
			v = ParseInt(parts[i])
		}
		rec.Set(name, v)
	}
	return rec
}

// AbilitySet parses "first/second/hidden" into a record keyed 0, 1 and H.
// Hyphens become spaces before name casing, so a lone "-" marks an empty
// slot. Slot 0 is always set; slots 1 and H only when non-empty.
func AbilitySet(s string) any {
	parts := strings.Split(s, "/")
	rec := NewRecord(len(AbilitySlots))
	for i, slot := range AbilitySlots {
		if i >= len(parts) {
			break
		}
		name := NormalizeName(strings.ReplaceAll(parts[i], "-", " "))
		if i > 0 && name == "" {
			continue
		}
		rec.Set(slot, name)
	}
	return rec
}

// GenderRatio parses a male ratio ("0.875") or an explicit pair
// ("0.5/0.5") into a record keyed M and F.
func GenderRatio(s string) any {
	parts := strings.Split(s, "/")
	m := ParseDecimal(parts[0])

	var f float64
	if len(parts) > 1 {
		f = ParseDecimal(parts[1])
	} else {
		f = math.Round((1-m)*1e9) / 1e9
	}

	rec := NewRecord(2)
	rec.Set("M", m)
	rec.Set("F", f)
	return rec
}

// SpeciesName returns a ParseFunc that resolves aliases, normalizes to a
// display name and joins words with hyphens: "mega gengar" -> "Gengar-Mega".
func SpeciesName(aliases *AliasTable) ParseFunc {
	return func(s string) any {
		return SpeciesDisplayName(aliases, s)
	}
}

// SpeciesDisplayName is the hyphenated display form of an aliased name.
func SpeciesDisplayName(aliases *AliasTable, s string) string {
	name := NormalizeName(aliases.Resolve(CleanCell(s)))
	return strings.ReplaceAll(name, " ", "-")
}

// CleanCell removes common CSV artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}

	return s
}
