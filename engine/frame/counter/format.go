package counter

import (
	"fmt"
	"strconv"
	"strings"
)

// Format converts a counter value to its representation for a list style type.
//
// Supported are decimal, decimal-leading-zero, lower-/upper-roman,
// lower-/upper-latin (alias -alpha) and lower-/upper-greek. Unknown types
// are formatted as decimal.
//
// Roman, alphabetic and greek numbering is defined for positive values only.
// Values ≤ 0 are formatted as decimal for these types, i.e. 0 yields "0".
func Format(value int, styleType string) string {
	switch styleType {
	case "decimal-leading-zero":
		return fmt.Sprintf("%02d", value)
	case "lower-roman":
		if value > 0 {
			return strings.ToLower(roman(value))
		}
	case "upper-roman":
		if value > 0 {
			return roman(value)
		}
	case "lower-latin", "lower-alpha":
		if value > 0 {
			return string(rune('a' + (value-1)%26))
		}
	case "upper-latin", "upper-alpha":
		if value > 0 {
			return string(rune('A' + (value-1)%26))
		}
	case "lower-greek":
		if value > 0 {
			return string(rune(value + 944))
		}
	case "upper-greek":
		if value > 0 {
			return string(rune(value + 912))
		}
	}
	return strconv.Itoa(value)
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// roman returns the upper case Roman numeral for n > 0.
func roman(n int) string {
	var b strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}
