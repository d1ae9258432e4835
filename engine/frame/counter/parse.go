package counter

import (
	"strconv"
	"strings"
)

// Entry is a counter id together with a value, as found in `counter-reset`
// and `counter-increment` directives.
type Entry struct {
	ID    string
	Value int
}

// ParseResets parses the value of a `counter-reset` property.
// Format is "name [value] [name2 [value2] ...]"; values default to 0.
// "none" and the empty string yield no entries.
func ParseResets(value string) []Entry {
	return parseDirective(value, 0)
}

// ParseIncrements parses the value of a `counter-increment` property.
// Values default to 1.
func ParseIncrements(value string) []Entry {
	return parseDirective(value, 1)
}

func parseDirective(value string, dflt int) []Entry {
	value = strings.TrimSpace(value)
	if value == "" || value == "none" {
		return nil
	}
	parts := strings.Fields(value)
	var entries []Entry
	for i := 0; i < len(parts); i++ {
		e := Entry{ID: parts[i], Value: dflt}
		if i+1 < len(parts) {
			if v, err := strconv.Atoi(parts[i+1]); err == nil {
				e.Value = v
				i++
			}
		}
		entries = append(entries, e)
	}
	return entries
}
