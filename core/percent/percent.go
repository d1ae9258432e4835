// Package percent implements a simple and straightforward type for percentage values.
package percent

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/paginate/core/dimen"
)

// Percent is a percentage value between 0 and 100.
type Percent uint8

// FromInt clamps n to a percentage.
func FromInt(n int) Percent {
	switch {
	case n <= 0:
		return Percent(0)
	case n >= 100:
		return Percent(100)
	}
	return Percent(n)
}

// FromFloat rounds and clamps f to a percentage.
func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case f >= 100 || math.IsInf(f, 1):
		return Percent(100)
	}
	return Percent(math.Round(f))
}

// FromString parses a percentage like "50%" or "12.5%". The '%' is optional.
func FromString(s string) (Percent, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return FromFloat(f), nil
}

// Of returns p percent of d.
func (p Percent) Of(d dimen.Dimen) dimen.Dimen {
	return dimen.Dimen(math.Round(float64(d) * float64(p) / 100))
}

func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}
