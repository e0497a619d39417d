// Package display renders numeric rates and ratios as short fixed-width
// strings and defines the sink a presentation layer must provide.
package display

import (
	"fmt"
	"math"
)

// SI decimal prefixes: the scale steps by 1000, not 1024.
var speedUnits = []string{"B", "K", "M", "G", "T", "P", "E", "Z", "Y"}

// FormatNetSpeed renders a byte rate with SI decimal scaling. The number is
// left-padded with spaces to at least four characters, followed by a space
// and the unit symbol; fullUnit appends "/s". Pure function of its inputs.
func FormatNetSpeed(amount float64, fullUnit bool) string {
	unit := 0
	for amount >= 1000 && unit < len(speedUnits)-1 {
		amount /= 1000
		unit++
	}

	digits := 2
	switch {
	case amount >= 100 || amount < 0.01:
		digits = 0
	case amount >= 10:
		digits = 1
	}

	s := fmt.Sprintf("%*.*f %s", 4, digits, amount, speedUnits[unit])
	if fullUnit {
		s += "/s"
	}
	return s
}

// FormatUsage renders a usage ratio in [0,1] as a whole percentage, rounded
// half away from zero. extraSpacing pads the number to three characters
// instead of two; showSign appends a literal '%'.
func FormatUsage(ratio float64, extraSpacing, showSign bool) string {
	width := 2
	if extraSpacing {
		width = 3
	}

	s := fmt.Sprintf("%*.0f", width, math.Round(ratio*100))
	if showSign {
		s += "%"
	}
	return s
}
