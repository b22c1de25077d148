package raycard

import (
	"math"
	"strconv"
	"strings"
)

// RootFontSize is the pixel size assumed for em and rem lengths.
const RootFontSize = 16

// ResolveRadius converts the first value of a border-radius shorthand into
// pixels for a box of the given size. Percentages refer to the shorter side.
// Invalid input resolves Defaults.BorderRadius instead. The result never
// exceeds half the shorter side.
func ResolveRadius(radius string, width, height float64) float64 {
	if !IsValidBorderRadius(radius) {
		radius = Defaults.BorderRadius
	}
	token := strings.Fields(radius)[0]

	unit := ""
	for _, suffix := range []string{"rem", "px", "em", "%"} {
		if strings.HasSuffix(token, suffix) {
			unit = suffix
			token = strings.TrimSuffix(token, suffix)
			break
		}
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}

	short := math.Max(0, math.Min(width, height))
	switch unit {
	case "em", "rem":
		v *= RootFontSize
	case "%":
		v = v / 100 * short
	}
	return math.Min(v, short/2)
}
