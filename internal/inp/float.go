package inp

import (
	"strconv"
	"strings"
)

// FormatFloat renders v with the fewest digits that round-trip,
// keeping a trailing ".0" on integral values so the field still reads
// as a real number in the data line.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
