package normalization

import (
	"regexp"
	"strings"
)

// Import files pad street numbers to four digits ("0017 RUE ..."), while other
// sources keep them bare ("17 RUE ..."). The padded form only ever appears at
// the start of a line.
var (
	streetNumberRe = regexp.MustCompile(`^([0-9]{4})\s`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// NormalizeAddressLines strips the zero padding of leading 4-digit street
// numbers and collapses repeated whitespace, line by line, preserving order.
func NormalizeAddressLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = normalizeLine(line)
	}
	return out
}

// NormalizeAddress reduces an ordered list of address lines to a single
// comparable string.
func NormalizeAddress(lines []string) string {
	return strings.TrimSpace(strings.Join(NormalizeAddressLines(lines), " "))
}

func normalizeLine(line string) string {
	if m := streetNumberRe.FindStringSubmatch(line); m != nil {
		number := strings.TrimLeft(m[1], "0")
		if number == "" {
			number = "0"
		}
		line = number + " " + line[len(m[0]):]
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(line, " "))
}
