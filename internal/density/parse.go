package density

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseLine returns the value of the n-th (0 origin) tab separated field of
// line.
func ParseLine(line string, n int) (float64, error) {
	s, count, ok := fieldAt(line, n)
	if !ok {
		return 0, fmt.Errorf("%w: want field %d, line has %d", ErrIndex, n, count)
	}
	return parseNumber(s)
}

// fieldAt walks the line without splitting it up front. When the field is
// missing, count holds the number of fields seen.
func fieldAt(line string, n int) (field string, count int, ok bool) {
	for i := 0; ; i++ {
		j := strings.IndexByte(line, '\t')
		if i == n {
			if j == -1 {
				return line, 0, true
			}
			return line[:j], 0, true
		}
		if j == -1 {
			return "", i + 1, false
		}
		line = line[j+1:]
	}
}

// parseNumber accepts plain decimal literals with optional sign, fraction and
// exponent. strconv.ParseFloat is more liberal than that: hex mantissas,
// digit separators, nan and inf are turned away here.
func parseNumber(s string) (float64, error) {
	if strings.ContainsAny(s, "xX_") {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return v, nil
}
