package refdata

import (
	"math"
	"strconv"
	"strings"
)

// rentColumns is the fallback order of rent column names across ANIL export
// revisions. The first parseable positive value wins.
var rentColumns = []string{"loyer_median", "loyer", "loyer_m2", "loy_m2"}

// NormalizeCode left-pads an INSEE code to 5 digits. Codes shorter than five
// characters come from sources that stripped the leading zero.
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	for len(code) < 5 {
		code = "0" + code
	}
	return code
}

// parseFloat parses a numeric field, accepting a comma decimal separator.
// Malformed values and NaN are absent, never propagated.
func parseFloat(s string) *float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// parseInt parses an integer field, tolerating float-formatted counts.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f := parseFloat(s); f != nil {
		return int(*f)
	}
	return 0
}
