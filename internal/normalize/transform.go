package normalize

import (
	"math"
	"strconv"
	"strings"
)

// parseNumeric strips thousands separators and parses a float64. Shared
// by the numeric and comma_stripped_numeric transforms — the designated
// yards columns are marked explicitly in the schema, but a stray
// separator in any numeric cell is handled the same way.
func parseNumeric(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parsePercentage parses a whole-number percentage cell ("55") into its
// fractional value (0.55).
func parsePercentage(s string) (float64, bool) {
	f, ok := parseNumeric(s)
	if !ok {
		return 0, false
	}
	return f / 100, true
}

// parseDuration parses "MM:SS" into total fractional minutes. Minutes and
// seconds are base-10 and non-negative; seconds must be in [0,60).
func parseDuration(s string) (float64, bool) {
	mm, ss, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 {
		return 0, false
	}
	seconds, err := strconv.Atoi(ss)
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, false
	}
	return float64(minutes) + float64(seconds)/60, true
}

// isIntegral reports whether f has no fractional part and fits in an int.
func isIntegral(f float64) bool {
	return f == math.Trunc(f) && !math.IsInf(f, 0) &&
		f >= math.MinInt64/2 && f <= math.MaxInt64/2
}
