package strong

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// NumberKind selects the cleanup rules used when a cell does not parse.
type NumberKind int

const (
	KindWeight NumberKind = iota
	KindReps
)

var (
	nonWeightRe = regexp.MustCompile(`[^0-9.\-]`)
	nonDigitRe  = regexp.MustCompile(`[^0-9]`)

	// weightRunRe matches the first number in a cleaned weight cell: -12.5
	weightRunRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	repsRunRe   = regexp.MustCompile(`\d+`)
)

// MaxReps bounds a reps cell. Larger values read as 0.
const MaxReps = math.MaxInt32

// CoerceNumber converts a raw export cell to a number. It never fails:
// cells that cannot be read degrade to 0.
//
// Exports contain stray quoting and embedded units ("\"82.5\"kg"), so the
// value goes through three attempts: a direct parse after dropping quotes,
// a parse after stripping every character the kind does not allow, and
// finally the first numeric run found in the stripped text.
//
// Reps are never negative: a leading minus is stripped like any other
// stray character, and values above MaxReps read as 0.
func CoerceNumber(raw string, kind NumberKind) float64 {
	if raw == "" || raw == `""` {
		return 0
	}
	s := strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))

	switch kind {
	case KindReps:
		if v, ok := parseFinite(s); ok && v >= 0 {
			return repsInRange(v)
		}
		cleaned := nonDigitRe.ReplaceAllString(s, "")
		if v, ok := parseFinite(cleaned); ok {
			return repsInRange(v)
		}
		if m := repsRunRe.FindString(cleaned); m != "" {
			if v, ok := parseFinite(m); ok {
				return repsInRange(v)
			}
		}
	default:
		if v, ok := parseFinite(s); ok {
			return v
		}
		cleaned := nonWeightRe.ReplaceAllString(s, "")
		if v, ok := parseFinite(cleaned); ok {
			return v
		}
		if m := weightRunRe.FindString(cleaned); m != "" {
			if v, ok := parseFinite(m); ok {
				return v
			}
		}
	}
	return 0
}

// CoerceWeight reads a weight cell.
func CoerceWeight(raw string) float64 {
	return CoerceNumber(raw, KindWeight)
}

// CoerceReps reads a reps cell, truncating any fraction.
func CoerceReps(raw string) int {
	return int(CoerceNumber(raw, KindReps))
}

func repsInRange(v float64) float64 {
	if v > MaxReps {
		return 0
	}
	return math.Trunc(v)
}

func parseFinite(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
