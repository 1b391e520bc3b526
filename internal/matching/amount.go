package matching

import (
	"regexp"
	"strconv"
	"strings"
)

// UnitType classifies an extracted package quantity. The single-letter
// values are what the backing store already holds, so they must not change.
type UnitType string

const (
	// UnitCount means the quantity is a number of units (tablets, sachets...).
	UnitCount UnitType = "C"
	// UnitDays means the quantity is a supply period converted to days.
	UnitDays UnitType = "D"
	// UnitNone means no quantity could be extracted.
	UnitNone UnitType = ""
)

// countUnits are the whole-word tokens that denote a unit count. Matching is
// done on lowercased text, so "EA"/"T"/"C" are covered too.
const countUnits = `(정|캡슐|알|개|포|병|스틱|매|ea|t|c)`

// wordEnd emulates a Unicode-aware word boundary after a unit token: end of
// input, or anything that is not a letter, digit, or underscore. Go's \b is
// ASCII-only and would not stop "개" from matching inside "개월".
const wordEnd = `(?:$|[^\p{L}\p{N}_])`

var (
	countPattern    = regexp.MustCompile(`(\d+)\s*` + countUnits + wordEnd)
	multiplyPattern = regexp.MustCompile(`x\s*(\d+)\s*` + countUnits + wordEnd)
	monthPattern    = regexp.MustCompile(`(\d+)\s*(개월|달|month)`)
	weekPattern     = regexp.MustCompile(`(\d+)\s*(주|week)`)
)

// ExtractAmount pulls a quantity and its unit type out of free-text
// packaging descriptions such as "비타민C 1000mg x 120캡슐" or "3개월분".
// Rules are tried in a fixed priority order and the first hit wins:
//
//  1. digits followed by a count unit        -> (n, UnitCount)
//  2. "x" then digits then a count unit      -> (n, UnitCount)
//  3. digits followed by 개월/달/month       -> (n*30, UnitDays)
//  4. digits followed by 주/week             -> (n*7, UnitDays)
//
// Anything else yields (0, UnitNone). The multiplier rule exists so that
// "300mg x 120캡슐" takes the pack count, not the dosage.
func ExtractAmount(text string) (int, UnitType) {
	if text == "" {
		return 0, UnitNone
	}
	text = strings.ToLower(text)

	if m := countPattern.FindStringSubmatch(text); m != nil {
		return mustAtoi(m[1]), UnitCount
	}
	if m := multiplyPattern.FindStringSubmatch(text); m != nil {
		return mustAtoi(m[1]), UnitCount
	}
	if m := monthPattern.FindStringSubmatch(text); m != nil {
		return mustAtoi(m[1]) * 30, UnitDays
	}
	if m := weekPattern.FindStringSubmatch(text); m != nil {
		return mustAtoi(m[1]) * 7, UnitDays
	}
	return 0, UnitNone
}

// mustAtoi converts a string the regexp already guaranteed to be digits.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
