package matching

import "strings"

// Candidate is one shopping-search result as seen by the validator and the
// resolver. All fields are untrusted free text from the external API.
type Candidate struct {
	Title    string
	Brand    string
	Maker    string
	Link     string
	LowPrice string
	MallName string
	Image    string
}

// IsValidMatch reports whether a search candidate is really the stored
// product. The manufacturer is checked first: a normalized manufacturer of
// fewer than two runes is too short to discriminate and passes
// automatically; otherwise it must appear inside the candidate's combined
// title+brand+maker text, either directly or as its first two tokens joined
// without spaces. Only then is the product name checked, space-stripped, as
// a substring of the candidate title. A stored name that normalizes to
// empty never matches.
func IsValidMatch(manufacturer, productName string, c Candidate) bool {
	if !manufacturerMatches(manufacturer, c) {
		return false
	}
	return nameContained(productName, c.Title)
}

func manufacturerMatches(manufacturer string, c Candidate) bool {
	cleanCompany := Normalize(manufacturer)
	if len([]rune(cleanCompany)) < 2 {
		return true
	}

	combined := Normalize(c.Title + " " + c.Brand + " " + c.Maker)
	if strings.Contains(combined, cleanCompany) {
		return true
	}

	// Manufacturers are often registered with spacing the shopping API does
	// not use ("코스 맥스" vs "코스맥스"), so try the first two tokens fused.
	parts := strings.Fields(cleanCompany)
	if len(parts) >= 2 && strings.Contains(stripSpaces(combined), parts[0]+parts[1]) {
		return true
	}
	return false
}

// nameContained is the strict product-name check: both sides normalized,
// all whitespace removed, stored name contained in the candidate title.
// Containment rather than equality is deliberate; titles carry trailing
// quantity and flavor text that equality would reject.
func nameContained(productName, candidateTitle string) bool {
	stored := stripSpaces(Normalize(productName))
	if stored == "" {
		return false
	}
	title := stripSpaces(Normalize(candidateTitle))
	return strings.Contains(title, stored)
}
