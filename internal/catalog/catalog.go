// Package catalog classifies folder names by astronomical catalog designation.
package catalog

import (
	"regexp"
	"strings"
)

// ID is a normalized catalog designation such as "NGC 2244" or "SH 2-131".
// Two folder names refer to the same object exactly when their IDs are equal.
type ID string

// Match is the result of classifying a folder name.
// When OK is false the name matched no catalog pattern and the folder
// must be left alone. Designation and Description are only meaningful
// when OK is true.
type Match struct {
	Designation ID
	Description string
	OK          bool
}

// pattern pairs a compiled prefix matcher with the function that renders
// the normalized designation from the captured catalog number.
type pattern struct {
	re     *regexp.Regexp
	render func(number string) ID
}

// patterns are tried in fixed priority order; the first match wins.
// Each regexp captures the catalog number and the trailing descriptive
// text, with permissive separators between prefix, number, and suffix.
var patterns = []pattern{
	{
		re:     regexp.MustCompile(`^(?i)(?:MESSIER|M)[\s._-]*(\d+)(.*)$`),
		render: func(n string) ID { return ID("M " + n) },
	},
	{
		re:     regexp.MustCompile(`^(?i)NGC[\s._-]*(\d+)(.*)$`),
		render: func(n string) ID { return ID("NGC " + n) },
	},
	{
		re:     regexp.MustCompile(`^(?i)IC[\s._-]*(\d+)(.*)$`),
		render: func(n string) ID { return ID("IC " + n) },
	},
	{
		re:     regexp.MustCompile(`^(?i)(?:SHARPLESS|SH)[\s._-]*2[\s._-]*(\d+)(.*)$`),
		render: func(n string) ID { return ID("SH 2-" + n) },
	},
	{
		re:     regexp.MustCompile(`^(?i)(?:CALDWELL|C)[\s._-]*(\d+)(.*)$`),
		render: func(n string) ID { return ID("C " + n) },
	},
	{
		re:     regexp.MustCompile(`^(?i)(?:VAN[\s._-]*DEN[\s._-]*BERGH|VDB)[\s._-]*(\d+)(.*)$`),
		render: func(n string) ID { return ID("VdB " + n) },
	},
}

// Classify matches name against the catalog patterns in priority order.
// It depends only on the name, never on filesystem content, so the same
// input always yields the same Match.
func Classify(name string) Match {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		return Match{
			Designation: p.render(normalizeNumber(m[1])),
			Description: trimDescription(m[2]),
			OK:          true,
		}
	}
	return Match{}
}

// Designation returns the normalized catalog id for name, if any.
func Designation(name string) (ID, bool) {
	m := Classify(name)
	return m.Designation, m.OK
}

// Description returns the descriptive suffix of name after the catalog
// designation is stripped. It is empty when the name carries no suffix
// or matches no catalog pattern.
func Description(name string) string {
	return Classify(name).Description
}

// normalizeNumber strips leading zeros so "M042" and "M 42" classify
// identically.
func normalizeNumber(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// trimDescription drops the separator run between the designation and the
// descriptive text, preserving the text's own casing and spacing.
func trimDescription(s string) string {
	return strings.TrimLeft(s, " \t._-")
}
