package signature

import "regexp"

var ordinalPattern = regexp.MustCompile(`(?i)(\d+)(st|nd|rd|th)`)

// SuperscriptOrdinals wraps ordinal suffixes in <sup> tags so "13th
// Avenue" typesets as street addresses conventionally do. Applied once
// to the address line regardless of format.
func SuperscriptOrdinals(s string) string {
	return ordinalPattern.ReplaceAllString(s, "$1<sup>$2</sup>")
}
