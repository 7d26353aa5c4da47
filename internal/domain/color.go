package domain

import (
	"regexp"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{3}([0-9a-fA-F]{3})?$`)

// NamedColors is the set of color names accepted in place of a hex triplet
var NamedColors = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white", "gray",
}

// IsHexColor reports whether s is "#" followed by 3 or 6 hex digits
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// IsNamedColor reports whether s is one of NamedColors, ignoring case
func IsNamedColor(s string) bool {
	lower := strings.ToLower(s)
	for _, name := range NamedColors {
		if lower == name {
			return true
		}
	}
	return false
}

// IsValidColor reports whether s is accepted as a days-lived color
func IsValidColor(s string) bool {
	return IsHexColor(s) || IsNamedColor(s)
}

// ExpandHex turns a 3-digit "#abc" into its 6-digit "#aabbcc" form.
// Any other input is returned unchanged.
func ExpandHex(s string) string {
	if len(s) != 4 || !IsHexColor(s) {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}
