package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// RemoveSpaces drops every whitespace rune, e.g. the grouping spaces people
// type into phone and ID numbers.
func RemoveSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Narrow folds full-width forms to their ASCII counterparts, so input typed
// with a CJK keyboard ("１３８００１３８０００", "ａｂｃ＠ｅｘａｍｐｌｅ．ｃｏｍ")
// matches the ASCII formats. Ideographs are left unchanged.
func Narrow(s string) string {
	return width.Narrow.String(s)
}
