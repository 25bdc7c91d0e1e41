package validator

import (
	"regexp"
	"sync"
)

// patternSet holds every expression used by the format rules.
// It is built once on first use and never mutated afterwards, so it is shared
// by all goroutines without locking.
type patternSet struct {
	email    *regexp.Regexp
	phoneCN  *regexp.Regexp
	idCard18 *regexp.Regexp
	idCard15 *regexp.Regexp
	chinese  *regexp.Regexp
	english  *regexp.Regexp
	numeric  *regexp.Regexp
}

var patterns = sync.OnceValue(func() *patternSet {
	return &patternSet{
		// Local part is word characters optionally dot-segmented; the last domain label is letters only.
		email:   regexp.MustCompile(`^\s*\w+(?:\.?[\w-]+)*@[a-zA-Z0-9]+(?:[-.][a-zA-Z0-9]+)*\.[a-zA-Z]+\s*$`),
		phoneCN: regexp.MustCompile(`^(?:12|13|14|15|16|17|18|19)\d{9}$`),
		// region(6) century+year(4) month(2) day(2) sequence(3) check(1)
		idCard18: regexp.MustCompile(`^[1-9]\d{5}(?:18|19|20)\d{2}(?:0[1-9]|10|11|12)(?:[0-2][1-9]|10|20|30|31)\d{3}[0-9Xx]$`),
		// region(6) year(2) month(2) day(2) sequence(3)
		idCard15: regexp.MustCompile(`^[1-9]\d{5}\d{2}(?:0[1-9]|10|11|12)(?:[0-2][1-9]|10|20|30|31)\d{3}$`),
		chinese:  regexp.MustCompile(`^[\x{4e00}-\x{9fa5}]+$`),
		english:  regexp.MustCompile(`^[a-zA-Z]+$`),
		numeric:  regexp.MustCompile(`^[0-9]+$`),
	}
})
