// Package sanitizer holds small string normalizers and helpers to chain them.
//
// Normalizers are plain func(string) string values; Apply runs a value
// through a list of them and Compose stores such a list as one function:
//
//	normalize := sanitizer.Compose(sanitizer.Trim, sanitizer.RemoveSpaces)
//	normalize(" 138 0013 8000 ") // "13800138000"
//
// Narrow folds full-width characters to ASCII using golang.org/x/text/width.
package sanitizer
