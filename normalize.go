package qisbn

import "strings"

var normalizer = strings.NewReplacer("-", "", " ", "", "X", "A")

/*
Normalize strips dashes and spaces, uppercases the input and maps the
ISBN-10 check character X onto the hexadecimal digit A (ten).
*/
func Normalize(raw string) string {
	return normalizer.Replace(strings.ToUpper(raw))
}
