// Package textinput normalizes free-typed contact fields into their
// canonical display form. Both functions are total and idempotent: any
// input, including already-normalized values, yields a well-formed result.
package textinput

import "strings"

const (
	phonePrefix = "+998"
	phoneDigits = 9
	handleMark  = "@"
)

// phone digit groups after the prefix: 3-2-2-2, separated by dots.
var phoneGroups = []int{3, 2, 2, 2}

// Phone normalizes a raw phone input. The result always starts with the
// country-code prefix; non-digits after it are discarded; at most nine
// further digits are kept and grouped as they accumulate, so partial input
// yields a partial grouped prefix.
func Phone(raw string) string {
	rest := raw
	if strings.HasPrefix(rest, phonePrefix) {
		rest = rest[len(phonePrefix):]
	}

	var digits strings.Builder
	for _, r := range rest {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == phoneDigits {
				break
			}
		}
	}

	var out strings.Builder
	out.WriteString(phonePrefix)
	remaining := digits.String()
	for i, size := range phoneGroups {
		if remaining == "" {
			break
		}
		if i > 0 {
			out.WriteString(".")
		}
		if len(remaining) < size {
			size = len(remaining)
		}
		out.WriteString(remaining[:size])
		remaining = remaining[size:]
	}

	return out.String()
}

// PhoneComplete reports whether formatted carries all nine digits.
func PhoneComplete(formatted string) bool {
	var n int
	for _, r := range formatted {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return strings.HasPrefix(formatted, phonePrefix) && n == len(phonePrefix)-1+phoneDigits
}

// Handle normalizes a telegram handle: exactly one leading marker, reinserted
// if the user deleted it, duplicates collapsed.
func Handle(raw string) string {
	return handleMark + strings.ReplaceAll(raw, handleMark, "")
}
