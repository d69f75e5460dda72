// Package formatters normalizes raw keystroke input into the
// canonical display strings the forms validate against.
package formatters

import "strings"

// Phone keeps digits only, then groups them as "DD NNNNN-NNNN":
// a space after the two-digit area code and a hyphen after the
// eighth character of the grouped string.
func Phone(raw string) string {
	digits := onlyDigits(raw)

	grouped := digits
	if len(digits) > 2 {
		grouped = digits[:2] + " " + digits[2:]
	}

	if len(grouped) > 8 {
		grouped = grouped[:8] + "-" + grouped[8:]
	}

	return grouped
}

// Registration strips everything that is not a digit.
func Registration(raw string) string {
	return onlyDigits(raw)
}

func onlyDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
