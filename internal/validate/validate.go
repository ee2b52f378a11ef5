// Package validate holds the input checks for the lead form fields.
package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MinNameLen is the minimum accepted name length in runes.
	MinNameLen = 2
	// MinPhoneDigits is the minimum number of digits a phone must contain.
	MinPhoneDigits = 10
	// MinDescriptionLen is the minimum accepted description length in runes.
	MinDescriptionLen = 10
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Phone reports whether the string contains at least MinPhoneDigits digits.
// Formatting characters (+, spaces, dashes, parentheses) are ignored.
func Phone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= MinPhoneDigits
}

// Email reports whether the trimmed string looks like text@text.tld.
func Email(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// Name reports whether the trimmed name has at least MinNameLen runes.
func Name(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= MinNameLen
}

// Description reports whether the trimmed description has at least
// MinDescriptionLen runes.
func Description(description string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(description)) >= MinDescriptionLen
}
