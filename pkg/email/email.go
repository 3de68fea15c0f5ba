package email

import (
	"strings"
	"unicode"
)

// GreetingName derives a salutation from the local part of an address,
// e.g. "jane.doe@example.com" -> "Jane". Falls back to "there".
func GreetingName(address string) string {
	localPart := address
	if at := strings.IndexByte(address, '@'); at > 0 {
		localPart = address[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(parts) == 0 || strings.IndexByte(address, '@') == 0 {
		return "there"
	}

	return capitalize(parts[0])
}

// Normalize lowercases and trims an address for comparison.
func Normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func capitalize(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
