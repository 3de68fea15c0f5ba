// Package strings provides string utilities shared by registrar adapters.
package strings

import (
	"strings"
)

// NormalizeLabels lowercases DNS labels such as TLDs, trims whitespace and a
// leading dot, then drops empties and duplicates. Order is preserved.
//
// Example:
//
//	NormalizeLabels([]string{" .COM", "fr", "com", ""})
//	// Returns: []string{"com", "fr"}
func NormalizeLabels(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		label := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(v), "."))
		if label == "" {
			continue
		}
		if _, ok := seen[label]; !ok {
			seen[label] = struct{}{}
			result = append(result, label)
		}
	}

	return result
}
