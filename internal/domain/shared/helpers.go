package shared

import (
	"strings"
)

// NormalizeName normaliza um nome de exibição: espaços colapsados e cada
// palavra com inicial maiúscula.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	words := strings.Fields(name)
	normalized := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) > 0 {
			if len(word) == 1 {
				normalized = append(normalized, strings.ToUpper(word))
			} else {
				normalized = append(normalized, strings.ToUpper(string(word[0]))+strings.ToLower(word[1:]))
			}
		}
	}
	return strings.Join(normalized, " ")
}
