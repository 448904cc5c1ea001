package utils

import "strings"

// Canonicalize normaliza um segmento de URL para matching: minúsculas e
// espaços internos colapsados em um.
func Canonicalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
