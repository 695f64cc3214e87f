package utils

import (
	"strings"
	"unicode"
)

var forbiddenStatements = map[string]struct{}{
	"DROP":     {},
	"DELETE":   {},
	"UPDATE":   {},
	"ALTER":    {},
	"TRUNCATE": {},
	"INSERT":   {},
}

// ValidateSQL reports whether query is free of data-modifying statements.
// Keywords are matched as whole words regardless of case.
func ValidateSQL(query string) bool {
	if strings.TrimSpace(query) == "" {
		return false
	}
	words := strings.FieldsFunc(query, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	for _, word := range words {
		if _, ok := forbiddenStatements[strings.ToUpper(word)]; ok {
			return false
		}
	}
	return true
}
