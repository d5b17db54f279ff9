package tasks

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeText cleans raw task text: surrounding whitespace is trimmed,
// the first letter is upper-cased, and a period is appended unless the
// text already ends in '.', '!' or '?'.
func NormalizeText(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", validationf("task text is empty")
	}

	first, size := utf8.DecodeRuneInString(cleaned)
	capitalized := string(unicode.ToUpper(first)) + cleaned[size:]

	switch {
	case strings.HasSuffix(capitalized, "."),
		strings.HasSuffix(capitalized, "!"),
		strings.HasSuffix(capitalized, "?"):
		return capitalized, nil
	}
	return capitalized + ".", nil
}
