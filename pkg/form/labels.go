package form

import (
	"strings"
	"unicode"
)

// DefaultLabeler turns a field name into a sentence-case label:
// "column_type" and "columnType" both become "Column type", "xs_col" becomes
// "Xs col".
func DefaultLabeler(name string) string {
	var words []string
	for _, part := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	}) {
		words = append(words, camelWords(part)...)
	}
	if len(words) == 0 {
		return ""
	}
	label := []rune(strings.ToLower(strings.Join(words, " ")))
	label[0] = unicode.ToUpper(label[0])
	return string(label)
}

// camelWords splits "rowCols2" into "row", "Cols", "2".
func camelWords(s string) []string {
	runes := []rune(s)
	var words []string
	begin := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		lowerToUpper := unicode.IsLower(prev) && unicode.IsUpper(cur)
		letterDigit := unicode.IsLetter(prev) != unicode.IsLetter(cur) &&
			(unicode.IsDigit(prev) || unicode.IsDigit(cur))
		if lowerToUpper || letterDigit {
			words = append(words, string(runes[begin:i]))
			begin = i
		}
	}
	return append(words, string(runes[begin:]))
}
