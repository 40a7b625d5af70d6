package template

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/joeblew999/plat-respond/pkg/render"
)

// DetectVariables returns the distinct placeholder names in body, in order
// of first appearance.
func DetectVariables(body string) []string {
	return render.Placeholders(body)
}

// ParseVariableList parses the comma-separated variables field.
func ParseVariableList(s string) []string {
	vars := []string{}
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			vars = append(vars, v)
		}
	}
	return vars
}

// FormatVariableList is the inverse of ParseVariableList.
func FormatVariableList(vars []string) string {
	return strings.Join(vars, ", ")
}

// VariableLabel turns a variable name into an input label:
// "first_name" becomes "First name".
func VariableLabel(name string) string {
	s := strings.ToLower(strings.ReplaceAll(name, "_", " "))
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
