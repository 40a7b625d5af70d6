// Package render fills {placeholder} tokens in a template body with
// user-supplied values.
//
// A placeholder is a '{', followed by any text up to the next '}'. The text
// between the braces is trimmed to form the variable name. Empty placeholders
// ("{}" or "{ }") and an unclosed '{' are kept as literal text.
package render

import (
	"fmt"
	"strings"
)

// MissingVariableError reports placeholders in a body that had no supplied value.
type MissingVariableError struct {
	Names []string
}

func (e *MissingVariableError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("missing value for variable: %s", e.Names[0])
	}
	return fmt.Sprintf("missing values for variables: %s", strings.Join(e.Names, ", "))
}

// Token is one placeholder occurrence in a body.
type Token struct {
	Name  string // trimmed variable name
	Start int    // byte offset of '{'
	End   int    // byte offset just past '}'
}

// Scan returns every placeholder occurrence in body, in order.
func Scan(body string) []Token {
	var tokens []Token
	for i := 0; i < len(body); {
		open := strings.IndexByte(body[i:], '{')
		if open < 0 {
			break
		}
		open += i
		closing := strings.IndexByte(body[open+1:], '}')
		if closing < 0 {
			break
		}
		closing += open + 1

		name := strings.TrimSpace(body[open+1 : closing])
		if name != "" {
			tokens = append(tokens, Token{Name: name, Start: open, End: closing + 1})
		}
		i = closing + 1
	}
	return tokens
}

// Placeholders returns the distinct variable names used in body, in order of
// first appearance.
func Placeholders(body string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, tok := range Scan(body) {
		if _, ok := seen[tok.Name]; ok {
			continue
		}
		seen[tok.Name] = struct{}{}
		names = append(names, tok.Name)
	}
	return names
}

// Render substitutes every placeholder in body with values[name].
//
// Substitution is single-pass: inserted values are never scanned for
// placeholders. Values with no matching placeholder are ignored. If any
// placeholder lacks a value, Render returns a *MissingVariableError and no
// output.
func Render(body string, values map[string]string) (string, error) {
	tokens := Scan(body)

	var missing []string
	seen := make(map[string]struct{})
	for _, tok := range tokens {
		if _, ok := values[tok.Name]; ok {
			continue
		}
		if _, dup := seen[tok.Name]; dup {
			continue
		}
		seen[tok.Name] = struct{}{}
		missing = append(missing, tok.Name)
	}
	if len(missing) > 0 {
		return "", &MissingVariableError{Names: missing}
	}

	var b strings.Builder
	b.Grow(len(body))
	last := 0
	for _, tok := range tokens {
		b.WriteString(body[last:tok.Start])
		b.WriteString(values[tok.Name])
		last = tok.End
	}
	b.WriteString(body[last:])
	return b.String(), nil
}
