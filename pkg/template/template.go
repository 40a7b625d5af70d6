// Package template defines the stored email template document and the
// helpers the UI, API and CLI share around it: filename conventions,
// variable detection, list filters and form validation.
package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/joeblew999/plat-respond/pkg/render"
)

// Template is an email body with declared placeholder variables.
// Its identity is the filename it is stored under, not Name.
type Template struct {
	Name        string   `json:"name"`
	Body        string   `json:"body"`
	Variables   []string `json:"variables"`
	Description string   `json:"description"`
}

// Label is the display label used by template pickers.
func (t *Template) Label() string {
	desc := t.Description
	if desc == "" {
		desc = "No description"
	}
	return fmt.Sprintf("%s (%s)", t.Name, desc)
}

// Placeholders returns the variable names used in the body.
func (t *Template) Placeholders() []string {
	return render.Placeholders(t.Body)
}

// Inputs returns the declared variables with repeats and blanks removed,
// in declaration order. It is the set of inputs a form shows.
func (t *Template) Inputs() []string {
	inputs := make([]string, 0, len(t.Variables))
	for _, v := range t.Variables {
		if v != "" && !slices.Contains(inputs, v) {
			inputs = append(inputs, v)
		}
	}
	return inputs
}

// Render fills the body with values.
func (t *Template) Render(values map[string]string) (string, error) {
	return render.Render(t.Body, values)
}

// Divergence describes where the declared variables and the body's
// placeholders disagree. Neither side is treated as authoritative.
type Divergence struct {
	Undeclared []string `json:"undeclared,omitempty"` // in body, not declared
	Unused     []string `json:"unused,omitempty"`     // declared, not in body
}

// Empty reports whether declared variables and placeholders agree.
func (d Divergence) Empty() bool {
	return len(d.Undeclared) == 0 && len(d.Unused) == 0
}

// String renders the divergence as a user-facing warning.
func (d Divergence) String() string {
	var buf bytes.Buffer
	if len(d.Undeclared) > 0 {
		fmt.Fprintf(&buf, "placeholders without an input: %s", FormatVariableList(d.Undeclared))
	}
	if len(d.Unused) > 0 {
		if buf.Len() > 0 {
			buf.WriteString("; ")
		}
		fmt.Fprintf(&buf, "declared variables not used in the body: %s", FormatVariableList(d.Unused))
	}
	return buf.String()
}

// Divergence compares Variables against the placeholders in Body.
func (t *Template) Divergence() Divergence {
	placeholders := t.Placeholders()

	var d Divergence
	for _, p := range placeholders {
		if !slices.Contains(t.Variables, p) {
			d.Undeclared = append(d.Undeclared, p)
		}
	}
	for _, v := range t.Variables {
		if !slices.Contains(placeholders, v) {
			d.Unused = append(d.Unused, v)
		}
	}
	return d
}

// Marshal encodes t as the persisted document: UTF-8 JSON with a two-space
// indent and no HTML escaping.
func Marshal(t *Template) ([]byte, error) {
	doc := *t
	if doc.Variables == nil {
		doc.Variables = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes a persisted document.
func Unmarshal(data []byte) (*Template, error) {
	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if t.Variables == nil {
		t.Variables = []string{}
	}
	return &t, nil
}
