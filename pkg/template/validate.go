package template

import (
	"strings"
)

// ValidationError lists required form fields left blank.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fieldMessage(f))
	}
	return strings.Join(msgs, " ")
}

func fieldMessage(field string) string {
	switch field {
	case "name":
		return "Template name is required."
	case "body":
		return "Email body is required."
	case "description":
		return "Short description is required."
	default:
		return field + " is required."
	}
}

// Draft is a template as entered in the add/edit forms.
type Draft struct {
	Name        string
	Description string
	Body        string
	Variables   string // comma-separated, as typed
}

// ValidateNew checks a draft for a new template: name, body and
// description are required, reported in that order.
func (d Draft) ValidateNew() error {
	return d.validate(true)
}

// ValidateEdit checks a draft for an existing template; the name is fixed
// by the filename so only body and description are required.
func (d Draft) ValidateEdit() error {
	return d.validate(false)
}

func (d Draft) validate(requireName bool) error {
	var missing []string
	if requireName && strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Body) == "" {
		missing = append(missing, "body")
	}
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Template builds the document to store. The body is kept verbatim; name
// and description are trimmed.
func (d Draft) Template() *Template {
	return &Template{
		Name:        strings.TrimSpace(d.Name),
		Body:        d.Body,
		Variables:   ParseVariableList(d.Variables),
		Description: strings.TrimSpace(d.Description),
	}
}
