package template

import (
	"strings"

	"github.com/joeblew999/plat-respond/internal/types"
	tmpl "github.com/joeblew999/plat-respond/pkg/template"
)

func toSummary(info tmpl.Info, t *tmpl.Template) types.TemplateSummary {
	return types.TemplateSummary{
		Filename:    info.Filename,
		User:        info.User,
		Skill:       info.Skill,
		ShortName:   info.ShortName,
		Name:        t.Name,
		Description: t.Description,
		Label:       t.Label(),
		Variables:   nonNil(t.Variables),
	}
}

func toDetail(filename string, t *tmpl.Template) *types.TemplateDetail {
	div := t.Divergence()
	return &types.TemplateDetail{
		TemplateSummary: toSummary(tmpl.ParseFilename(filename), t),
		Body:            t.Body,
		Placeholders:    nonNil(t.Placeholders()),
		Undeclared:      div.Undeclared,
		Unused:          div.Unused,
		Warning:         div.String(),
	}
}

// splitFacet parses a comma-separated facet parameter. An absent parameter
// selects everything.
func splitFacet(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return tmpl.ParseVariableList(s)
}

// variablesOrDetected keeps explicitly sent variables, falling back to the
// placeholders found in body.
func variablesOrDetected(vars []string, body string) string {
	if vars == nil {
		vars = tmpl.DetectVariables(body)
	}
	return tmpl.FormatVariableList(vars)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
