package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalFormat(t *testing.T) {
	tmpl := &Template{
		Name:        "tirshiva_ILAC_reimbursement",
		Body:        "Hi {name} <team>",
		Variables:   []string{"name"},
		Description: "Refund follow-up",
	}

	data, err := Marshal(tmpl)
	require.NoError(t, err)

	want := `{
  "name": "tirshiva_ILAC_reimbursement",
  "body": "Hi {name} <team>",
  "variables": [
    "name"
  ],
  "description": "Refund follow-up"
}`
	assert.Equal(t, want, string(data))
}

func TestMarshalNilVariables(t *testing.T) {
	data, err := Marshal(&Template{Name: "n", Body: "b", Description: "d"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"variables": []`)
}

func TestRoundTrip(t *testing.T) {
	orig := &Template{
		Name:        "sam_billing_late",
		Body:        "Dear {name},\n\nYour invoice {invoice} is late. — Ünïcode ok",
		Variables:   []string{"name", "invoice"},
		Description: "Late invoice nudge",
	}

	data, err := Marshal(orig)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestUnmarshalMissingFields(t *testing.T) {
	got, err := Unmarshal([]byte(`{"name": "x", "body": "y"}`))
	require.NoError(t, err)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, []string{}, got.Variables)
}

func TestUnmarshalInvalid(t *testing.T) {
	_, err := Unmarshal([]byte(`{"name": `))
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Refund (When a refund is late)",
		(&Template{Name: "Refund", Description: "When a refund is late"}).Label())
	assert.Equal(t, "Refund (No description)", (&Template{Name: "Refund"}).Label())
}

func TestDivergence(t *testing.T) {
	tmpl := &Template{
		Body:      "Hi {name}, your {item} ships {date}.",
		Variables: []string{"name", "item", "tracking"},
	}

	d := tmpl.Divergence()
	assert.False(t, d.Empty())
	assert.Equal(t, []string{"date"}, d.Undeclared)
	assert.Equal(t, []string{"tracking"}, d.Unused)
	assert.Equal(t,
		"placeholders without an input: date; declared variables not used in the body: tracking",
		d.String())

	aligned := &Template{Body: "{a} {b}", Variables: []string{"b", "a"}}
	assert.True(t, aligned.Divergence().Empty())
	assert.Equal(t, "", aligned.Divergence().String())
}

func TestTemplateRender(t *testing.T) {
	tmpl := &Template{Body: "Hi {name}"}
	out, err := tmpl.Render(map[string]string{"name": "Sam"})
	require.NoError(t, err)
	assert.Equal(t, "Hi Sam", out)

	_, err = tmpl.Render(nil)
	assert.Error(t, err)
}

func TestInputsDropRepeats(t *testing.T) {
	tmpl := &Template{Body: "Hi {name}", Variables: []string{"name", "", "date", "name"}}
	assert.Equal(t, []string{"name", "date"}, tmpl.Inputs())

	assert.Empty(t, (&Template{}).Inputs())
}
