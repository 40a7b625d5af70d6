package template

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectVariables(t *testing.T) {
	body := "Hi {name},\nyour { item } ships {date}. Thanks {name}! {} {"
	assert.Equal(t, []string{"name", "item", "date"}, DetectVariables(body))
}

func TestParseVariableList(t *testing.T) {
	assert.Equal(t, []string{"name", "item", "date"}, ParseVariableList(" name, item ,,date, "))
	assert.Equal(t, []string{}, ParseVariableList(""))
	assert.Equal(t, "name, item", FormatVariableList([]string{"name", "item"}))
}

func TestVariableLabel(t *testing.T) {
	assert.Equal(t, "First name", VariableLabel("first_name"))
	assert.Equal(t, "Order id", VariableLabel("ORDER_ID"))
	assert.Equal(t, "", VariableLabel(""))
}

func TestDraftValidateNew(t *testing.T) {
	err := Draft{}.ValidateNew()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"name", "body", "description"}, verr.Fields)
	assert.Equal(t, "Template name is required. Email body is required. Short description is required.", err.Error())

	ok := Draft{Name: "a_b_c", Body: "x", Description: "y"}
	assert.NoError(t, ok.ValidateNew())
}

func TestDraftValidateEdit(t *testing.T) {
	assert.NoError(t, Draft{Body: "x", Description: "y"}.ValidateEdit())

	err := Draft{Name: "ignored", Body: "   "}.ValidateEdit()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"body", "description"}, verr.Fields)
}

func TestDraftTemplate(t *testing.T) {
	d := Draft{
		Name:        "  sam_billing_late ",
		Description: " Late invoice ",
		Body:        "  Hi {name}  ",
		Variables:   "name, , extra",
	}
	got := d.Template()
	assert.Equal(t, &Template{
		Name:        "sam_billing_late",
		Body:        "  Hi {name}  ",
		Variables:   []string{"name", "extra"},
		Description: "Late invoice",
	}, got)
}
