package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     Info
	}{
		{
			filename: "tirshiva_ILAC_reimbursement.json",
			want:     Info{Filename: "tirshiva_ILAC_reimbursement.json", User: "tirshiva", Skill: "ILAC", ShortName: "reimbursement"},
		},
		{
			filename: "sam_billing_late_payment_v2.json",
			want:     Info{Filename: "sam_billing_late_payment_v2.json", User: "sam", Skill: "billing", ShortName: "late_payment_v2"},
		},
		{
			filename: "sam_billing.json",
			want:     Info{Filename: "sam_billing.json", User: "sam", Skill: "billing"},
		},
		{
			filename: "welcome.json",
			want:     Info{Filename: "welcome.json", User: Unknown, Skill: Unknown},
		},
		{
			filename: "a.b_c_d.json",
			want:     Info{Filename: "a.b_c_d.json", User: "a.b", Skill: "c", ShortName: "d"},
		},
		{
			filename: "noext_user_skill",
			want:     Info{Filename: "noext_user_skill", User: "noext", Skill: "user", ShortName: "skill"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFilename(tt.filename))
		})
	}
}

func TestFilenameFor(t *testing.T) {
	assert.Equal(t, "tirshiva_ilac_reimbursement.json", FilenameFor("  tirshiva_ILAC_reimbursement "))
	assert.Equal(t, "sam_billing_late_payment.json", FilenameFor("Sam billing Late payment"))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "sam_billing_late", Stem("sam_billing_late.json"))
	assert.Equal(t, "plain", Stem("plain"))
}

func TestIsTemplateFile(t *testing.T) {
	assert.True(t, IsTemplateFile("a_b_c.json"))
	assert.False(t, IsTemplateFile("a_b_c.txt"))
	assert.False(t, IsTemplateFile(".json"))
}
