package validation

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Position null.String `validate:"omitempty,position_code"`
	Interval string      `validate:"omitempty,duration_format"`
	Code     string      `validate:"omitempty,asset_code"`
}

func TestRules(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		in    sample
		valid bool
	}{
		{"empty", sample{}, true},
		{"known position", sample{Position: null.StringFrom("P.GĐ")}, true},
		{"position is case sensitive", sample{Position: null.StringFrom("qđ")}, false},
		{"unknown position", sample{Position: null.StringFrom("CEO")}, false},
		{"null position", sample{Position: null.String{}}, true},
		{"days", sample{Interval: "30d"}, true},
		{"mixed", sample{Interval: "1d12h"}, true},
		{"bad interval", sample{Interval: "month"}, false},
		{"code", sample{Code: "MN-01/A"}, true},
		{"code with space", sample{Code: "MN 01"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
