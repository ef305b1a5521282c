package service_test

import (
	"math"
	"strings"
	"testing"

	"github.com/godilite/team-summary/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestParseLeadingInt(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{name: "plain integer", input: "60", want: 60, ok: true},
		{name: "leading whitespace", input: "  \t42", want: 42, ok: true},
		{name: "trailing garbage", input: "12abc", want: 12, ok: true},
		{name: "decimal is truncated", input: "12.9", want: 12, ok: true},
		{name: "exponent is ignored", input: "1e3", want: 1, ok: true},
		{name: "negative", input: "-5", want: -5, ok: true},
		{name: "explicit plus", input: "+7", want: 7, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "letters first", input: "abc12", ok: false},
		{name: "sign only", input: "-", ok: false},
		{name: "space between sign and digits", input: "- 5", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := service.ParseLeadingInt(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			} else {
				assert.True(t, math.IsNaN(got))
			}
		})
	}
}

func TestParseLeadingInt_HugeValue(t *testing.T) {
	got, ok := service.ParseLeadingInt("1" + strings.Repeat("0", 400))
	assert.True(t, ok)
	assert.True(t, math.IsInf(got, 1))
}
