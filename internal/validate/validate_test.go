package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2024-02-29", true}, // leap year
		{"2023-02-29", false},
		{"2024-02-30", false},
		{"2024-12-01", true},
		{"2024-13-01", false},
		{"2024-00-10", false},
		{"2024-01-00", false},
		{"2024-1-01", false}, // wrong digit count
		{"24-01-01", false},
		{"2024/01/01", false}, // wrong separators
		{"20240101", false},
		{"2024-01-01 ", false},
		{" 2024-01-01", false},
		{"0001-01-01", true},
		{"", false},
		{"not-a-date", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidDate(tc.in), "IsValidDate(%q)", tc.in)
	}
}

func TestIsValidQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"12", true},
		{"007", true},
		{"0", false},
		{"-5", false},
		{"+5", false},
		{"3.5", false},
		{"abc", false},
		{"", false},
		{" 5", false},
		{"5 ", false},
		{"99999999999999999999999", false}, // overflows int
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidQuantity(tc.in), "IsValidQuantity(%q)", tc.in)
	}
}
