package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-15", "2024-03-15", true},
		{"2024-03-15T10:30:00.000Z", "2024-03-15", true},
		{"2024-02-29", "2024-02-29", true},
		{"2023-02-29", "", false},
		{"2024-13-01", "", false},
		{"15-03-2024", "", false},
		{"notadate", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := parseDate(tc.in)
		assert.Equalf(t, tc.ok, ok, "parseDate(%q) ok", tc.in)
		assert.Equalf(t, tc.want, got, "parseDate(%q)", tc.in)
	}
}
