package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	testCases := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"20", 20},
		{"  7 ", 7},
		{"15abc", 15},
		{"3.9", 3},
		{"-4", -4},
		{"+12", 12},
		{"000", 0},
		{"99999999999999999999", 999999999},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, parseLimit(tc.raw))
		})
	}
}

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"https://dashboard.example"}

	assert.True(t, originAllowed(allowed, "https://dashboard.example"))
	assert.True(t, originAllowed(allowed, "http://localhost:8080"))
	assert.True(t, originAllowed(allowed, "http://127.0.0.1:4173"))
	assert.False(t, originAllowed(allowed, "https://localhost"))
	assert.False(t, originAllowed(allowed, "https://evil.example"))
}
