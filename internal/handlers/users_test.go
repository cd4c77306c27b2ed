package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernameLengthCountsRunes(t *testing.T) {
	tests := []struct {
		name     string
		username string
		ok       bool
	}{
		{"too short", "ab", false},
		{"minimum", "ali", true},
		{"thirty ascii", strings.Repeat("a", 30), true},
		{"thirty-one ascii", strings.Repeat("a", 31), false},
		{"thirty turkish runes", strings.Repeat("ş", 30), true},
		{"thirty-one turkish runes", strings.Repeat("ş", 31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, usernameLengthOK(tt.username))
		})
	}
}

func TestPasswordLengthCountsRunes(t *testing.T) {
	assert.False(t, passwordLengthOK("kısa"))
	assert.True(t, passwordLengthOK("şifreم"))
	assert.True(t, passwordLengthOK("123456"))
	assert.False(t, passwordLengthOK("12345"))
}
