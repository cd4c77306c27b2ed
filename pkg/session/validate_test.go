package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegistration(t *testing.T) {
	cases := []struct {
		name     string
		username string
		email    string
		password string
		want     error
	}{
		{"valid", "deniz", "deniz@gmail.com", "123456", nil},
		{"short username", "ab", "deniz@gmail.com", "123456", ErrUsernameLength},
		{"long username", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "deniz@gmail.com", "123456", ErrUsernameLength},
		{"short password", "deniz", "deniz@gmail.com", "12345", ErrPasswordLength},
		{"not gmail", "deniz", "deniz@hotmail.com", "123456", ErrNotGmail},
		{"gmail uppercase", "deniz", "Deniz@GMAIL.com", "123456", nil},
		{"no at sign", "deniz", "deniz.gmail.com", "123456", ErrInvalidEmail},
		{"empty email", "deniz", "", "123456", ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegistration(tc.username, tc.email, tc.password)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
