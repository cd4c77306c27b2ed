package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	valid := RegisterInput{Username: "deniz", Email: "deniz@gmail.com", Password: "123456"}

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
		want   error
	}{
		{"valid", func(*RegisterInput) {}, nil},
		{"short username", func(in *RegisterInput) { in.Username = "ab" }, ErrUsernameLength},
		{"long username", func(in *RegisterInput) {
			in.Username = "uzuuuuuuuuuuuuuuuuuuuuuuun-isim-x"
		}, ErrUsernameLength},
		{"non gmail", func(in *RegisterInput) { in.Email = "deniz@outlook.com" }, ErrOnlyGmail},
		{"short password", func(in *RegisterInput) { in.Password = "12345" }, ErrPasswordLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)

			err := validateRegister(input)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
