package session

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Registration rules checked before any network call. The messages are
// user-facing, matching what the backend would answer.
var (
	ErrUsernameLength = errors.New("Kullanıcı adı 3-30 karakter olmalıdır")
	ErrPasswordLength = errors.New("Şifre en az 6 karakter olmalıdır")
	ErrInvalidEmail   = errors.New("Geçerli bir email adresi girin")
	ErrNotGmail       = errors.New("Sadece Gmail adresleri kabul edilir (@gmail.com)")
)

// ValidateRegistration applies the client-side registration rules:
// username 3-30 characters, password at least 6, and Gmail-only
// addresses.
func ValidateRegistration(username, email, password string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(username)); n < 3 || n > 30 {
		return ErrUsernameLength
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if utf8.RuneCountInString(password) < 6 {
		return ErrPasswordLength
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	if !strings.HasSuffix(email, "@gmail.com") {
		return ErrNotGmail
	}
	return nil
}
