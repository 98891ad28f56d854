package service

import (
	"strings"
	"unicode"

	"github.com/example/platterflow/pkg/apperr"
)

// Credential policy bounds. The password cap matches bcrypt's input limit.
const (
	usernameMinLen = 6
	usernameMaxLen = 50
	passwordMinLen = 6
	passwordMaxLen = 72
)

func validateUsername(username string) error {
	if len(username) < usernameMinLen {
		return apperr.Field("username", "username must be at least 6 characters")
	}
	if len(username) > usernameMaxLen {
		return apperr.Field("username", "username must be at most 50 characters")
	}
	if !strings.Contains(username, "@") {
		return apperr.Field("username", "username must contain @")
	}
	if strings.ContainsAny(username, " \t") {
		return apperr.Field("username", "username must not contain spaces")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < passwordMinLen {
		return apperr.Field("password", "password must be at least 6 characters")
	}
	if len(password) > passwordMaxLen {
		return apperr.Field("password", "password must be at most 72 characters")
	}
	if strings.ContainsAny(password, " \t") {
		return apperr.Field("password", "password must not contain spaces")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return apperr.Field("password", "password must contain an upper case letter")
	}
	if !hasLower {
		return apperr.Field("password", "password must contain a lower case letter")
	}
	if !hasDigit {
		return apperr.Field("password", "password must contain a digit")
	}
	return nil
}
