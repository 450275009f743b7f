package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("incorrect phone number or password")
	ErrInvalidToken       = errors.New("invalid or missing access token")
)
