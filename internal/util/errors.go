package util

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("token is missing")
	ErrInvalidToken       = errors.New("token is invalid")
)
