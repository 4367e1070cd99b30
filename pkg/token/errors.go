package token

import "errors"

var (
	ErrMissingSecret = errors.New("token: missing signing secret")
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: token is expired")
)
