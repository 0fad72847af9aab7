package tokenize

import "errors"

var (
	ErrMissingSecret     = errors.New("tokenize: missing secret key")
	ErrInvalidAccountID  = errors.New("tokenize: account id is empty or not valid UTF-8")
	ErrMalformedToken    = errors.New("tokenize: malformed token")
	ErrPrefixMismatch    = errors.New("tokenize: token prefix doesn't match")
	ErrSignatureMismatch = errors.New("tokenize: token signature doesn't match")
	ErrUnknownAccount    = errors.New("tokenize: no account is tied to this id")
	ErrTokenInvalidated  = errors.New("tokenize: token was invalidated")
	ErrMissingToken      = errors.New("tokenize: missing auth token")
)
