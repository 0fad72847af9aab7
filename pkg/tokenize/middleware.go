package tokenize

import (
	"net/http"
	"strings"
)

// TokenExtractorFunc defines a function that extracts a token from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// SkipFunc defines a function that determines whether to skip token validation for a request.
type SkipFunc func(r *http.Request) bool

// MiddlewareConfig configures token middleware behavior.
type MiddlewareConfig struct {
	Signer    *Tokenize          // Token signer used for validation
	Lookup    AccountLookupFunc  // Account resolver invoked after signature verification
	Extractor TokenExtractorFunc // Token extraction strategy (defaults to Bearer)
	Skip      SkipFunc           // Optional request filter to bypass validation
}

// Middleware creates token middleware with default Bearer token extraction.
// Validates tokens and injects the raw token and resolved account into the
// request context for downstream handlers.
func Middleware(signer *Tokenize, lookup AccountLookupFunc) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{
		Signer:    signer,
		Lookup:    lookup,
		Extractor: BearerTokenExtractor,
	})
}

// MiddlewareWithConfig creates token middleware with custom configuration.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.Extractor == nil {
		config.Extractor = BearerTokenExtractor
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			token, err := config.Extractor(r)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			account, err := config.Signer.Validate(r.Context(), token, config.Lookup)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			ctx = SetToken(ctx, token)
			ctx = SetAccount(ctx, account)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerTokenExtractor extracts tokens from "Authorization: Bearer <token>" headers.
// This is the most common bearer token transport per RFC 6750.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrMissingToken
	}

	return parts[1], nil
}

// CookieTokenExtractor creates a token extractor for cookie-based transport.
// Useful for browser applications where Authorization headers aren't practical.
func CookieTokenExtractor(cookieName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil {
			return "", ErrMissingToken
		}
		return cookie.Value, nil
	}
}

// HeaderTokenExtractor creates a token extractor for custom headers.
// Useful for APIs that use non-standard header names for token transport.
func HeaderTokenExtractor(headerName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(headerName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// QueryTokenExtractor creates a token extractor for URL query parameters.
// Generally discouraged due to token exposure in logs and referrer headers.
// Callers must percent-encode the token value: the standard base64 alphabet
// includes '+' and '/', and an unescaped '+' decodes as a space.
func QueryTokenExtractor(paramName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.URL.Query().Get(paramName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}
