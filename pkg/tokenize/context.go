package tokenize

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

// String returns the name of the context key.
func (c contextKey) String() string { return c.name }

var (
	tokenContextKey   = &contextKey{name: "tokenize"}         // raw token string
	accountContextKey = &contextKey{name: "tokenize_account"} // resolved account
)

// SetToken sets the raw token string in the context.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// TokenFromContext returns the raw token string from the context.
// The second return value is false when no token is present.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// SetAccount sets the resolved account in the context.
func SetAccount(ctx context.Context, account Account) context.Context {
	return context.WithValue(ctx, accountContextKey, account)
}

// AccountFromContext returns the resolved account from the context.
// The second return value is false when no account is present.
func AccountFromContext(ctx context.Context) (Account, bool) {
	account, ok := ctx.Value(accountContextKey).(Account)
	return account, ok
}
