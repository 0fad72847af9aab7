package tokenize

import "context"

// Account is the minimal capability the verifier needs from the caller's
// account model. LastTokenReset reports the most recent moment, in
// milliseconds since the Unix epoch, at which all previously issued tokens
// for the account became invalid. Return zero to keep every token valid.
type Account interface {
	LastTokenReset() int64
}

// AccountLookupFunc resolves a decoded account id to the caller's account
// record. Returning a nil Account with a nil error means no account exists
// for the id; a non-nil error (e.g. a database failure) aborts validation
// and is returned to the caller as-is. The function may block; impose
// timeouts through ctx.
type AccountLookupFunc func(ctx context.Context, accountID string) (Account, error)
