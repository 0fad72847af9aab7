package accountstore

import (
	"context"
	"time"

	"github.com/dmitrymomot/tokenize/pkg/tokenize"
)

// Store is the common surface of the account backends in this package.
// Lookup deliberately matches tokenize.AccountLookupFunc so any Store can be
// handed to the verifier as a method value.
type Store interface {
	// Lookup resolves an account id to its record. A missing account is
	// reported as (nil, nil), never as an error.
	Lookup(ctx context.Context, accountID string) (tokenize.Account, error)

	// Invalidate bumps the account's last token reset to the given moment,
	// revoking every token issued before it. Returns ErrAccountNotFound for
	// unknown ids.
	Invalidate(ctx context.Context, accountID string, at time.Time) error

	// Delete removes the account record. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, accountID string) error
}

// StoredAccount is the persisted shape shared by the backends. It carries
// only what token validation needs.
type StoredAccount struct {
	ID         string // account identifier, the value embedded in tokens
	TokenReset int64  // last token reset, milliseconds since the Unix epoch
}

// LastTokenReset implements tokenize.Account.
func (a StoredAccount) LastTokenReset() int64 {
	return a.TokenReset
}
