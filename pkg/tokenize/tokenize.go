package tokenize

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Wire-format constants. They must match across implementations for tokens
// to interoperate, so no mutation is exposed.
const (
	// Version is the protocol version baked into every signature.
	Version = 1

	// Epoch is the token time origin, 2019-01-01T00:00:00Z in milliseconds
	// since the Unix epoch. Issue times are counted in seconds from here.
	Epoch int64 = 1546300800000
)

// signedPrefix domain-separates MAC input from raw token bytes ("TTF.1.").
var signedPrefix = "TTF." + strconv.Itoa(Version) + "."

// Tokenize generates and validates signed authentication tokens using
// HMAC-SHA256. Configuration is immutable after construction, so a single
// instance is safe for concurrent use.
type Tokenize struct {
	secret []byte
	prefix string
}

// New creates a token signer with the provided secret key.
// The key should be at least 32 bytes for adequate security with HMAC-SHA256.
func New(secret []byte) (*Tokenize, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}

	return &Tokenize{secret: secret}, nil
}

// NewFromString creates a token signer from a string secret key.
// Convenience wrapper around New() for string-based configuration.
func NewFromString(secret string) (*Tokenize, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	return &Tokenize{secret: []byte(secret)}, nil
}

// WithPrefix returns a copy of the signer that prepends the given literal
// prefix as the first token segment and requires it during validation.
// The receiver is never mutated. The prefix must not contain a dot.
func (t *Tokenize) WithPrefix(prefix string) *Tokenize {
	clone := *t
	clone.prefix = prefix
	return &clone
}

// Generate creates a signed token for the given account id, stamped with the
// current token time. The account id travels base64-encoded but unencrypted,
// so it is visible to anyone holding the token.
func (t *Tokenize) Generate(accountID string) (string, error) {
	if accountID == "" || !utf8.ValidString(accountID) {
		return "", ErrInvalidAccountID
	}

	unsigned := buildUnsigned(t.prefix, accountID, CurrentTokenTime())
	return unsigned + segmentSeparator + t.sign(unsigned), nil
}

// Validate verifies a token and resolves the account it was issued for.
// Checks run in a fixed order, terminal on first failure: segment count,
// prefix, signature, payload decoding, account lookup, freshness against
// the account's last token reset. The signature is verified before any
// decoded field is trusted, and the comparison is constant-time.
func (t *Tokenize) Validate(ctx context.Context, token string, lookup AccountLookupFunc) (Account, error) {
	segments := splitToken(token)

	expectedLen := 3
	if t.prefix != "" {
		expectedLen = 4
	}
	if len(segments) < 3 || len(segments) > expectedLen {
		return nil, ErrMalformedToken
	}

	if t.prefix != "" {
		if segments[0] != t.prefix {
			return nil, ErrPrefixMismatch
		}
		// A matching prefix with no signature segment left.
		if len(segments) != expectedLen {
			return nil, ErrMalformedToken
		}
	}

	sigIdx := expectedLen - 1
	unsigned := strings.Join(segments[:sigIdx], segmentSeparator)
	expected := t.sign(unsigned)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(segments[sigIdx])) != 1 {
		return nil, ErrSignatureMismatch
	}

	rawAccountID, err := decodeSegment(segments[sigIdx-2])
	if err != nil || !utf8.Valid(rawAccountID) {
		return nil, ErrMalformedToken
	}

	rawIssueTime, err := decodeSegment(segments[sigIdx-1])
	if err != nil {
		return nil, ErrMalformedToken
	}
	issueTime, err := strconv.ParseInt(string(rawIssueTime), 10, 64)
	if err != nil || issueTime < 0 {
		return nil, ErrMalformedToken
	}

	account, err := lookup(ctx, string(rawAccountID))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrUnknownAccount
	}

	if account.LastTokenReset() > issueTime*1000+Epoch {
		return nil, ErrTokenInvalidated
	}

	return account, nil
}

// CurrentTokenTime returns the current issue-time value: whole seconds
// elapsed since Epoch. Exposed for callers building their own freshness
// policies on top of Validate.
func CurrentTokenTime() int64 {
	return (time.Now().UnixMilli() - Epoch) / 1000
}

// sign computes the base64-encoded HMAC-SHA256 over the versioned signed
// message for the pre-signature part of a token.
func (t *Tokenize) sign(unsigned string) string {
	mac := hmac.New(sha256.New, t.secret)
	mac.Write([]byte(signedPrefix + unsigned))
	return encodeSegment(mac.Sum(nil))
}
