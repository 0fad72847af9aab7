// Package tokenize implements a compact, stateless authentication-token
// scheme: HMAC-SHA256 signed bearer tokens that carry an account id and an
// issue time, without the weight of a full JWT stack. The algorithm and
// encoding are fixed, so tokens are smaller than JWTs and there is no
// algorithm negotiation surface to attack.
//
// Token format (unpadded standard base64, dot-separated):
//
//	[prefix.]base64(account_id).base64(issue_time).base64(signature)
//
// The signature is a full 32-byte HMAC-SHA256 over "TTF.1." plus the
// pre-signature part of the token. The issue time counts seconds since
// 2019-01-01T00:00:00Z. Tokens are signed, not encrypted: the account id
// and issue time are readable by anyone holding the token.
//
// Revocation works without a token store. Each account carries a
// "last token reset" timestamp; bumping it invalidates every token issued
// before that moment. Validate compares the token's issue time against the
// value reported by the caller-supplied account lookup.
//
// # Usage
//
//	import "github.com/dmitrymomot/tokenize/pkg/tokenize"
//
//	signer, err := tokenize.NewFromString("my-very-strong-secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tok, err := signer.Generate("326359466171826176")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	account, err := signer.Validate(ctx, tok, func(ctx context.Context, id string) (tokenize.Account, error) {
//	    return accounts.Lookup(ctx, id) // nil account means unknown id
//	})
//	if err != nil {
//	    // reject the request; errors.Is against the package sentinels
//	    // distinguishes e.g. ErrTokenInvalidated from ErrSignatureMismatch
//	}
//
// Validation failures are returned as sentinel errors (ErrMalformedToken,
// ErrPrefixMismatch, ErrSignatureMismatch, ErrUnknownAccount,
// ErrTokenInvalidated). Nothing is logged, retried, or swallowed here;
// every failure is terminal for the call and reported to the caller.
//
// HTTP services can use the bundled middleware to validate bearer tokens
// and inject the resolved account into the request context; see Middleware
// and AccountFromContext.
package tokenize
