// Package accountstore provides ready-made account lookup backends for the
// tokenize token scheme.
//
// The tokenize verifier resolves accounts through a caller-supplied lookup
// function and reads a single field from the result: the account's last
// token reset timestamp (milliseconds since the Unix epoch). This package
// ships implementations of that contract over common datastores so
// applications don't have to write the same few queries themselves:
//
//   - MemoryStore — concurrent in-memory map, useful for tests and small
//     single-process deployments.
//   - RedisStore — one key per account via go-redis.
//   - PostgresStore — one row per account via pgx, with a goose migration
//     for the default schema.
//   - MongoStore — one document per account via the official driver.
//
// Every store exposes a Lookup method whose signature matches
// tokenize.AccountLookupFunc, so a store plugs directly into Validate:
//
//	store := accountstore.NewRedisStore(redisClient)
//	account, err := signer.Validate(ctx, token, store.Lookup)
//
// A missing account is reported as a nil account with a nil error, which the
// verifier turns into tokenize.ErrUnknownAccount. Driver failures are
// returned as-is and abort validation.
//
// Revoking previously issued tokens is a single write:
//
//	// every token issued before now stops validating
//	err := store.Invalidate(ctx, accountID, time.Now())
//
// Key prefixes and table/collection names are configurable through the
// env-tagged Config struct; see DefaultConfig and LoadConfig.
//
// The stores never log and never retry; errors bubble up to the caller the
// same way tokenize's own failures do.
package accountstore
