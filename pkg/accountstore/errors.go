package accountstore

import "errors"

var (
	ErrAccountExists           = errors.New("accountstore: account already exists")
	ErrAccountNotFound         = errors.New("accountstore: account not found")
	ErrFailedToLoadConfig      = errors.New("accountstore: failed to load config")
	ErrFailedToApplyMigrations = errors.New("accountstore: failed to apply migrations")
)
