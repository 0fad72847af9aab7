package accountstore

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// RedisKeyPrefix is prepended to account ids to form Redis keys.
	RedisKeyPrefix string `env:"ACCOUNT_STORE_REDIS_KEY_PREFIX" envDefault:"account:token_reset:"`

	// PostgresTable is the accounts table name. The bundled migration
	// creates the default name only; custom names need a custom schema.
	PostgresTable string `env:"ACCOUNT_STORE_PG_TABLE" envDefault:"accounts"`

	// MigrationsTable is the goose bookkeeping table for Migrate.
	MigrationsTable string `env:"ACCOUNT_STORE_MIGRATIONS_TABLE" envDefault:"accountstore_migrations"`

	// MongoCollection is the accounts collection name.
	MongoCollection string `env:"ACCOUNT_STORE_MONGO_COLLECTION" envDefault:"accounts"`
}

// DefaultConfig returns the configuration used by the plain store constructors.
func DefaultConfig() Config {
	return Config{
		RedisKeyPrefix:  "account:token_reset:",
		PostgresTable:   "accounts",
		MigrationsTable: "accountstore_migrations",
		MongoCollection: "accounts",
	}
}

// LoadConfig populates a Config from environment variables, optionally
// loading .env files first. Files never override variables that are already
// set, so the process environment wins over every file and the first file to
// define a key wins over later ones.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, errors.Join(ErrFailedToLoadConfig, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrFailedToLoadConfig, err)
	}

	return cfg, nil
}
