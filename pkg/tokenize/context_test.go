package tokenize_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tokenize/pkg/tokenize"
)

func TestTokenContext(t *testing.T) {
	t.Parallel()

	t.Run("set and get token", func(t *testing.T) {
		ctx := tokenize.SetToken(context.Background(), "some.token.value")
		token, ok := tokenize.TokenFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, "some.token.value", token)
	})

	t.Run("missing token", func(t *testing.T) {
		token, ok := tokenize.TokenFromContext(context.Background())
		require.False(t, ok)
		assert.Empty(t, token)
	})
}

func TestAccountContext(t *testing.T) {
	t.Parallel()

	t.Run("set and get account", func(t *testing.T) {
		want := testAccount{lastTokenReset: 42}
		ctx := tokenize.SetAccount(context.Background(), want)
		account, ok := tokenize.AccountFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, want, account)
		assert.EqualValues(t, 42, account.LastTokenReset())
	})

	t.Run("missing account", func(t *testing.T) {
		account, ok := tokenize.AccountFromContext(context.Background())
		require.False(t, ok)
		assert.Nil(t, account)
	})
}
