package accountstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/tokenize/pkg/tokenize"
)

// MemoryStore keeps account records in a mutex-guarded map. Safe for
// concurrent use. State is lost on restart, which for this data only means
// previously issued tokens validate again; use a persistent backend when
// revocation must survive restarts.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]int64
}

// NewMemoryStore creates an empty in-memory account store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]int64),
	}
}

// Create registers a new account under a random id and returns its record.
func (m *MemoryStore) Create(ctx context.Context) (StoredAccount, error) {
	account := StoredAccount{ID: uuid.NewString()}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.accounts[account.ID] = account.TokenReset
	return account, nil
}

// Put registers an account record under a caller-chosen id.
// Returns ErrAccountExists if the id is already taken.
func (m *MemoryStore) Put(ctx context.Context, account StoredAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.ID]; exists {
		return ErrAccountExists
	}

	m.accounts[account.ID] = account.TokenReset
	return nil
}

// Lookup resolves an account id; missing accounts yield (nil, nil).
func (m *MemoryStore) Lookup(ctx context.Context, accountID string) (tokenize.Account, error) {
	m.mu.RLock()
	reset, exists := m.accounts[accountID]
	m.mu.RUnlock()

	if !exists {
		return nil, nil
	}

	return StoredAccount{ID: accountID, TokenReset: reset}, nil
}

// Invalidate revokes every token issued to the account before the given moment.
func (m *MemoryStore) Invalidate(ctx context.Context, accountID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[accountID]; !exists {
		return ErrAccountNotFound
	}

	m.accounts[accountID] = at.UnixMilli()
	return nil
}

// Delete removes the account record.
func (m *MemoryStore) Delete(ctx context.Context, accountID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.accounts, accountID)
	return nil
}
