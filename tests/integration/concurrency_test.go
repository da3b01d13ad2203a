package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentFirstContactIssuesOneWallet hammers first contact for a
// single user from many goroutines. Exactly one keypair may be issued, and
// every reply must show that same keypair.
func TestConcurrentFirstContactIssuesOneWallet(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, app.router.HandleInitiate(ctx, initiate(42)))
		}()
	}
	wg.Wait()

	require.Equal(t, 1, app.repo.count(), "concurrent first contact must issue exactly one wallet")

	w, err := app.repo.GetByUserID(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, w)

	sent := app.messenger.sentScreens()
	require.Len(t, sent, workers)
	for _, s := range sent {
		assert.Contains(t, s.text, w.Address, "every reply must show the single issued address")
	}
}

// TestConcurrentDistinctUsersGetDistinctWallets verifies isolation between
// users under concurrent load.
func TestConcurrentDistinctUsersGetDistinctWallets(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	const users = 50
	var wg sync.WaitGroup
	wg.Add(users)
	for i := 0; i < users; i++ {
		go func(userID int64) {
			defer wg.Done()
			assert.NoError(t, app.router.HandleInitiate(ctx, initiate(userID)))
		}(int64(i + 1))
	}
	wg.Wait()

	require.Equal(t, users, app.repo.count())

	addresses := make(map[string]bool)
	for i := 1; i <= users; i++ {
		w, err := app.repo.GetByUserID(ctx, int64(i))
		require.NoError(t, err)
		require.NotNil(t, w)
		addresses[w.Address] = true
	}
	assert.Len(t, addresses, users, "every user must get a distinct address")
}
