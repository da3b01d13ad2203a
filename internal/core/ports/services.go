package ports

import (
	"context"

	"solana-wallet-bot/internal/core/domain"
)

// KeypairGenerator produces a fresh Solana keypair.
type KeypairGenerator interface {
	Generate() (domain.Keypair, error)
}

// WalletService issues and retrieves per-user wallets.
type WalletService interface {
	// GetOrCreate returns the user's wallet, generating and persisting a
	// keypair on first contact. A wallet is only ever returned after it
	// has been persisted.
	GetOrCreate(ctx context.Context, userID int64) (*domain.Wallet, error)

	// Get returns the user's wallet without creating one; nil if absent.
	Get(ctx context.Context, userID int64) (*domain.Wallet, error)
}

// ChainSource fetches the native SOL quantity held by an address.
type ChainSource interface {
	SOLBalance(ctx context.Context, address string) (float64, error)
}

// PriceSource fetches the current SOL/USD conversion rate.
type PriceSource interface {
	SOLPriceUSD(ctx context.Context) (float64, error)
}

// BalanceResolver merges the two sources into a display snapshot.
// It never fails: a degraded source contributes zero.
type BalanceResolver interface {
	Resolve(ctx context.Context, address string) domain.BalanceSnapshot
}
