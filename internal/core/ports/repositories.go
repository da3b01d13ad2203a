package ports

import (
	"context"

	"solana-wallet-bot/internal/core/domain"
)

// WalletRepository defines persistence operations for issued wallets.
type WalletRepository interface {
	// Create inserts the wallet unless a row for the same user already
	// exists. Returns true if this call inserted the row. The insert must
	// be atomic so concurrent first-time calls cannot issue two keypairs
	// for one user.
	Create(ctx context.Context, w *domain.Wallet) (bool, error)

	// GetByUserID returns the stored wallet, or nil if none exists.
	GetByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
}

// UpdateDeduper records processed inbound update IDs so redelivered
// updates are dropped instead of handled twice.
type UpdateDeduper interface {
	// Seen marks the update ID and reports whether it was already marked.
	Seen(ctx context.Context, updateID int) (bool, error)
}
