package service

import (
	"context"
	"fmt"
	"time"

	"solana-wallet-bot/internal/core/domain"
	"solana-wallet-bot/internal/core/ports"
	"solana-wallet-bot/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	repo   ports.WalletRepository
	keygen ports.KeypairGenerator
	log    zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(repo ports.WalletRepository, keygen ports.KeypairGenerator, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{repo: repo, keygen: keygen, log: log}
}

// GetOrCreate returns the user's wallet, issuing one on first contact.
// A read failure is treated as "no record" and creation is attempted; the
// repository's atomic insert keeps that safe if the miss was false. A write
// failure is fatal for the interaction: the generated keypair is discarded,
// never shown.
func (s *WalletServiceImpl) GetOrCreate(ctx context.Context, userID int64) (*domain.Wallet, error) {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("wallet lookup failed, attempting create")
	} else if existing != nil {
		return existing, nil
	}

	kp, err := s.keygen.Generate()
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("generate keypair: %w", err))
	}

	w := &domain.Wallet{
		UserID:     userID,
		Address:    kp.Address,
		PrivateKey: kp.PrivateKey,
		CreatedAt:  time.Now().UTC(),
	}

	inserted, err := s.repo.Create(ctx, w)
	if err != nil {
		return nil, apperror.ErrWalletPersist(err)
	}
	if !inserted {
		// Another in-flight interaction won the create race; use its record.
		stored, err := s.repo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, apperror.ErrWalletLookup(err)
		}
		if stored == nil {
			return nil, apperror.Internal(fmt.Errorf("wallet missing after insert conflict for user %d", userID))
		}
		return stored, nil
	}

	s.log.Info().Int64("user_id", userID).Str("address", w.Address).Msg("issued new wallet")
	return w, nil
}

// Get returns the user's wallet without creating one.
func (s *WalletServiceImpl) Get(ctx context.Context, userID int64) (*domain.Wallet, error) {
	w, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrWalletLookup(err)
	}
	return w, nil
}
