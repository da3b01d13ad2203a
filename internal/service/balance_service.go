package service

import (
	"context"
	"sync"

	"solana-wallet-bot/internal/core/domain"
	"solana-wallet-bot/internal/core/ports"

	"github.com/rs/zerolog"
)

// BalanceServiceImpl implements ports.BalanceResolver.
//
// Both sources are fetched concurrently with independent deadlines (the
// adapters carry their own timeouts). A failed source degrades to zero and
// never aborts the other fetch or the resolution: balance display must not
// fail the interaction even with both providers down.
type BalanceServiceImpl struct {
	chain ports.ChainSource
	price ports.PriceSource
	log   zerolog.Logger
}

// NewBalanceService creates a new BalanceServiceImpl.
func NewBalanceService(chain ports.ChainSource, price ports.PriceSource, log zerolog.Logger) *BalanceServiceImpl {
	return &BalanceServiceImpl{chain: chain, price: price, log: log}
}

// Resolve computes a fresh balance snapshot for the address.
// Total fetch failure yields {0, 0}, a valid "no funds / unknown" snapshot.
func (s *BalanceServiceImpl) Resolve(ctx context.Context, address string) domain.BalanceSnapshot {
	var (
		sol  float64
		rate float64
		wg   sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		v, err := s.chain.SOLBalance(ctx, address)
		if err != nil {
			s.log.Warn().Err(err).Str("address", address).Msg("chain balance fetch degraded to zero")
			return
		}
		sol = v
	}()
	go func() {
		defer wg.Done()
		v, err := s.price.SOLPriceUSD(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("price fetch degraded to zero")
			return
		}
		rate = v
	}()
	wg.Wait()

	return domain.BalanceSnapshot{
		SOL: sol,
		USD: sol * rate,
	}
}
