package service

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"solana-wallet-bot/internal/core/domain"

	"github.com/mr-tron/base58"
)

// Ed25519KeypairGenerator implements ports.KeypairGenerator.
// Solana convention: the address is the base58 public key, the secret is
// the base58 64-byte expanded private key (seed followed by public key).
type Ed25519KeypairGenerator struct{}

// NewEd25519KeypairGenerator creates a keypair generator.
func NewEd25519KeypairGenerator() *Ed25519KeypairGenerator {
	return &Ed25519KeypairGenerator{}
}

// Generate produces a fresh keypair from crypto/rand.
func (g *Ed25519KeypairGenerator) Generate() (domain.Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return domain.Keypair{}, fmt.Errorf("generating ed25519 keypair: %w", err)
	}

	return domain.Keypair{
		Address:    base58.Encode(pub),
		PrivateKey: base58.Encode(priv),
	}, nil
}
