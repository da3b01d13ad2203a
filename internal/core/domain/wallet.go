package domain

import "time"

// Wallet is the keypair issued to a Telegram user on first contact.
// One row per user, created once, never mutated.
type Wallet struct {
	UserID     int64     `json:"user_id"`
	Address    string    `json:"address"`
	PrivateKey string    `json:"-"` // displayed in chat by product decision, never logged
	CreatedAt  time.Time `json:"created_at"`
}

// Keypair is a freshly generated address/secret pair before persistence.
type Keypair struct {
	Address    string
	PrivateKey string
}
