package apperror

import (
	"errors"
	"fmt"
)

// Generic user-facing texts. Internal error detail never reaches the chat.
const (
	userMsgGeneric = "❌ An error occurred. Please try again."
	userMsgWallet  = "❌ An error occurred while setting up your wallet. Please try again."
)

// AppError is a structured error with a stable code and a safe user-facing message.
type AppError struct {
	Code        string // stable machine-readable code
	Message     string // internal description, for logs
	UserMessage string // generic text safe to show in chat
	Err         error  // wrapped internal error, never exposed to the user
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap wraps an internal error with an AppError.
func Wrap(code, message, userMessage string, err error) *AppError {
	return &AppError{
		Code:        code,
		Message:     message,
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserText extracts the safe user-facing message from any error.
// Non-AppError values map to the generic text.
func UserText(err error) string {
	var ae *AppError
	if errors.As(err, &ae) && ae.UserMessage != "" {
		return ae.UserMessage
	}
	return userMsgGeneric
}

// ---- Wallet (WALLET) ----

// ErrWalletPersist signals a failed wallet insert. The generated keypair must be
// discarded: a keypair shown to the user but not persisted is a lost-funds hazard.
func ErrWalletPersist(err error) *AppError {
	return Wrap("WALLET_001", "persisting wallet", userMsgWallet, err)
}

func ErrWalletLookup(err error) *AppError {
	return Wrap("WALLET_002", "looking up wallet", userMsgWallet, err)
}

// ---- Upstream data providers (FETCH) ----

func ErrChainFetch(err error) *AppError {
	return Wrap("FETCH_001", "fetching on-chain balance", userMsgGeneric, err)
}

func ErrPriceFetch(err error) *AppError {
	return Wrap("FETCH_002", "fetching spot price", userMsgGeneric, err)
}

// ---- System (SYS) ----

func Internal(err error) *AppError {
	return Wrap("SYS_001", "internal error", userMsgGeneric, err)
}
