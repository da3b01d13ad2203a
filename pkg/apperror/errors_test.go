package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorString(t *testing.T) {
	inner := errors.New("connection refused")
	ae := ErrWalletPersist(inner)

	assert.Contains(t, ae.Error(), "WALLET_001")
	assert.Contains(t, ae.Error(), "connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	ae := Internal(fmt.Errorf("wrapping: %w", inner))

	assert.True(t, errors.Is(ae, inner))
}

func TestUserText_AppError(t *testing.T) {
	ae := ErrWalletPersist(errors.New("pq: deadlock detected"))

	text := UserText(ae)
	assert.Contains(t, text, "wallet")
	assert.NotContains(t, text, "deadlock", "internal detail must not leak to the user")
}

func TestUserText_PlainError(t *testing.T) {
	text := UserText(errors.New("secret internals"))
	assert.Equal(t, userMsgGeneric, text)
	assert.NotContains(t, text, "secret")
}

func TestUserText_Nil(t *testing.T) {
	assert.Equal(t, userMsgGeneric, UserText(nil))
}
