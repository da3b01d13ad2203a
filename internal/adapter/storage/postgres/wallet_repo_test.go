package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"solana-wallet-bot/internal/core/domain"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet(userID int64) *domain.Wallet {
	return &domain.Wallet{
		UserID:     userID,
		Address:    "7dF3b1kYqP9tWxJm2Qn8rLcVe5uZsA4gHb6NiKoXDyTE",
		PrivateKey: "5J8s2vQwErTyUiOp1aSdFgHjKlZxCvBnM3qW4e5r6t7y8u9i0oPlKjHgFdSaZxCvBnMqWeRtYuIoPaSdFgHjKlZx",
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func walletColumns() []string {
	return []string{"user_id", "address", "private_key", "created_at"}
}

func walletRow(w *domain.Wallet) *pgxmock.Rows {
	return pgxmock.NewRows(walletColumns()).AddRow(
		w.UserID, w.Address, w.PrivateKey, w.CreatedAt,
	)
}

func TestWalletRepo_Create_Inserted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(42)

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(w.UserID, w.Address, w.PrivateKey, w.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	inserted, err := repo.Create(context.Background(), w)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Create_ConflictIsNotAnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(42)

	// ON CONFLICT DO NOTHING: zero rows affected when a record already exists.
	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(w.UserID, w.Address, w.PrivateKey, w.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	inserted, err := repo.Create(context.Background(), w)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Create_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(42)

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(w.UserID, w.Address, w.PrivateKey, w.CreatedAt).
		WillReturnError(errors.New("connection refused"))

	_, err = repo.Create(context.Background(), w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert wallet")
}

func TestWalletRepo_GetByUserID_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(42)

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE user_id").
		WithArgs(w.UserID).
		WillReturnRows(walletRow(w))

	result, err := repo.GetByUserID(context.Background(), w.UserID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.Address, result.Address)
	assert.Equal(t, w.PrivateKey, result.PrivateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByUserID_Absent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE user_id").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(walletColumns()))

	result, err := repo.GetByUserID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS wallets").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, EnsureSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}
