package integration

import (
	"context"
	"testing"

	"solana-wallet-bot/internal/bot"
	"solana-wallet-bot/internal/core/domain"
	"solana-wallet-bot/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router    *bot.Router
	repo      *inMemoryWalletRepo
	messenger *recordingMessenger
	chain     *stubChainSource
	price     *stubPriceSource
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	app := &testApp{
		repo:      newInMemoryWalletRepo(),
		messenger: &recordingMessenger{},
		chain:     &stubChainSource{},
		price:     &stubPriceSource{},
	}

	log := zerolog.Nop()
	walletSvc := service.NewWalletService(app.repo, service.NewEd25519KeypairGenerator(), log)
	balanceSvc := service.NewBalanceService(app.chain, app.price, log)
	app.router = bot.NewRouter(walletSvc, balanceSvc, app.messenger, log)
	return app
}

func initiate(userID int64) domain.InitiateEvent {
	return domain.InitiateEvent{UserID: userID, ChatID: userID, DisplayName: "tester"}
}

func selection(userID int64, data string) domain.SelectEvent {
	return domain.SelectEvent{UserID: userID, ChatID: userID, MessageID: 100, CallbackID: "cb", Data: data}
}

func TestFirstContactIssuesWallet(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.router.HandleInitiate(ctx, initiate(42)))

	require.Equal(t, 1, app.repo.count())
	w, err := app.repo.GetByUserID(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.NotEmpty(t, w.Address)
	assert.NotEmpty(t, w.PrivateKey)

	sent := app.messenger.sentScreens()
	require.Len(t, sent, 1)
	assert.Equal(t, int64(42), sent[0].chatID)
	assert.Contains(t, sent[0].text, w.Address)
	assert.Contains(t, sent[0].text, w.PrivateKey)
	assert.Contains(t, sent[0].text, "0 SOL")
	assert.Contains(t, sent[0].text, "USD $0")
	assert.Contains(t, sent[0].text, "You currently have no SOL")
	assert.NotEmpty(t, sent[0].keyboard)
}

func TestRepeatStartKeepsWallet(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.router.HandleInitiate(ctx, initiate(42)))
	require.NoError(t, app.router.HandleInitiate(ctx, initiate(42)))

	assert.Equal(t, 1, app.repo.count())

	w, err := app.repo.GetByUserID(ctx, 42)
	require.NoError(t, err)
	sent := app.messenger.sentScreens()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].text, w.Address)
	assert.Contains(t, sent[1].text, w.Address)
}

func TestMenuNavigationRendersLiveBalance(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	app.chain.sol = 2
	app.price.usd = 100

	require.NoError(t, app.router.HandleInitiate(ctx, initiate(42)))
	require.NoError(t, app.router.HandleSelect(ctx, selection(42, "positions")))
	require.NoError(t, app.router.HandleSelect(ctx, selection(42, "back_main")))

	edited := app.messenger.editedScreens()
	require.Len(t, edited, 2)
	assert.Contains(t, edited[0].text, "Positions")
	assert.Contains(t, edited[0].text, "2 SOL")
	assert.Contains(t, edited[0].text, "$200")
	assert.Contains(t, edited[1].text, "Welcome to SOLANA AI")
}

func TestStaticLeafAnswersWithoutTouchingStorage(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.router.HandleSelect(ctx, selection(42, "sniper_pro")))
	require.NoError(t, app.router.HandleSelect(ctx, selection(42, "withdraw_100")))

	assert.Equal(t, 0, app.repo.count(), "static leaves must not create wallets")

	popups := app.messenger.popupTexts()
	require.Len(t, popups, 2)
	assert.Contains(t, popups[0], "trading")
	assert.Contains(t, popups[1], "withdrawing")
}

func TestDegradedSourcesStillRenderScreens(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	app.chain.err = assert.AnError
	app.price.err = assert.AnError

	require.NoError(t, app.router.HandleInitiate(ctx, initiate(42)))

	sent := app.messenger.sentScreens()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].text, "0 SOL")
	assert.Contains(t, sent[0].text, "USD $0")
}
