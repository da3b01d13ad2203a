package integration

import (
	"context"
	"sync"

	"solana-wallet-bot/internal/core/domain"
	"solana-wallet-bot/internal/core/ports"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.Mutex
	wallets map[int64]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[int64]*domain.Wallet)}
}

// Create inserts unless a row already exists, like INSERT .. ON CONFLICT DO
// NOTHING. The single mutex makes the check-and-insert atomic.
func (r *inMemoryWalletRepo) Create(_ context.Context, w *domain.Wallet) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.UserID]; ok {
		return false, nil
	}
	cp := *w
	r.wallets[w.UserID] = &cp
	return true, nil
}

func (r *inMemoryWalletRepo) GetByUserID(_ context.Context, userID int64) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[userID]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.wallets)
}

// --- Stub balance sources ---

type stubChainSource struct {
	sol float64
	err error
}

func (s *stubChainSource) SOLBalance(context.Context, string) (float64, error) {
	return s.sol, s.err
}

type stubPriceSource struct {
	usd float64
	err error
}

func (s *stubPriceSource) SOLPriceUSD(context.Context) (float64, error) {
	return s.usd, s.err
}

// --- Recording messenger ---

type sentScreen struct {
	chatID   int64
	text     string
	keyboard ports.Keyboard
}

type recordingMessenger struct {
	mu     sync.Mutex
	sent   []sentScreen
	edited []sentScreen
	popups []string
	acks   int
}

func (m *recordingMessenger) SendScreen(_ context.Context, chatID int64, text string, kb ports.Keyboard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentScreen{chatID: chatID, text: text, keyboard: kb})
	return nil
}

func (m *recordingMessenger) EditScreen(_ context.Context, chatID int64, _ int, text string, kb ports.Keyboard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edited = append(m.edited, sentScreen{chatID: chatID, text: text, keyboard: kb})
	return nil
}

func (m *recordingMessenger) Popup(_ context.Context, _ string, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.popups = append(m.popups, text)
	return nil
}

func (m *recordingMessenger) Ack(context.Context, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acks++
	return nil
}

func (m *recordingMessenger) sentScreens() []sentScreen {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentScreen(nil), m.sent...)
}

func (m *recordingMessenger) editedScreens() []sentScreen {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentScreen(nil), m.edited...)
}

func (m *recordingMessenger) popupTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.popups...)
}
