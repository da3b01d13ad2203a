// Package bot routes inbound chat events to screens and canned responses.
package bot

import (
	"context"
	"fmt"

	"solana-wallet-bot/internal/core/domain"
	"solana-wallet-bot/internal/core/ports"

	"github.com/rs/zerolog"
)

type screenFunc func(snap domain.BalanceSnapshot) string

type screen struct {
	text     screenFunc
	keyboard func() ports.Keyboard
}

// Router dispatches inbound events.
//
// Static leaf actions answer with an instant popup and touch neither the
// wallet store nor the balance resolver — the fast path exists to avoid any
// I/O before acknowledging the interaction. Navigation actions take the slow
// path: get-or-create wallet, resolve balance, render the screen.
type Router struct {
	wallets   ports.WalletService
	balances  ports.BalanceResolver
	messenger ports.Messenger
	log       zerolog.Logger
	screens   map[domain.Action]screen
}

// NewRouter creates a Router with its dispatch table.
func NewRouter(wallets ports.WalletService, balances ports.BalanceResolver, messenger ports.Messenger, log zerolog.Logger) *Router {
	r := &Router{
		wallets:   wallets,
		balances:  balances,
		messenger: messenger,
		log:       log,
	}
	r.screens = map[domain.Action]screen{
		domain.ActionPositions:   {text: positionsText, keyboard: positionsKeyboard},
		domain.ActionSniperMode:  {text: sniperText, keyboard: sniperKeyboard},
		domain.ActionCopyTrade:   {text: copyTradeText, keyboard: copyTradeKeyboard},
		domain.ActionEarlyLaunch: {text: earlyLaunchText, keyboard: earlyLaunchKeyboard},
		domain.ActionWithdraw:    {text: withdrawText, keyboard: withdrawKeyboard},
		domain.ActionAntiRug:     {text: antiRugText, keyboard: antiRugKeyboard},
		domain.ActionSocialTrend: {text: socialTrendText, keyboard: socialTrendKeyboard},
	}
	return r
}

// HandleInitiate serves first contact: issue (or fetch) the wallet, resolve
// the balance, and post the welcome screen with the main menu.
func (r *Router) HandleInitiate(ctx context.Context, ev domain.InitiateEvent) error {
	r.log.Info().
		Int64("user_id", ev.UserID).
		Str("display_name", ev.DisplayName).
		Msg("user started the bot")

	w, err := r.wallets.GetOrCreate(ctx, ev.UserID)
	if err != nil {
		return err
	}

	snap := r.balances.Resolve(ctx, w.Address)
	return r.messenger.SendScreen(ctx, ev.ChatID, welcomeText(w, snap), mainMenuKeyboard())
}

// HandleSelect serves a menu pick.
func (r *Router) HandleSelect(ctx context.Context, ev domain.SelectEvent) error {
	action, ok := domain.ParseAction(ev.Data)
	if !ok {
		// Open enumeration: new identifiers may appear before handlers do.
		r.log.Warn().
			Int64("user_id", ev.UserID).
			Str("data", ev.Data).
			Msg("unrecognized selection identifier")
		return r.messenger.Ack(ctx, ev.CallbackID)
	}

	if action.Static() {
		return r.messenger.Popup(ctx, ev.CallbackID, staticPopupText(action))
	}

	// Clear the pending state first so the client stays responsive while
	// the balance fetch runs.
	if err := r.messenger.Ack(ctx, ev.CallbackID); err != nil {
		r.log.Warn().Err(err).Int64("user_id", ev.UserID).Msg("selection ack failed")
	}

	if action == domain.ActionMainMenu {
		return r.showMainMenu(ctx, ev)
	}
	return r.showScreen(ctx, ev, action)
}

func (r *Router) showMainMenu(ctx context.Context, ev domain.SelectEvent) error {
	w, err := r.wallets.GetOrCreate(ctx, ev.UserID)
	if err != nil {
		return err
	}
	snap := r.balances.Resolve(ctx, w.Address)
	return r.messenger.EditScreen(ctx, ev.ChatID, ev.MessageID, welcomeText(w, snap), mainMenuKeyboard())
}

func (r *Router) showScreen(ctx context.Context, ev domain.SelectEvent, action domain.Action) error {
	s, ok := r.screens[action]
	if !ok {
		return fmt.Errorf("no screen registered for action %q", action)
	}

	w, err := r.wallets.GetOrCreate(ctx, ev.UserID)
	if err != nil {
		return err
	}
	snap := r.balances.Resolve(ctx, w.Address)
	return r.messenger.EditScreen(ctx, ev.ChatID, ev.MessageID, s.text(snap), s.keyboard())
}
