package telegram

import (
	"context"

	"solana-wallet-bot/internal/core/domain"
	"solana-wallet-bot/internal/core/ports"
	"solana-wallet-bot/pkg/apperror"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Handler consumes the inbound events the listener extracts from updates.
type Handler interface {
	HandleInitiate(ctx context.Context, ev domain.InitiateEvent) error
	HandleSelect(ctx context.Context, ev domain.SelectEvent) error
}

// Listener long-polls the Bot API and dispatches each update on its own
// goroutine. A panic in one update never takes down the poll loop.
type Listener struct {
	api         *tgbotapi.BotAPI
	dedup       ports.UpdateDeduper
	handler     Handler
	messenger   *Messenger
	log         zerolog.Logger
	pollTimeout int
}

func NewListener(api *tgbotapi.BotAPI, dedup ports.UpdateDeduper, handler Handler, messenger *Messenger, pollTimeout int, log zerolog.Logger) *Listener {
	return &Listener{
		api:         api,
		dedup:       dedup,
		handler:     handler,
		messenger:   messenger,
		log:         log,
		pollTimeout: pollTimeout,
	}
}

// Run polls until ctx is canceled or the update channel closes.
func (l *Listener) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = l.pollTimeout
	updates := l.api.GetUpdatesChan(u)

	l.log.Info().Str("bot", l.api.Self.UserName).Msg("listening for updates")

	for {
		select {
		case <-ctx.Done():
			l.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go l.handle(ctx, update)
		}
	}
}

func (l *Listener) handle(ctx context.Context, update tgbotapi.Update) {
	log := l.log.With().
		Str("correlation_id", uuid.NewString()).
		Int("update_id", update.UpdateID).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("update handler panicked")
		}
	}()

	seen, err := l.dedup.Seen(ctx, update.UpdateID)
	if err != nil {
		// Dedup is best-effort: a broken store must not stop the bot.
		log.Warn().Err(err).Msg("update dedup check failed, processing anyway")
	} else if seen {
		log.Debug().Msg("dropping redelivered update")
		return
	}

	switch {
	case update.CallbackQuery != nil:
		l.handleCallback(ctx, log, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		l.handleCommand(ctx, log, update.Message)
	}
}

func (l *Listener) handleCommand(ctx context.Context, log zerolog.Logger, msg *tgbotapi.Message) {
	if msg.Command() != "start" || msg.From == nil {
		return
	}

	ev := domain.InitiateEvent{
		UserID:      msg.From.ID,
		ChatID:      msg.Chat.ID,
		DisplayName: msg.From.FirstName,
	}
	if err := l.handler.HandleInitiate(ctx, ev); err != nil {
		log.Error().Err(err).Int64("user_id", ev.UserID).Msg("initiate failed")
		if nerr := l.messenger.Notice(ctx, ev.ChatID, apperror.UserText(err)); nerr != nil {
			log.Warn().Err(nerr).Msg("failure notice not delivered")
		}
	}
}

func (l *Listener) handleCallback(ctx context.Context, log zerolog.Logger, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		// Callback for a message too old for the API to echo back. There is
		// no screen to edit, so just clear the client's pending state.
		log.Warn().Str("callback_id", cb.ID).Msg("callback without source message")
		if err := l.messenger.Ack(ctx, cb.ID); err != nil {
			log.Warn().Err(err).Msg("orphan callback ack failed")
		}
		return
	}

	ev := domain.SelectEvent{
		UserID:     cb.From.ID,
		ChatID:     cb.Message.Chat.ID,
		MessageID:  cb.Message.MessageID,
		CallbackID: cb.ID,
		Data:       cb.Data,
	}
	if err := l.handler.HandleSelect(ctx, ev); err != nil {
		log.Error().Err(err).Int64("user_id", ev.UserID).Str("data", ev.Data).Msg("selection failed")
		if perr := l.messenger.Popup(ctx, ev.CallbackID, apperror.UserText(err)); perr != nil {
			log.Warn().Err(perr).Msg("failure popup not delivered")
		}
	}
}
