// Package telegram adapts the Telegram Bot API to the messaging ports:
// a long-poll update listener on the inbound side and a Messenger
// implementation on the outbound side.
package telegram

import (
	"context"
	"fmt"

	"solana-wallet-bot/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Messenger sends screens, popups and acknowledgments through the Bot API.
// Screen text is MarkdownV2; callers escape interpolated values themselves.
type Messenger struct {
	api *tgbotapi.BotAPI
}

func NewMessenger(api *tgbotapi.BotAPI) *Messenger {
	return &Messenger{api: api}
}

func toInlineKeyboard(kb ports.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb))
	for _, row := range kb {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// SendScreen posts a new message with the keyboard attached.
func (m *Messenger) SendScreen(_ context.Context, chatID int64, text string, kb ports.Keyboard) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = toInlineKeyboard(kb)
	if _, err := m.api.Send(msg); err != nil {
		return fmt.Errorf("sending screen: %w", err)
	}
	return nil
}

// EditScreen rewrites an existing message in place so the user stays on a
// single evolving menu message.
func (m *Messenger) EditScreen(_ context.Context, chatID int64, messageID int, text string, kb ports.Keyboard) error {
	markup := toInlineKeyboard(kb)
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := m.api.Send(edit); err != nil {
		return fmt.Errorf("editing screen: %w", err)
	}
	return nil
}

// Popup answers a callback with an alert box.
func (m *Messenger) Popup(_ context.Context, callbackID, text string) error {
	cb := tgbotapi.NewCallbackWithAlert(callbackID, text)
	if _, err := m.api.Request(cb); err != nil {
		return fmt.Errorf("answering callback with alert: %w", err)
	}
	return nil
}

// Ack answers a callback with no visible content.
func (m *Messenger) Ack(_ context.Context, callbackID string) error {
	cb := tgbotapi.NewCallback(callbackID, "")
	if _, err := m.api.Request(cb); err != nil {
		return fmt.Errorf("answering callback: %w", err)
	}
	return nil
}

// Notice posts a plain-text message with no keyboard and no parse mode.
// Used for generic failure replies where MarkdownV2 escaping would be noise.
func (m *Messenger) Notice(_ context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := m.api.Send(msg); err != nil {
		return fmt.Errorf("sending notice: %w", err)
	}
	return nil
}
